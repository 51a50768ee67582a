package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const ENV_PREFIX = "CARDAPIO"

// Settings holds the runtime configuration of the server.
type Settings struct {
	Addr            string        `mapstructure:"addr"`
	MenuSource      string        `mapstructure:"menu_source"`
	Storage         string        `mapstructure:"storage"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	AdminSecret     string        `mapstructure:"admin_secret"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Timezone        string        `mapstructure:"timezone"`
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("addr", DEFAULT_ADDR)
	v.SetDefault("menu_source", GetResourcePath(MENU_DOCUMENT_RESOURCE))
	v.SetDefault("storage", STORAGE_MEMORY)
	v.SetDefault("redis_addr", REDIS_DB_ADDRESS)
	v.SetDefault("redis_password", REDIS_DB_PASSWORD)
	v.SetDefault("redis_db", REDIS_DB)
	v.SetDefault("sqlite_path", SQLITE_DB_PATH)
	v.SetDefault("admin_secret", DEFAULT_ADMIN_SECRET)
	v.SetDefault("shutdown_timeout", DEFAULT_SHUTDOWN_TIMEOUT.String())
	v.SetDefault("timezone", DEFAULT_TIMEZONE)
}

// Load reads settings from defaults, an optional config file and CARDAPIO_* env vars.
// Flags must already be bound on v.
func Load(v *viper.Viper, cfgFile string) (*Settings, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var settings Settings
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := v.Unmarshal(&settings, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate checks that the settings contain usable values.
func (s *Settings) Validate() error {
	switch s.Storage {
	case STORAGE_MEMORY, STORAGE_REDIS, STORAGE_SQLITE:
	default:
		return fmt.Errorf("invalid storage %q: must be one of memory, redis, sqlite", s.Storage)
	}
	if strings.TrimSpace(s.MenuSource) == "" {
		return fmt.Errorf("menu_source is required")
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %s", s.ShutdownTimeout)
	}
	if _, err := s.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone. Empty means UTC.
func (s *Settings) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}
