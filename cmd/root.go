package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"cardapio-server/config"
	"cardapio-server/di"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cardapio-server",
	Short: "Serves the cafeteria menu with filters, dish of the day and comments",
	Long:  `cardapio-server renders the cafeteria menu (flat or weekly) as a web page, with live search, calorie and category filters, a dish of the day, visitor comments and a light/dark theme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(viper.GetViper(), cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return run(settings)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml or json)")
	registerFlags(rootCmd)
	bindFlags(viper.GetViper(), rootCmd)
}

func registerFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", config.DEFAULT_ADDR, "HTTP listen address")
	cmd.Flags().String("menu-source", config.GetResourcePath(config.MENU_DOCUMENT_RESOURCE), "menu document file path or http(s) URL")
	cmd.Flags().String("storage", config.STORAGE_MEMORY, "visitor storage backend: memory, redis or sqlite")
	cmd.Flags().String("redis-addr", config.REDIS_DB_ADDRESS, "Redis address")
	cmd.Flags().String("redis-password", config.REDIS_DB_PASSWORD, "Redis password")
	cmd.Flags().Int("redis-db", config.REDIS_DB, "Redis database")
	cmd.Flags().String("sqlite-path", config.SQLITE_DB_PATH, "SQLite database file")
	cmd.Flags().String("admin-secret", config.DEFAULT_ADMIN_SECRET, "shared secret unlocking comment deletion (cosmetic gate)")
	cmd.Flags().Duration("shutdown-timeout", config.DEFAULT_SHUTDOWN_TIMEOUT, "graceful shutdown deadline")
	cmd.Flags().String("timezone", config.DEFAULT_TIMEZONE, "cafeteria time zone deciding today's weekday")
}

// bindFlags maps each dashed flag onto its snake_case settings key.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for flag, key := range map[string]string{
		"addr":             "addr",
		"menu-source":      "menu_source",
		"storage":          "storage",
		"redis-addr":       "redis_addr",
		"redis-password":   "redis_password",
		"redis-db":         "redis_db",
		"sqlite-path":      "sqlite_path",
		"admin-secret":     "admin_secret",
		"shutdown-timeout": "shutdown_timeout",
		"timezone":         "timezone",
	} {
		cobra.CheckErr(v.BindPFlag(key, cmd.Flags().Lookup(flag)))
	}
}

func run(settings *config.Settings) error {
	container, err := di.NewContainer(context.Background(), settings)
	if err != nil {
		return err
	}
	defer container.Close()

	fmt.Println("starting session sweeper!")
	container.SessionSweeperService.StartPeriodicJob(config.SESSION_SWEEPER_SERVICE_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	return container.CardapioHttpServer.Start()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
