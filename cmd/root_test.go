package cmd

import (
	"testing"
	"time"

	"cardapio-server/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags_FlagsOverrideDefaults(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	registerFlags(cmd)
	v := viper.New()
	bindFlags(v, cmd)

	require.NoError(t, cmd.Flags().Set("storage", config.STORAGE_SQLITE))
	require.NoError(t, cmd.Flags().Set("menu-source", "https://example.com/cardapio.json"))
	require.NoError(t, cmd.Flags().Set("shutdown-timeout", "15s"))
	require.NoError(t, cmd.Flags().Set("timezone", "America/Recife"))

	settings, err := config.Load(v, "")

	require.NoError(t, err)
	assert.Equal(t, config.STORAGE_SQLITE, settings.Storage)
	assert.Equal(t, "https://example.com/cardapio.json", settings.MenuSource)
	assert.Equal(t, 15*time.Second, settings.ShutdownTimeout)
	assert.Equal(t, "America/Recife", settings.Timezone)
	assert.Equal(t, config.DEFAULT_ADDR, settings.Addr)
}

func TestBindFlags_InvalidStorageIsRejected(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	registerFlags(cmd)
	v := viper.New()
	bindFlags(v, cmd)
	require.NoError(t, cmd.Flags().Set("storage", "postgres"))

	_, err := config.Load(v, "")

	assert.ErrorContains(t, err, "invalid storage")
}
