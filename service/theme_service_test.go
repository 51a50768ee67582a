package services

import (
	"context"
	"testing"

	"cardapio-server/config"
	"cardapio-server/dao/storage"
	"cardapio-server/db"
	"cardapio-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeService_FollowsSystemUntilToggled(t *testing.T) {
	dao := storage.NewProfileStorageDAO(db.NewMemoryKVClient(context.Background()))
	ts := NewThemeService(dao)

	state := ts.Load(testProfile, true)

	assert.Equal(t, models.ModeDark, state.Mode())
	_, found, err := dao.GetItem(testProfile, config.THEME_STORAGE_KEY)
	require.NoError(t, err)
	assert.False(t, found)

	mode, err := ts.Toggle(testProfile, &state)
	require.NoError(t, err)
	assert.Equal(t, models.ModeLight, mode)

	reloaded := ts.Load(testProfile, true)
	assert.Equal(t, models.ThemeLight, reloaded.Preference)
	assert.Equal(t, models.ModeLight, reloaded.Mode())
	assert.False(t, reloaded.SystemChanged(false))
}

func TestThemeService_IgnoresUnknownStoredValue(t *testing.T) {
	dao := storage.NewProfileStorageDAO(db.NewMemoryKVClient(context.Background()))
	require.NoError(t, dao.SetItem(testProfile, config.THEME_STORAGE_KEY, "sepia"))
	ts := NewThemeService(dao)

	state := ts.Load(testProfile, false)

	assert.Equal(t, models.ThemeUnset, state.Preference)
	assert.Equal(t, models.ModeLight, state.Mode())
}

func TestThemeService_RefreshPicksUpChoiceFromAnotherTab(t *testing.T) {
	dao := storage.NewProfileStorageDAO(db.NewMemoryKVClient(context.Background()))
	ts := NewThemeService(dao)
	tabA := ts.Load(testProfile, false)
	tabB := ts.Load(testProfile, false)

	_, err := ts.Toggle(testProfile, &tabA)
	require.NoError(t, err)

	ts.Refresh(testProfile, &tabB)
	assert.Equal(t, models.ThemeDark, tabB.Preference)
	assert.False(t, tabB.SystemChanged(true))
	assert.False(t, tabB.SystemChanged(false))
	assert.Equal(t, models.ModeDark, tabB.Mode())

	require.NoError(t, dao.RemoveItem(testProfile, config.THEME_STORAGE_KEY))
	ts.Refresh(testProfile, &tabB)
	assert.Equal(t, models.ThemeUnset, tabB.Preference)
}
