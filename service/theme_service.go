package services

import (
	"log"

	"cardapio-server/config"
	"cardapio-server/dao/storage"
	"cardapio-server/models"
)

// ThemeService persists the explicit theme choice of a profile.
type ThemeService struct {
	storage *storage.ProfileStorageDAO
}

func NewThemeService(storage *storage.ProfileStorageDAO) *ThemeService {
	return &ThemeService{storage: storage}
}

// Load combines the stored preference with the current system signal.
// Unreadable storage falls back to following the system.
func (ts *ThemeService) Load(profileID string, systemDark bool) models.ThemeState {
	state := models.ThemeState{SystemDark: systemDark}
	ts.Refresh(profileID, &state)
	return state
}

// Refresh re-reads the stored preference into state, keeping its system signal.
// Another tab of the same profile may have changed it. Unreadable storage
// leaves state untouched.
func (ts *ThemeService) Refresh(profileID string, state *models.ThemeState) {
	raw, ok, err := ts.storage.GetItem(profileID, config.THEME_STORAGE_KEY)
	if err != nil {
		log.Printf("[ThemeService] %v", err)
		return
	}
	if !ok {
		state.Preference = models.ThemeUnset
		return
	}
	state.Preference = models.ParseThemePreference(raw)
}

// Toggle flips the visual mode and stores the result as the explicit choice.
func (ts *ThemeService) Toggle(profileID string, state *models.ThemeState) (models.ThemeMode, error) {
	mode := state.Toggle()
	if err := ts.storage.SetItem(profileID, config.THEME_STORAGE_KEY, string(state.Preference)); err != nil {
		return mode, err
	}
	return mode, nil
}
