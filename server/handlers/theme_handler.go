package handlers

import (
	"log"
	"net/http"

	services "cardapio-server/service"
)

type ThemeHandler struct {
	themeService *services.ThemeService
}

func NewThemeHandler(themeService *services.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

// Toggle handles POST /v1/theme/toggle.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	profileID := ProfileID(r)
	state := h.themeService.Load(profileID, SystemPrefersDark(r))
	if _, err := h.themeService.Toggle(profileID, &state); err != nil {
		log.Println("[ThemeHandler] Error storing theme:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r, TabID(r))
}
