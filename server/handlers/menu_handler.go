package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"cardapio-server/models"
	services "cardapio-server/service"
	"cardapio-server/util"
)

type MenuHandler struct {
	menuService *services.MenuService
	pageBuilder *PageBuilder
}

func NewMenuHandler(menuService *services.MenuService, pageBuilder *PageBuilder) *MenuHandler {
	return &MenuHandler{menuService: menuService, pageBuilder: pageBuilder}
}

// GetPage handles GET /?busca=&calorias=&tipo=&ordenar=&tab=
func (h *MenuHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	h.pageBuilder.render(w, r, http.StatusOK, pageOptions{
		TabID:    TabID(r),
		Criteria: models.FilterCriteriaFromValues(r.URL.Query()),
	})
}

// GetMenu handles GET /v1/menu and returns the filtered view as JSON.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu := h.menuService.View(TabID(r), models.FilterCriteriaFromValues(r.URL.Query()))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(menu); err != nil {
		log.Println("[MenuHandler] Error encoding response:", err)
	}
}

// GetMenuDocument handles GET /v1/menu/document and returns the loaded menu
// in the shape it was read from.
func (h *MenuHandler) GetMenuDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.menuService.Document()); err != nil {
		log.Println("[MenuHandler] Error encoding response:", err)
	}
}

// GetMenuChart handles GET /v1/menu/chart with a nutrition bar chart of the visible items.
func (h *MenuHandler) GetMenuChart(w http.ResponseWriter, r *http.Request) {
	items := h.menuService.VisibleItems(models.FilterCriteriaFromValues(r.URL.Query()))
	title := fmt.Sprintf("Cardápio (%s)", h.menuService.Layout())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderNutritionChart(w, title, items); err != nil {
		log.Println("[MenuHandler] Error rendering chart:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// PostDishOfDay handles POST /v1/menu/dish-of-the-day.
func (h *MenuHandler) PostDishOfDay(w http.ResponseWriter, r *http.Request) {
	tabID := TabID(r)
	if _, ok := h.menuService.RandomizeDishOfDay(tabID); !ok {
		log.Println("[MenuHandler] No dish of the day to pick")
	}
	redirectHome(w, r, tabID)
}

// Ping handles GET /ping
func (h *MenuHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
