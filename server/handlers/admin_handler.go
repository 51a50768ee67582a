package handlers

import (
	"net/http"

	services "cardapio-server/service"
)

const SECRET_FORM_ARG = "senha"
const LOGIN_FAILED_MESSAGE = "Senha incorreta."

type AdminHandler struct {
	adminGate   *services.AdminGate
	pageBuilder *PageBuilder
}

func NewAdminHandler(adminGate *services.AdminGate, pageBuilder *PageBuilder) *AdminHandler {
	return &AdminHandler{adminGate: adminGate, pageBuilder: pageBuilder}
}

// Login handles POST /v1/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	tabID := TabID(r)
	if !h.adminGate.Login(tabID, r.FormValue(SECRET_FORM_ARG)) {
		h.pageBuilder.render(w, r, http.StatusUnauthorized, pageOptions{
			TabID:      tabID,
			Criteria:   returnCriteria(r),
			LoginError: LOGIN_FAILED_MESSAGE,
		})
		return
	}
	redirectHome(w, r, tabID)
}

// Logout handles POST /v1/admin/logout.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tabID := TabID(r)
	h.adminGate.Logout(tabID)
	redirectHome(w, r, tabID)
}
