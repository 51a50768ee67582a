package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"cardapio-server/models"
	services "cardapio-server/service"
	"cardapio-server/view"

	"github.com/gorilla/mux"
)

const (
	AUTHOR_FORM_ARG = "nome"
	RATING_FORM_ARG = "nota"
	BODY_FORM_ARG   = "comentario"
	INDEX_PATH_VAR  = "index"
)

type CommentHandler struct {
	commentService *services.CommentService
	adminGate      *services.AdminGate
	pageBuilder    *PageBuilder
}

func NewCommentHandler(
	commentService *services.CommentService,
	adminGate *services.AdminGate,
	pageBuilder *PageBuilder) *CommentHandler {

	return &CommentHandler{
		commentService: commentService,
		adminGate:      adminGate,
		pageBuilder:    pageBuilder,
	}
}

// PostComment handles POST /v1/comments.
func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	tabID := TabID(r)
	author := r.FormValue(AUTHOR_FORM_ARG)
	body := r.FormValue(BODY_FORM_ARG)
	// Unparseable ratings become 0 and are rejected by validation.
	rating, _ := strconv.Atoi(r.FormValue(RATING_FORM_ARG))

	_, err := h.commentService.Append(ProfileID(r), author, rating, body)
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.pageBuilder.render(w, r, http.StatusBadRequest, pageOptions{
			TabID:        tabID,
			Criteria:     returnCriteria(r),
			Draft:        view.CommentDraft{Author: author, Rating: rating, Body: body},
			CommentError: validationErr.Message,
		})
	case err != nil:
		log.Println("[CommentHandler] Error storing comment:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	default:
		redirectHome(w, r, tabID)
	}
}

// DeleteComment handles POST /v1/comments/{index}/delete for admin tabs.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	tabID := TabID(r)
	if !h.adminGate.IsAdmin(tabID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)[INDEX_PATH_VAR])
	if err != nil {
		http.Error(w, "Invalid argument "+INDEX_PATH_VAR, http.StatusBadRequest)
		return
	}

	deleted, err := h.commentService.DeleteAt(ProfileID(r), index)
	if err != nil {
		log.Println("[CommentHandler] Error deleting comment:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		log.Printf("[CommentHandler] No comment at index %d, nothing deleted", index)
	}
	redirectHome(w, r, tabID)
}

func returnCriteria(r *http.Request) models.FilterCriteria {
	vals, err := parseReturnQuery(r)
	if err != nil {
		return models.FilterCriteria{}
	}
	return models.FilterCriteriaFromValues(vals)
}
