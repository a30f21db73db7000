package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/internal/utils"
	"github.com/MKhiriev/help-me-shop/internal/validators"
	"github.com/MKhiriev/help-me-shop/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies. Contents get room for the JSON envelope
// around them.
const maxBodyBytes = validators.MaxContentsLength + 64<<10

func (h *Handler) getList(w http.ResponseWriter, r *http.Request) {
	l, err := h.services.ListService.GetList(r.Context(), chi.URLParam(r, "listID"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getList", err)
		return
	}

	writeList(w, r, l, http.StatusOK)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.services.ListService.History(r.Context(), chi.URLParam(r, "listID"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getHistory", err)
		return
	}

	resp, err := revisionsResponse(history)
	if err != nil {
		writeInternalError(w, r, "*Handler.getHistory", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getMyLists(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	lists, err := h.services.ListService.GetUserLists(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.getMyLists", err)
		return
	}

	resp := models.ListsResponse{Lists: make([]models.ListView, 0, len(lists))}
	for _, l := range lists {
		view, err := l.View(utils.EncodeID)
		if err != nil {
			writeInternalError(w, r, "*Handler.getMyLists", err)
			return
		}
		resp.Lists = append(resp.Lists, view)
	}
	resp.Length = len(resp.Lists)

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	// an empty body creates a list with the default title
	var req models.CreateListRequest
	if r.ContentLength != 0 && !decodeBody(w, r, "*Handler.createList", &req) {
		return
	}

	l, err := h.services.ListService.CreateList(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.createList", err)
		return
	}

	writeList(w, r, l, http.StatusCreated)
}

func (h *Handler) replaceList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req models.ReplaceListRequest
	if !decodeBody(w, r, "*Handler.replaceList", &req) {
		return
	}

	l, err := h.services.ListService.ReplaceContents(r.Context(), userID, chi.URLParam(r, "listID"), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.replaceList", err)
		return
	}

	writeList(w, r, l, http.StatusOK)
}

func (h *Handler) deleteList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.ListService.DeleteList(r.Context(), userID, chi.URLParam(r, "listID")); err != nil {
		writeServiceError(w, r, "*Handler.deleteList", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req models.AddItemRequest
	if !decodeBody(w, r, "*Handler.addItem", &req) {
		return
	}

	l, item, err := h.services.ListService.AddItem(r.Context(), userID, chi.URLParam(r, "listID"), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.addItem", err)
		return
	}

	writeItem(w, r, l, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req models.UpdateItemRequest
	if !decodeBody(w, r, "*Handler.updateItem", &req) {
		return
	}

	l, item, err := h.services.ListService.UpdateItem(r.Context(), userID, chi.URLParam(r, "listID"), chi.URLParam(r, "ident"), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateItem", err)
		return
	}

	writeItem(w, r, l, item, http.StatusOK)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	l, err := h.services.ListService.RemoveItem(r.Context(), userID, chi.URLParam(r, "listID"), chi.URLParam(r, "ident"))
	if err != nil {
		writeServiceError(w, r, "*Handler.removeItem", err)
		return
	}

	writeList(w, r, l, http.StatusOK)
}

// requireUserID returns the user the auth middleware put in the context.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeList(w http.ResponseWriter, r *http.Request, l *models.List, status int) {
	view, err := l.View(utils.EncodeID)
	if err != nil {
		writeInternalError(w, r, "writeList", err)
		return
	}

	utils.WriteJSON(w, view, status)
}

func writeItem(w http.ResponseWriter, r *http.Request, l *models.List, item models.ListItem, status int) {
	view, err := l.View(utils.EncodeID)
	if err != nil {
		writeInternalError(w, r, "writeItem", err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse{Item: item, List: view}, status)
}

func revisionsResponse(history []*models.List) (models.RevisionsResponse, error) {
	resp := models.RevisionsResponse{Revisions: make([]models.RevisionView, 0, len(history))}
	for _, l := range history {
		if resp.ListID == "" {
			listID, err := utils.EncodeID(l.ListID)
			if err != nil {
				return models.RevisionsResponse{}, err
			}
			resp.ListID = listID
		}

		revisionID, err := utils.EncodeID(l.RevisionID)
		if err != nil {
			return models.RevisionsResponse{}, err
		}
		resp.Revisions = append(resp.Revisions, models.RevisionView{
			RevisionID: revisionID,
			EditedAt:   l.EditedAt.UTC(),
			Title:      l.Title,
		})
	}
	resp.Length = len(resp.Revisions)

	return resp, nil
}
