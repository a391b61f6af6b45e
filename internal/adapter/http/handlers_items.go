package adapthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tasklist/internal/domain"
)

func (s *Server) handleGetItems(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	items, err := s.items.ForList(r.Context(), session.AccountID, chi.URLParam(r, "listID"))
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "items": items})
}

// handleAddItem accepts the item text under "title" and stores it as
// the item's description.
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ListID string        `json:"list_id"`
		Title  string        `json:"title"`
		Status domain.Status `json:"status"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request")
		return
	}

	session := sessionFrom(r)
	item, err := s.items.Create(r.Context(), session.AccountID, req.ListID, req.Title, req.Status)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Item added successfully",
		"item":    item,
	})
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title  *string        `json:"title"`
		Status *domain.Status `json:"status"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request")
		return
	}

	session := sessionFrom(r)
	patch := domain.ItemPatch{Description: req.Title, Status: req.Status}
	if err := s.items.Update(r.Context(), session.AccountID, chi.URLParam(r, "id"), patch); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Item updated successfully"})
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if err := s.items.Delete(r.Context(), session.AccountID, chi.URLParam(r, "id")); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Item deleted successfully"})
}
