package adapthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tasklist/internal/domain"
)

func (s *Server) handleGetLists(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	lists, err := s.lists.All(r.Context(), session.AccountID)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "lists": lists})
}

func (s *Server) handleAddList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title  string        `json:"title"`
		Status domain.Status `json:"status"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request")
		return
	}

	session := sessionFrom(r)
	list, err := s.lists.Create(r.Context(), session.AccountID, req.Title, req.Status)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "List added successfully",
		"list":    list,
	})
}

func (s *Server) handleUpdateList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title  *string        `json:"title"`
		Status *domain.Status `json:"status"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request")
		return
	}

	session := sessionFrom(r)
	patch := domain.ListPatch{Title: req.Title, Status: req.Status}
	if err := s.lists.Update(r.Context(), session.AccountID, chi.URLParam(r, "id"), patch); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "List updated successfully"})
}

func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if err := s.lists.Delete(r.Context(), session.AccountID, chi.URLParam(r, "id")); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "List deleted successfully"})
}
