package adapthttp

import (
	"net/http"

	"tasklist/internal/domain"
)

type sessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func userFrom(s *domain.Session) sessionUser {
	return sessionUser{ID: s.AccountID, Name: s.Name, Email: s.Email}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string  `json:"name"`
		Email           string  `json:"email"`
		Password        string  `json:"password"`
		ConfirmPassword *string `json:"confirmPassword"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := s.auth.Register(r.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword); err != nil {
		s.writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "Registration successful"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request")
		return
	}

	token, session, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(s.auth.SessionTTL().Seconds()),
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"user":    userFrom(session),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "session": false})
		return
	}

	session, err := s.auth.Session(r.Context(), cookie.Value)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}
	if session == nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "session": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"session": true,
		"user":    userFrom(session),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if err := s.auth.Logout(r.Context(), session.Token); err != nil {
		s.writeAppError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logout successful"})
}
