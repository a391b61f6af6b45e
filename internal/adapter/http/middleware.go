package adapthttp

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"tasklist/internal/domain"
)

type contextKey string

const sessionContextKey contextKey = "session"

// sessionCookie is the name of the HTTP-only cookie carrying the token.
const sessionCookie = "session"

// requireSession validates the session cookie and stores the account
// snapshot in the request context. Missing or invalid cookies yield 401.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			writeFail(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		session, err := s.auth.Session(r.Context(), cookie.Value)
		if err != nil {
			s.writeAppError(w, r, err)
			return
		}
		if session == nil {
			writeFail(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session snapshot stored by requireSession.
func sessionFrom(r *http.Request) *domain.Session {
	session, _ := r.Context().Value(sessionContextKey).(*domain.Session)
	return session
}

// withTimeout bounds every request, and with it every store call made
// on its behalf.
func withTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// requestLogger logs one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("dur", time.Since(start)),
		)
	})
}
