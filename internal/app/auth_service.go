package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tasklist/internal/domain"
)

// AuthService handles registration, authentication and session management.
type AuthService struct {
	accounts   domain.AccountRepository
	sessions   domain.SessionRepository
	sessionTTL time.Duration
}

// NewAuthService creates an authentication service. A non-positive ttl
// falls back to 24 hours.
func NewAuthService(accounts domain.AccountRepository, sessions domain.SessionRepository, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{accounts: accounts, sessions: sessions, sessionTTL: ttl}
}

// SessionTTL returns the configured session lifetime.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Register validates the input, hashes the password and creates the
// account. confirm is optional; when supplied it must match password.
func (s *AuthService) Register(ctx context.Context, name, email, password string, confirm *string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return Validationf("name, email, and password are required")
	}
	if confirm != nil && *confirm != password {
		return Validationf("passwords do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.accounts.Create(ctx, &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
}

// Login verifies the credentials and creates a session holding a
// snapshot of the account. It returns the session token and snapshot.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, Validationf("email and password are required")
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if account == nil {
		return "", nil, ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", nil, err
	}

	session := &domain.Session{
		Token:     token,
		AccountID: account.ID,
		Name:      account.Name,
		Email:     account.Email,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, err
	}
	return token, session, nil
}

// Logout destroys the session for the given token. Unknown tokens are
// not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Session returns the account snapshot for a token, or nil when the
// token is unknown or expired. Expired sessions are deleted on read.
func (s *AuthService) Session(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, nil
	}
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, nil
	}
	return session, nil
}

// SweepExpired removes all expired sessions.
func (s *AuthService) SweepExpired(ctx context.Context) error {
	return s.sessions.DeleteExpired(ctx)
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
