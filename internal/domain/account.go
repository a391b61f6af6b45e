// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Account represents a registered user of the system.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the server-side record behind a cookie-carried token. It
// holds a snapshot of the account taken at login time; the snapshot is
// never refreshed if the account changes afterwards.
type Session struct {
	Token     string
	AccountID string
	Name      string
	Email     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// AccountRepository defines the port for account persistence operations.
type AccountRepository interface {
	// Create persists a new account. Implementations translate a
	// duplicate email into the typed email-taken error.
	Create(ctx context.Context, a *Account) error
	// GetByEmail returns nil, nil when no account matches.
	GetByEmail(ctx context.Context, email string) (*Account, error)
	// GetByID returns nil, nil when no account matches.
	GetByID(ctx context.Context, id string) (*Account, error)
}

// SessionRepository defines the port for session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	// GetByToken returns nil, nil for unknown tokens. Implementations
	// may also treat expired sessions as absent.
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
