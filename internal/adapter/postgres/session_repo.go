package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tasklist/internal/domain"
)

// SessionRepo implements domain.SessionRepository.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create inserts a new session.
func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO sessions (token, account_id, name, email, expires_at, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		s.Token, s.AccountID, s.Name, s.Email, s.ExpiresAt, s.CreatedAt,
	)
	return err
}

// GetByToken retrieves a session by token, nil when absent.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT token, account_id, name, email, expires_at, created_at FROM sessions WHERE token = $1",
		token,
	).Scan(&s.Token, &s.AccountID, &s.Name, &s.Email, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE token = $1", token)
	return err
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < $1", time.Now())
	return err
}
