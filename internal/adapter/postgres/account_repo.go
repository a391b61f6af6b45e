package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tasklist/internal/app"
	"tasklist/internal/domain"
)

// AccountRepo implements domain.AccountRepository.
type AccountRepo struct {
	db *DB
}

// NewAccountRepo wraps a DB as an AccountRepository.
func NewAccountRepo(db *DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// Create inserts a new account. A unique-constraint violation on the
// email column is translated to app.ErrEmailTaken.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO accounts (id, email, name, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)",
		a.ID, a.Email, a.Name, a.PasswordHash, a.CreatedAt,
	)
	if pqCode(err, codeUniqueViolation) {
		return app.ErrEmailTaken
	}
	return err
}

// GetByEmail retrieves an account by email, nil when absent.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.scanOne(r.db.sql.QueryRowContext(ctx,
		"SELECT id, email, name, password_hash, created_at FROM accounts WHERE email = $1",
		email,
	))
}

// GetByID retrieves an account by id, nil when absent.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.scanOne(r.db.sql.QueryRowContext(ctx,
		"SELECT id, email, name, password_hash, created_at FROM accounts WHERE id = $1",
		id,
	))
}

func (r *AccountRepo) scanOne(row *sql.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
