package postgres

import (
	"context"
	"fmt"
	"strings"

	"tasklist/internal/app"
	"tasklist/internal/domain"
)

// ListRepo implements domain.ListRepository. All queries are scoped by
// owner_id so a foreign list id behaves as missing.
type ListRepo struct {
	db *DB
}

// NewListRepo wraps a DB as a ListRepository.
func NewListRepo(db *DB) *ListRepo {
	return &ListRepo{db: db}
}

// ListByOwner returns the owner's lists ordered by title, ties broken
// by id so the ordering is total.
func (r *ListRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.List, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, owner_id, title, status, created_at FROM lists WHERE owner_id = $1 ORDER BY title ASC, id ASC",
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.List{}
	for rows.Next() {
		var l domain.List
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Status, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Create inserts a new list.
func (r *ListRepo) Create(ctx context.Context, l *domain.List) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO lists (id, owner_id, title, status, created_at) VALUES ($1, $2, $3, $4, $5)",
		l.ID, l.OwnerID, l.Title, l.Status, l.CreatedAt,
	)
	return err
}

// Update applies the non-nil fields of patch. The SET clause is
// assembled from a fixed set of columns; user input only ever travels
// as a bind parameter.
func (r *ListRepo) Update(ctx context.Context, ownerID, id string, patch domain.ListPatch) error {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(sets) == 0 {
		return app.Validationf("at least one field required")
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf("UPDATE lists SET %s WHERE id = $%d AND owner_id = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args))

	res, err := r.db.sql.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return app.ErrNotFound
	}
	return nil
}

// Delete removes a list; its items go with it via ON DELETE CASCADE.
func (r *ListRepo) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.db.sql.ExecContext(ctx,
		"DELETE FROM lists WHERE id = $1 AND owner_id = $2", id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return app.ErrNotFound
	}
	return nil
}
