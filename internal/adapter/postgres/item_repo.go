package postgres

import (
	"context"
	"fmt"
	"strings"

	"tasklist/internal/app"
	"tasklist/internal/domain"
)

// ItemRepo implements domain.ItemRepository. Owner scoping goes
// through the parent list, so every statement joins lists.
type ItemRepo struct {
	db *DB
}

// NewItemRepo wraps a DB as an ItemRepository.
func NewItemRepo(db *DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// ListByList returns the list's items in creation order.
func (r *ItemRepo) ListByList(ctx context.Context, ownerID, listID string) ([]domain.Item, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT i.id, i.list_id, i.description, i.status, i.created_at
		 FROM items i JOIN lists l ON l.id = i.list_id
		 WHERE i.list_id = $1 AND l.owner_id = $2
		 ORDER BY i.created_at ASC, i.id ASC`,
		listID, ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.ListID, &it.Description, &it.Status, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Create inserts an item, atomically verifying that the referenced
// list exists and belongs to the owner. No row inserted means the list
// reference did not resolve.
func (r *ItemRepo) Create(ctx context.Context, ownerID string, it *domain.Item) error {
	res, err := r.db.sql.ExecContext(ctx,
		`INSERT INTO items (id, list_id, description, status, created_at)
		 SELECT $1, $2, $3, $4, $5
		 WHERE EXISTS (SELECT 1 FROM lists WHERE id = $2 AND owner_id = $6)`,
		it.ID, it.ListID, it.Description, it.Status, it.CreatedAt, ownerID,
	)
	if pqCode(err, codeForeignKeyViolation) {
		return app.ErrNotFound
	}
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

// Update applies the non-nil fields of patch, scoped via the parent
// list's owner.
func (r *ItemRepo) Update(ctx context.Context, ownerID, id string, patch domain.ItemPatch) error {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(sets) == 0 {
		return app.Validationf("at least one field required")
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(
		`UPDATE items i SET %s FROM lists l
		 WHERE l.id = i.list_id AND i.id = $%d AND l.owner_id = $%d`,
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

// Delete removes a single item, scoped via the parent list's owner.
func (r *ItemRepo) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.db.sql.ExecContext(ctx,
		`DELETE FROM items i USING lists l
		 WHERE l.id = i.list_id AND i.id = $1 AND l.owner_id = $2`,
		id, ownerID)
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
