package domain

import (
	"context"
	"time"
)

// Status is the workflow state shared by lists and items.
type Status string

// Recognized status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the recognized status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// List is a named collection of items owned by one account.
type List struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	Title     string    `json:"title"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Item is a single task belonging to exactly one list.
type Item struct {
	ID          string    `json:"id"`
	ListID      string    `json:"list_id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListPatch carries the optional fields of a partial list update. Nil
// means "leave unchanged".
type ListPatch struct {
	Title  *string
	Status *Status
}

// ItemPatch carries the optional fields of a partial item update.
type ItemPatch struct {
	Description *string
	Status      *Status
}

// ListRepository defines the port for list persistence operations. All
// operations are scoped to an owning account; ids belonging to another
// account behave as missing.
type ListRepository interface {
	// ListByOwner returns the owner's lists ordered by title
	// ascending, ties broken by id.
	ListByOwner(ctx context.Context, ownerID string) ([]List, error)
	Create(ctx context.Context, l *List) error
	// Update applies the non-nil fields of patch. Returns the typed
	// not-found error when the list does not exist for this owner.
	Update(ctx context.Context, ownerID, id string, patch ListPatch) error
	// Delete removes the list and all of its items.
	Delete(ctx context.Context, ownerID, id string) error
}

// ItemRepository defines the port for item persistence operations,
// scoped like ListRepository via the owning account of the parent list.
type ItemRepository interface {
	// ListByList returns the list's items in creation order.
	ListByList(ctx context.Context, ownerID, listID string) ([]Item, error)
	// Create fails with the typed not-found error when the referenced
	// list does not exist for this owner.
	Create(ctx context.Context, ownerID string, it *Item) error
	Update(ctx context.Context, ownerID, id string, patch ItemPatch) error
	Delete(ctx context.Context, ownerID, id string) error
}
