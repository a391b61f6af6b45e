package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tasklist/internal/domain"
)

// ItemService encapsulates item CRUD use cases, scoped by the owning
// account of the parent list.
type ItemService struct {
	repo domain.ItemRepository
}

// NewItemService creates an ItemService backed by the given repository.
func NewItemService(repo domain.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// ForList returns the items of one list in creation order.
func (s *ItemService) ForList(ctx context.Context, ownerID, listID string) ([]domain.Item, error) {
	return s.repo.ListByList(ctx, ownerID, listID)
}

// Create validates and stores a new item under listID. Fails with
// ErrNotFound when the list does not exist for this account.
func (s *ItemService) Create(ctx context.Context, ownerID, listID, description string, status domain.Status) (*domain.Item, error) {
	description = strings.TrimSpace(description)
	if listID == "" || description == "" {
		return nil, Validationf("list id and description required")
	}
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, Validationf("unknown status %q", status)
	}

	it := &domain.Item{
		ID:          uuid.NewString(),
		ListID:      listID,
		Description: description,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, ownerID, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Update applies a partial update. At least one field must be supplied.
func (s *ItemService) Update(ctx context.Context, ownerID, id string, patch domain.ItemPatch) error {
	if patch.Description == nil && patch.Status == nil {
		return Validationf("at least one field required")
	}
	if patch.Description != nil {
		d := strings.TrimSpace(*patch.Description)
		if d == "" {
			return Validationf("item description must not be empty")
		}
		patch.Description = &d
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return Validationf("unknown status %q", *patch.Status)
	}
	return s.repo.Update(ctx, ownerID, id, patch)
}

// Delete removes a single item.
func (s *ItemService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
