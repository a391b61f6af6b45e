package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tasklist/internal/domain"
)

// ListService encapsulates list CRUD use cases. Every operation is
// scoped to the owning account.
type ListService struct {
	repo domain.ListRepository
}

// NewListService creates a ListService backed by the given repository.
func NewListService(repo domain.ListRepository) *ListService {
	return &ListService{repo: repo}
}

// All returns the account's lists ordered by title ascending.
func (s *ListService) All(ctx context.Context, ownerID string) ([]domain.List, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create validates and stores a new list. An empty status defaults to
// pending.
func (s *ListService) Create(ctx context.Context, ownerID, title string, status domain.Status) (*domain.List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, Validationf("list title required")
	}
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, Validationf("unknown status %q", status)
	}

	l := &domain.List{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Update applies a partial update. At least one field must be supplied.
func (s *ListService) Update(ctx context.Context, ownerID, id string, patch domain.ListPatch) error {
	if patch.Title == nil && patch.Status == nil {
		return Validationf("at least one field required")
	}
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if t == "" {
			return Validationf("list title must not be empty")
		}
		patch.Title = &t
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return Validationf("unknown status %q", *patch.Status)
	}
	return s.repo.Update(ctx, ownerID, id, patch)
}

// Delete removes a list and, with it, all of its items.
func (s *ListService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
