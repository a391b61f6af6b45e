// Package memory implements the domain repositories in memory for
// development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"tasklist/internal/app"
	"tasklist/internal/domain"
)

// DB implements all domain repositories behind one mutex.
type DB struct {
	mu       sync.Mutex
	accounts []*domain.Account
	sessions map[string]*domain.Session
	lists    []*domain.List
	items    []*domain.Item
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.AccountRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)
var _ domain.ListRepository = (*ListRepo)(nil)
var _ domain.ItemRepository = (*ItemRepo)(nil)

// --- AccountRepository ---

// Create adds an account, enforcing the unique-email rule.
func (db *DB) Create(ctx context.Context, a *domain.Account) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, existing := range db.accounts {
		if existing.Email == a.Email {
			return app.ErrEmailTaken
		}
	}
	cp := *a
	db.accounts = append(db.accounts, &cp)
	return nil
}

// GetByEmail retrieves an account by email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, a := range db.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID retrieves an account by id.
func (db *DB) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, a := range db.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence on DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps the DB as a SessionRepository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create stores a session.
func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	cp := *s
	r.db.sessions[s.Token] = &cp
	return nil
}

// GetByToken retrieves a session; expired sessions count as absent.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	if time.Now().After(s.ExpiresAt) {
		delete(r.db.sessions, token)
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// Delete removes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired removes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}

// --- ListRepository ---

// ListRepo implements list persistence on DB.
type ListRepo struct {
	db *DB
}

// NewListRepo wraps the DB as a ListRepository.
func (db *DB) NewListRepo() *ListRepo {
	return &ListRepo{db: db}
}

// ListByOwner returns the owner's lists ordered by title, then id.
func (r *ListRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.List, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := []domain.List{}
	for _, l := range r.db.lists {
		if l.OwnerID == ownerID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Create adds a list.
func (r *ListRepo) Create(ctx context.Context, l *domain.List) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	cp := *l
	r.db.lists = append(r.db.lists, &cp)
	return nil
}

// Update applies the non-nil fields of patch.
func (r *ListRepo) Update(ctx context.Context, ownerID, id string, patch domain.ListPatch) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	l := r.db.findList(ownerID, id)
	if l == nil {
		return app.ErrNotFound
	}
	if patch.Title != nil {
		l.Title = *patch.Title
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	return nil
}

// Delete removes a list and all of its items in one locked section,
// mirroring the cascade the SQL schema performs.
func (r *ListRepo) Delete(ctx context.Context, ownerID, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	idx := -1
	for i, l := range r.db.lists {
		if l.ID == id && l.OwnerID == ownerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return app.ErrNotFound
	}
	r.db.lists = append(r.db.lists[:idx], r.db.lists[idx+1:]...)

	kept := r.db.items[:0]
	for _, it := range r.db.items {
		if it.ListID != id {
			kept = append(kept, it)
		}
	}
	r.db.items = kept
	return nil
}

func (db *DB) findList(ownerID, id string) *domain.List {
	for _, l := range db.lists {
		if l.ID == id && l.OwnerID == ownerID {
			return l
		}
	}
	return nil
}

// --- ItemRepository ---

// ItemRepo implements item persistence on DB.
type ItemRepo struct {
	db *DB
}

// NewItemRepo wraps the DB as an ItemRepository.
func (db *DB) NewItemRepo() *ItemRepo {
	return &ItemRepo{db: db}
}

// ListByList returns the list's items in creation order.
func (r *ItemRepo) ListByList(ctx context.Context, ownerID, listID string) ([]domain.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := []domain.Item{}
	if r.db.findList(ownerID, listID) == nil {
		return out, nil
	}
	for _, it := range r.db.items {
		if it.ListID == listID {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Create adds an item after checking its list reference resolves.
func (r *ItemRepo) Create(ctx context.Context, ownerID string, it *domain.Item) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.db.findList(ownerID, it.ListID) == nil {
		return app.ErrNotFound
	}
	cp := *it
	r.db.items = append(r.db.items, &cp)
	return nil
}

// Update applies the non-nil fields of patch.
func (r *ItemRepo) Update(ctx context.Context, ownerID, id string, patch domain.ItemPatch) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, it := range r.db.items {
		if it.ID == id && r.db.findList(ownerID, it.ListID) != nil {
			if patch.Description != nil {
				it.Description = *patch.Description
			}
			if patch.Status != nil {
				it.Status = *patch.Status
			}
			return nil
		}
	}
	return app.ErrNotFound
}

// Delete removes a single item.
func (r *ItemRepo) Delete(ctx context.Context, ownerID, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, it := range r.db.items {
		if it.ID == id && r.db.findList(ownerID, it.ListID) != nil {
			r.db.items = append(r.db.items[:i], r.db.items[i+1:]...)
			return nil
		}
	}
	return app.ErrNotFound
}
