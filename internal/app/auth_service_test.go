package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tasklist/internal/domain"
)

type mockAccountRepo struct {
	createFn     func(ctx context.Context, a *domain.Account) error
	getByEmailFn func(ctx context.Context, email string) (*domain.Account, error)
	getByIDFn    func(ctx context.Context, id string) (*domain.Account, error)
}

func (m *mockAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	if m.createFn != nil {
		return m.createFn(ctx, a)
	}
	return nil
}

func (m *mockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

type mockSessionRepo struct {
	createFn        func(ctx context.Context, s *domain.Session) error
	getByTokenFn    func(ctx context.Context, token string) (*domain.Session, error)
	deleteFn        func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context) error
}

func (m *mockSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(&mockAccountRepo{}, &mockSessionRepo{}, 0)
	ctx := context.Background()

	err := svc.Register(ctx, "", "a@b.c", "pw", nil)
	assert.True(t, IsValidation(err))

	err = svc.Register(ctx, "Ann", "  ", "pw", nil)
	assert.True(t, IsValidation(err))

	err = svc.Register(ctx, "Ann", "a@b.c", "", nil)
	assert.True(t, IsValidation(err))

	wrong := "other"
	err = svc.Register(ctx, "Ann", "a@b.c", "pw", &wrong)
	assert.True(t, IsValidation(err))
}

func TestRegisterHashesPassword(t *testing.T) {
	var created *domain.Account
	accounts := &mockAccountRepo{
		createFn: func(_ context.Context, a *domain.Account) error {
			created = a
			return nil
		},
	}
	svc := NewAuthService(accounts, &mockSessionRepo{}, 0)

	confirm := "secret"
	require.NoError(t, svc.Register(context.Background(), "Ann", "a@b.c", "secret", &confirm))
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "secret", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	accounts := &mockAccountRepo{
		createFn: func(_ context.Context, _ *domain.Account) error {
			return ErrEmailTaken
		},
	}
	svc := NewAuthService(accounts, &mockSessionRepo{}, 0)

	err := svc.Register(context.Background(), "Ann", "a@b.c", "secret", nil)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockAccountRepo{}, &mockSessionRepo{}, 0)

	_, _, err := svc.Login(context.Background(), "nobody@b.c", "pw")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	accounts := &mockAccountRepo{
		getByEmailFn: func(_ context.Context, _ string) (*domain.Account, error) {
			return &domain.Account{ID: "u1", Email: "a@b.c", Name: "Ann", PasswordHash: hashOf(t, "right")}, nil
		},
	}
	var sessionCreated bool
	sessions := &mockSessionRepo{
		createFn: func(_ context.Context, _ *domain.Session) error {
			sessionCreated = true
			return nil
		},
	}
	svc := NewAuthService(accounts, sessions, 0)

	_, _, err := svc.Login(context.Background(), "a@b.c", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, sessionCreated)
}

func TestLoginCreatesSessionSnapshot(t *testing.T) {
	accounts := &mockAccountRepo{
		getByEmailFn: func(_ context.Context, _ string) (*domain.Account, error) {
			return &domain.Account{ID: "u1", Email: "a@b.c", Name: "Ann", PasswordHash: hashOf(t, "secret")}, nil
		},
	}
	var stored *domain.Session
	sessions := &mockSessionRepo{
		createFn: func(_ context.Context, s *domain.Session) error {
			stored = s
			return nil
		},
	}
	svc := NewAuthService(accounts, sessions, time.Hour)

	token, session, err := svc.Login(context.Background(), " a@b.c ", "secret")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, token, stored.Token)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u1", session.AccountID)
	assert.Equal(t, "Ann", session.Name)
	assert.Equal(t, "a@b.c", session.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), stored.ExpiresAt, time.Minute)
}

func TestSessionExpiredIsAbsentAndDeleted(t *testing.T) {
	var deleted string
	sessions := &mockSessionRepo{
		getByTokenFn: func(_ context.Context, token string) (*domain.Session, error) {
			return &domain.Session{Token: token, AccountID: "u1", ExpiresAt: time.Now().Add(-time.Minute)}, nil
		},
		deleteFn: func(_ context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	svc := NewAuthService(&mockAccountRepo{}, sessions, 0)

	got, err := svc.Session(context.Background(), "tok")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, "tok", deleted)
}

func TestSessionEmptyToken(t *testing.T) {
	svc := NewAuthService(&mockAccountRepo{}, &mockSessionRepo{}, 0)

	got, err := svc.Session(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, got)
}
