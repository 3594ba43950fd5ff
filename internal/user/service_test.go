package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	users  map[string]*User
	nextID int
}

func newStubRepository() *stubRepository {
	return &stubRepository{users: make(map[string]*User)}
}

func (r *stubRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *stubRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubRepository) Create(_ context.Context, u *User) error {
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubRepository) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLoginAt = &t
	return nil
}

func (r *stubRepository) SetAdmin(_ context.Context, id string, isAdmin bool) error {
	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsAdmin = isAdmin
	return nil
}

func (r *stubRepository) List(_ context.Context, _ Filter) ([]*User, int, error) {
	var list []*User
	for _, u := range r.users {
		clone := *u
		list = append(list, &clone)
	}
	return list, len(list), nil
}

func (r *stubRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// plainHasher avoids bcrypt cost in unit tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hash:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

func allowlist(emails ...string) func(string) bool {
	return func(email string) bool {
		for _, e := range emails {
			if e == email {
				return true
			}
		}
		return false
	}
}

func TestServiceRegister(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, plainHasher{}, allowlist("boss@tours.pk"))

	t.Run("regular user", func(t *testing.T) {
		u, err := svc.Register(context.Background(), " Guest@Tours.PK ", "password123", "Guest")
		require.NoError(t, err)
		assert.Equal(t, "guest@tours.pk", u.Email)
		assert.False(t, u.IsAdmin)
		assert.True(t, u.IsActive)
	})

	t.Run("allowlisted email becomes admin", func(t *testing.T) {
		u, err := svc.Register(context.Background(), "boss@tours.pk", "password123", "")
		require.NoError(t, err)
		assert.True(t, u.IsAdmin)
		assert.Nil(t, u.DisplayName)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(context.Background(), "guest@tours.pk", "password123", "")
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(context.Background(), "new@tours.pk", "short", "")
		assert.Error(t, err)
	})
}

func TestServiceLogin(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, plainHasher{}, allowlist("late@tours.pk"))

	registered, err := svc.Register(context.Background(), "guest@tours.pk", "password123", "")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.Login(context.Background(), "guest@tours.pk", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)

		stored, err := repo.GetByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored.LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "guest@tours.pk", "nope-wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost@tours.pk", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		u, err := svc.Register(context.Background(), "gone@tours.pk", "password123", "")
		require.NoError(t, err)
		repo.users[u.ID].IsActive = false

		_, err = svc.Login(context.Background(), "gone@tours.pk", "password123")
		assert.ErrorIs(t, err, ErrInactiveUser)
	})

	t.Run("allowlisted account is promoted at login", func(t *testing.T) {
		// Registered before the email joined the allowlist.
		svcNoList := NewService(repo, plainHasher{}, nil)
		u, err := svcNoList.Register(context.Background(), "late@tours.pk", "password123", "")
		require.NoError(t, err)
		require.False(t, u.IsAdmin)

		promoted, err := svc.Login(context.Background(), "late@tours.pk", "password123")
		require.NoError(t, err)
		assert.True(t, promoted.IsAdmin)

		stored, err := repo.GetByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsAdmin)
	})
}
