package category

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	categories map[string]*Category
	nextID     int
}

func newStubRepository() *stubRepository {
	return &stubRepository{categories: make(map[string]*Category)}
}

func (r *stubRepository) Create(_ context.Context, cat *Category) error {
	for _, existing := range r.categories {
		if existing.Key == cat.Key {
			return ErrKeyTaken
		}
	}
	r.nextID++
	cat.ID = fmt.Sprintf("cat-%d", r.nextID)
	clone := *cat
	r.categories[cat.ID] = &clone
	return nil
}

func (r *stubRepository) GetByID(_ context.Context, id string) (*Category, error) {
	cat, ok := r.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *cat
	return &clone, nil
}

func (r *stubRepository) List(_ context.Context) ([]*Category, error) {
	var list []*Category
	for _, cat := range r.categories {
		clone := *cat
		list = append(list, &clone)
	}
	return list, nil
}

func (r *stubRepository) Update(_ context.Context, cat *Category) error {
	if _, ok := r.categories[cat.ID]; !ok {
		return ErrNotFound
	}
	clone := *cat
	r.categories[cat.ID] = &clone
	return nil
}

func (r *stubRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func TestServiceCreate(t *testing.T) {
	svc := NewService(newStubRepository())

	t.Run("key is normalized", func(t *testing.T) {
		cat, err := svc.Create(context.Background(), CreateRequest{
			Name: "Adventure Tours",
			Key:  " Adventure ",
		})
		require.NoError(t, err)
		assert.Equal(t, "adventure", cat.Key)
	})

	t.Run("duplicate key", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateRequest{
			Name: "More Adventure",
			Key:  "ADVENTURE",
		})
		assert.ErrorIs(t, err, ErrKeyTaken)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateRequest{Key: "family"})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateRequest{Name: "Family"})
		assert.ErrorIs(t, err, ErrKeyRequired)
	})
}

func TestServiceUpdate(t *testing.T) {
	svc := NewService(newStubRepository())

	cat, err := svc.Create(context.Background(), CreateRequest{
		Name: "Corporate", Key: "corporate",
	})
	require.NoError(t, err)

	newName := "Corporate Retreats"
	updated, err := svc.Update(context.Background(), cat.ID, UpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Corporate Retreats", updated.Name)
	assert.Equal(t, "corporate", updated.Key)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "missing", UpdateRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
