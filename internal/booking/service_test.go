package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepository is an in-memory Repository for service tests.
type stubRepository struct {
	bookings    map[string]*Booking
	nextID      int
	createCalls int
	deleteCalls int
}

func newStubRepository() *stubRepository {
	return &stubRepository{bookings: make(map[string]*Booking)}
}

func (r *stubRepository) Create(_ context.Context, b *Booking) error {
	r.createCalls++
	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *stubRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubRepository) List(ctx context.Context, _ Filter) ([]*Booking, int, error) {
	all, err := r.ListAll(ctx)
	return all, len(all), err
}

func (r *stubRepository) ListAll(_ context.Context) ([]*Booking, error) {
	var list []*Booking
	for _, b := range r.bookings {
		clone := *b
		list = append(list, &clone)
	}
	return list, nil
}

func (r *stubRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *stubRepository) Delete(_ context.Context, id string) error {
	r.deleteCalls++
	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		FullName:     "Ayesha Khan",
		Phone:        "+92-300-1234567",
		TourCategory: "adventure",
		TripPackage:  "Hunza & Skardu Explorer",
		MaleCount:    2,
		FemaleCount:  1,
		StartDate:    date("2026-03-10"),
		EndDate:      date("2026-03-17"),
	}
}

func TestServiceCreateDerivesFields(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, NewHub())

	req := validCreateRequest()
	req.MaleCount = 99 // arbitrary; derived total must still match
	b, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 100, b.TotalGuests)
	assert.Equal(t, 8, b.TripDays)
	assert.Equal(t, StatusPending, b.Status)
	assert.NotEmpty(t, b.ID)
}

func TestServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"missing full name", func(r *CreateRequest) { r.FullName = "  " }, ErrFullNameRequired},
		{"missing phone", func(r *CreateRequest) { r.Phone = "" }, ErrPhoneRequired},
		{"missing category", func(r *CreateRequest) { r.TourCategory = "" }, ErrCategoryRequired},
		{"missing package", func(r *CreateRequest) { r.TripPackage = "" }, ErrPackageRequired},
		{"missing dates", func(r *CreateRequest) { r.StartDate = time.Time{}; r.EndDate = time.Time{} }, ErrDatesRequired},
		{"end before start", func(r *CreateRequest) { r.StartDate, r.EndDate = r.EndDate, r.StartDate }, ErrInvalidDateRange},
		{"negative count", func(r *CreateRequest) { r.MaleCount = -1 }, ErrNegativeCount},
		{"zero guests", func(r *CreateRequest) { r.MaleCount, r.FemaleCount, r.ChildrenCount = 0, 0, 0 }, ErrNoGuests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubRepository()
			svc := NewService(repo, NewHub())

			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			// A rejected request must write nothing.
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, NewHub())

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	t.Run("pending to confirmed", func(t *testing.T) {
		got, err := svc.UpdateStatus(context.Background(), b.ID, StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, got.Status)

		stored, err := svc.GetByID(context.Background(), b.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, stored.Status)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		got, err := svc.UpdateStatus(context.Background(), b.ID, StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, got.Status)
	})

	t.Run("confirmed cannot revert", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), b.ID, StatusPending)
		assert.ErrorIs(t, err, ErrStatusFinal)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), b.ID, Status("Archived"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), "missing", StatusConfirmed)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceDelete(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, NewHub())

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), b.ID))

	_, err = svc.GetByID(context.Background(), b.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("missing booking short-circuits", func(t *testing.T) {
		before := repo.deleteCalls
		err := svc.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, before, repo.deleteCalls)
	})
}

func TestServicePublishesToSubscribers(t *testing.T) {
	repo := newStubRepository()
	hub := NewHub()
	svc := NewService(repo, hub)

	ch, unsubscribe := svc.Watch()
	defer unsubscribe()

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	select {
	case list := <-ch:
		require.Len(t, list, 1)
		assert.Equal(t, StatusPending, list[0].Status)
	default:
		t.Fatal("expected a snapshot after create")
	}
}
