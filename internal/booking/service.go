package booking

import (
	"context"
	"log"
	"strings"
	"time"
)

// CreateRequest carries the normalized intake form fields.
// Dates are date-only values (midnight UTC).
type CreateRequest struct {
	FullName        string
	Phone           string
	EmergencyPhone  string
	CNIC            string
	Address         string
	TourCategory    string
	TripPackage     string
	MaleCount       int
	FemaleCount     int
	ChildrenCount   int
	StartDate       time.Time
	EndDate         time.Time
	SpecialRequests string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// Snapshot returns the full booking list ordered by created_at
	// descending, as delivered to live subscribers.
	Snapshot(ctx context.Context) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error)
	Delete(ctx context.Context, id string) error
	// Watch registers a live subscriber on the broadcast hub.
	Watch() (<-chan []*Booking, func())
}

type service struct {
	repo Repository
	hub  *Hub
}

func NewService(repo Repository, hub *Hub) Service {
	return &service{repo: repo, hub: hub}
}

// validate checks the intake preconditions. Nothing is written unless
// every required field is present and the party has at least one guest.
func validate(req *CreateRequest) error {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.TourCategory = strings.TrimSpace(req.TourCategory)
	req.TripPackage = strings.TrimSpace(req.TripPackage)

	if req.FullName == "" {
		return ErrFullNameRequired
	}
	if req.Phone == "" {
		return ErrPhoneRequired
	}
	if req.TourCategory == "" {
		return ErrCategoryRequired
	}
	if req.TripPackage == "" {
		return ErrPackageRequired
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return ErrDatesRequired
	}
	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidDateRange
	}
	if req.MaleCount < 0 || req.FemaleCount < 0 || req.ChildrenCount < 0 {
		return ErrNegativeCount
	}
	if TotalGuests(req.MaleCount, req.FemaleCount, req.ChildrenCount) < 1 {
		return ErrNoGuests
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	// Derived fields are computed here; client-supplied totals are ignored.
	b := &Booking{
		FullName:        req.FullName,
		Phone:           req.Phone,
		EmergencyPhone:  strings.TrimSpace(req.EmergencyPhone),
		CNIC:            strings.TrimSpace(req.CNIC),
		Address:         strings.TrimSpace(req.Address),
		TourCategory:    req.TourCategory,
		TripPackage:     req.TripPackage,
		MaleCount:       req.MaleCount,
		FemaleCount:     req.FemaleCount,
		ChildrenCount:   req.ChildrenCount,
		TotalGuests:     TotalGuests(req.MaleCount, req.FemaleCount, req.ChildrenCount),
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TripDays:        TripDays(req.StartDate, req.EndDate),
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		Status:          StatusPending,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.publish(ctx)
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Snapshot(ctx context.Context) ([]*Booking, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Same-status updates are a no-op success.
	if b.Status == status {
		return b, nil
	}

	// The only exposed transition is Pending -> Confirmed.
	if b.Status == StatusConfirmed && status == StatusPending {
		return nil, ErrStatusFinal
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	b.Status = status

	s.publish(ctx)
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx)
	return nil
}

func (s *service) Watch() (<-chan []*Booking, func()) {
	return s.hub.Subscribe()
}

// publish pushes a fresh snapshot to live subscribers. Failures only
// affect the feed, never the mutation that triggered them.
func (s *service) publish(ctx context.Context) {
	if s.hub.SubscriberCount() == 0 {
		return
	}
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("failed to load booking snapshot for live feed: %v", err)
		return
	}
	s.hub.Broadcast(list)
}
