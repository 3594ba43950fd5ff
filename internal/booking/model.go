package booking

import (
	"net/http"
	"time"

	"github.com/wanderpk/tour-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrFullNameRequired = apperror.New(http.StatusBadRequest, "full name is required")
	ErrPhoneRequired    = apperror.New(http.StatusBadRequest, "phone is required")
	ErrCategoryRequired = apperror.New(http.StatusBadRequest, "tour category is required")
	ErrPackageRequired  = apperror.New(http.StatusBadRequest, "trip package is required")
	ErrDatesRequired    = apperror.New(http.StatusBadRequest, "start and end dates are required")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "end date must not precede start date")
	ErrNegativeCount    = apperror.New(http.StatusBadRequest, "guest counts must not be negative")
	ErrNoGuests         = apperror.New(http.StatusBadRequest, "at least one guest is required")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrStatusFinal      = apperror.New(http.StatusConflict, "confirmed bookings cannot be reverted to pending")
)

// Status is the moderation state of a booking request.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
)

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking represents one guest's trip reservation request.
// TotalGuests and TripDays are derived server-side on creation.
type Booking struct {
	ID              string
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
	TotalGuests     int
	StartDate       time.Time // date only, midnight UTC
	EndDate         time.Time // date only, midnight UTC
	TripDays        int
	SpecialRequests string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	// Search matches case-insensitive substrings of full name, phone
	// and trip package.
	Search string
	// Status is an exact match; empty means all statuses.
	Status   string
	Page     int
	PageSize int
}

// TotalGuests sums the party composition counts.
func TotalGuests(male, female, children int) int {
	return male + female + children
}

// TripDays returns the inclusive day count between start and end.
// It returns 0 when either date is missing or end precedes start.
func TripDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 0
	}
	return days
}

// AdjustCount applies delta to a guest count, clamping at zero.
// There is no upper bound.
func AdjustCount(current, delta int) int {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}
