package trip

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "trip package not found")
	ErrNameRequired    = apperror.New(http.StatusBadRequest, "name is required")
	ErrSlugRequired    = apperror.New(http.StatusBadRequest, "slug is required")
	ErrSlugTaken       = apperror.New(http.StatusConflict, "slug already in use")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "price must not be negative")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "duration must be at least one day")
)

// Trip is a bookable itinerary shown in the tour catalog.
type Trip struct {
	ID           string
	Name         string
	Slug         string
	Category     string // tour-category key, free text (not foreign-key enforced)
	DurationDays int
	Price        decimal.Decimal
	ImageURL     string
	Description  string
	Highlights   []string
	Difficulty   string
	Badge        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing trip packages.
type Filter struct {
	Category   string
	OnlyActive bool
	Page       int
	PageSize   int
}
