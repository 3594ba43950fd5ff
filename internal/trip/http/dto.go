package http

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/request"
	"github.com/wanderpk/tour-booking-backend/internal/trip"
)

type ListTripsRequest struct {
	request.ListParams
	Category string `form:"category"`
}

type CreateTripBody struct {
	Name         string          `json:"name" binding:"required"`
	Slug         string          `json:"slug" binding:"required"`
	Category     string          `json:"category"`
	DurationDays int             `json:"duration_days" binding:"required,min=1"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	Description  string          `json:"description"`
	Highlights   []string        `json:"highlights"`
	Difficulty   string          `json:"difficulty" binding:"omitempty,oneof=easy moderate hard"`
	Badge        string          `json:"badge"`
	IsActive     *bool           `json:"is_active"`
}

type UpdateTripBody struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	DurationDays *int             `json:"duration_days" binding:"omitempty,min=1"`
	Price        *decimal.Decimal `json:"price"`
	ImageURL     *string          `json:"image_url"`
	Description  *string          `json:"description"`
	Highlights   *[]string        `json:"highlights"`
	Difficulty   *string          `json:"difficulty" binding:"omitempty,oneof=easy moderate hard"`
	Badge        *string          `json:"badge"`
	IsActive     *bool            `json:"is_active"`
}

type TripResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Category     string          `json:"category"`
	DurationDays int             `json:"duration_days"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	Description  string          `json:"description"`
	Highlights   []string        `json:"highlights"`
	Difficulty   string          `json:"difficulty"`
	Badge        string          `json:"badge,omitempty"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewTripResponse(t *trip.Trip) TripResponse {
	highlights := t.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	return TripResponse{
		ID:           t.ID,
		Name:         t.Name,
		Slug:         t.Slug,
		Category:     t.Category,
		DurationDays: t.DurationDays,
		Price:        t.Price,
		ImageURL:     t.ImageURL,
		Description:  t.Description,
		Highlights:   highlights,
		Difficulty:   t.Difficulty,
		Badge:        t.Badge,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
