package http

import (
	"time"

	"github.com/wanderpk/tour-booking-backend/internal/booking"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/request"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// CreateBookingBody is the guest intake payload. Guest counts default to
// zero; the party must sum to at least one guest, which the service
// enforces before anything is written.
type CreateBookingBody struct {
	FullName        string `json:"full_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	EmergencyPhone  string `json:"emergency_phone"`
	CNIC            string `json:"cnic"`
	Address         string `json:"address"`
	TourCategory    string `json:"tour_category" binding:"required"`
	TripPackage     string `json:"trip_package" binding:"required"`
	MaleCount       int    `json:"male_count" binding:"omitempty,min=0"`
	FemaleCount     int    `json:"female_count" binding:"omitempty,min=0"`
	ChildrenCount   int    `json:"children_count" binding:"omitempty,min=0"`
	StartDate       string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate         string `json:"end_date" binding:"required,datetime=2006-01-02"`
	SpecialRequests string `json:"special_requests"`
}

// ToCreateRequest parses the date strings and maps the body onto the
// service request. Date validity beyond the layout is left to the service.
func (b *CreateBookingBody) ToCreateRequest() (booking.CreateRequest, error) {
	start, err := time.Parse(DateLayout, b.StartDate)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	end, err := time.Parse(DateLayout, b.EndDate)
	if err != nil {
		return booking.CreateRequest{}, err
	}

	return booking.CreateRequest{
		FullName:        b.FullName,
		Phone:           b.Phone,
		EmergencyPhone:  b.EmergencyPhone,
		CNIC:            b.CNIC,
		Address:         b.Address,
		TourCategory:    b.TourCategory,
		TripPackage:     b.TripPackage,
		MaleCount:       b.MaleCount,
		FemaleCount:     b.FemaleCount,
		ChildrenCount:   b.ChildrenCount,
		StartDate:       start,
		EndDate:         end,
		SpecialRequests: b.SpecialRequests,
	}, nil
}

// ListBookingsRequest defines query parameters for the moderation list.
type ListBookingsRequest struct {
	request.ListParams
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=Pending Confirmed"`
}

// UpdateStatusBody carries the admin moderation decision.
type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=Pending Confirmed"`
}

type BookingResponse struct {
	ID              string    `json:"id"`
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone"`
	EmergencyPhone  string    `json:"emergency_phone,omitempty"`
	CNIC            string    `json:"cnic,omitempty"`
	Address         string    `json:"address,omitempty"`
	TourCategory    string    `json:"tour_category"`
	TripPackage     string    `json:"trip_package"`
	MaleCount       int       `json:"male_count"`
	FemaleCount     int       `json:"female_count"`
	ChildrenCount   int       `json:"children_count"`
	TotalGuests     int       `json:"total_guests"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	TripDays        int       `json:"trip_days"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		FullName:        b.FullName,
		Phone:           b.Phone,
		EmergencyPhone:  b.EmergencyPhone,
		CNIC:            b.CNIC,
		Address:         b.Address,
		TourCategory:    b.TourCategory,
		TripPackage:     b.TripPackage,
		MaleCount:       b.MaleCount,
		FemaleCount:     b.FemaleCount,
		ChildrenCount:   b.ChildrenCount,
		TotalGuests:     b.TotalGuests,
		StartDate:       b.StartDate.Format(DateLayout),
		EndDate:         b.EndDate.Format(DateLayout),
		TripDays:        b.TripDays,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func newBookingResponses(list []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(list))
	for i, b := range list {
		items[i] = NewBookingResponse(b)
	}
	return items
}
