package contact

import (
	"net/http"
	"time"

	"github.com/wanderpk/tour-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "message not found")
	ErrNameRequired    = apperror.New(http.StatusBadRequest, "name is required")
	ErrMessageRequired = apperror.New(http.StatusBadRequest, "message is required")
	ErrContactRequired = apperror.New(http.StatusBadRequest, "an email or phone number is required")
)

// Message is one submission of the landing-page contact form.
type Message struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Body      string
	CreatedAt time.Time
}

// Filter defines parameters for listing contact messages.
type Filter struct {
	Page     int
	PageSize int
}
