package category

import (
	"net/http"
	"time"

	"github.com/wanderpk/tour-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "tour category not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "name is required")
	ErrKeyRequired  = apperror.New(http.StatusBadRequest, "key is required")
	ErrKeyTaken     = apperror.New(http.StatusConflict, "key already in use")
)

// Category is a grouping tag for trip packages, e.g. corporate, family,
// academic. Trips reference the key by value, not by foreign key.
type Category struct {
	ID          string
	Name        string
	Key         string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
