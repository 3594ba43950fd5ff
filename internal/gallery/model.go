package gallery

import (
	"net/http"
	"time"

	"github.com/wanderpk/tour-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "gallery item not found")
	ErrNotAnImage  = apperror.New(http.StatusBadRequest, "only image uploads are accepted")
	ErrNoThumbnail = apperror.New(http.StatusNotFound, "thumbnail not available")
)

// Item is one photo in the public gallery.
type Item struct {
	ID            string
	Caption       string
	SortOrder     int
	Filename      string
	StoragePath   string  // internal, not exposed
	ThumbnailPath *string // internal, not exposed
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// ImageURL returns the public URL for the full-size image.
func ImageURL(id string) string {
	return "/v1/gallery/" + id + "/image"
}

// ThumbnailURL returns the public URL for the thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/gallery/" + id + "/thumbnail"
}
