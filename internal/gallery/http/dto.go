package http

import (
	"time"

	"github.com/wanderpk/tour-booking-backend/internal/gallery"
)

type ItemResponse struct {
	ID           string    `json:"id"`
	Caption      string    `json:"caption,omitempty"`
	SortOrder    int       `json:"sort_order"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewItemResponse(it *gallery.Item) ItemResponse {
	resp := ItemResponse{
		ID:          it.ID,
		Caption:     it.Caption,
		SortOrder:   it.SortOrder,
		Filename:    it.Filename,
		ContentType: it.ContentType,
		Size:        it.Size,
		ImageURL:    gallery.ImageURL(it.ID),
		CreatedAt:   it.CreatedAt,
	}
	if it.ThumbnailPath != nil {
		resp.ThumbnailURL = gallery.ThumbnailURL(it.ID)
	}
	return resp
}
