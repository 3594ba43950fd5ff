package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wanderpk/tour-booking-backend/internal/gallery"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/request"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/response"
)

type Handler struct {
	service gallery.Service
}

func NewHandler(service gallery.Service) *Handler {
	return &Handler{service: service}
}

// List is public: the landing-page gallery grid.
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list gallery items"})
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, it := range items {
		resp[i] = NewItemResponse(it)
	}

	c.JSON(http.StatusOK, gin.H{"items": resp})
}

// Upload accepts a multipart form with an "image" file plus optional
// "caption" and "sort_order" fields.
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	caption := c.PostForm("caption")
	sortOrder, _ := strconv.Atoi(c.DefaultPostForm("sort_order", "0"))

	item, err := h.service.Upload(c.Request.Context(), header, caption, sortOrder)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(item))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Image streams the full-size image.
func (h *Handler) Image(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	stream, item, err := h.service.DownloadImage(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, item.Size, item.ContentType, stream, nil)
}

// Thumbnail streams the thumbnail variant. Thumbnails are always JPEG.
func (h *Handler) Thumbnail(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	stream, _, err := h.service.DownloadThumbnail(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, -1, "image/jpeg", stream, nil)
}
