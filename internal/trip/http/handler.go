package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/request"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/response"
	"github.com/wanderpk/tour-booking-backend/internal/trip"
)

type Handler struct {
	service trip.Service
}

func NewHandler(service trip.Service) *Handler {
	return &Handler{service: service}
}

// List is public: the tour catalog, active packages only.
func (h *Handler) List(c *gin.Context) {
	var req ListTripsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := trip.Filter{
		Category:   req.Category,
		OnlyActive: true,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	trips, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list trip packages"})
		return
	}

	items := make([]TripResponse, len(trips))
	for i, t := range trips {
		items[i] = NewTripResponse(t)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// GetBySlug is public: the tour details page.
func (h *Handler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	t, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTripResponse(t))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateTripBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	req := trip.CreateRequest{
		Name:         body.Name,
		Slug:         body.Slug,
		Category:     body.Category,
		DurationDays: body.DurationDays,
		Price:        body.Price,
		ImageURL:     body.ImageURL,
		Description:  body.Description,
		Highlights:   body.Highlights,
		Difficulty:   body.Difficulty,
		Badge:        body.Badge,
		IsActive:     isActive,
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewTripResponse(t))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateTripBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := trip.UpdateRequest{
		Name:         body.Name,
		Category:     body.Category,
		DurationDays: body.DurationDays,
		Price:        body.Price,
		ImageURL:     body.ImageURL,
		Description:  body.Description,
		Highlights:   body.Highlights,
		Difficulty:   body.Difficulty,
		Badge:        body.Badge,
		IsActive:     body.IsActive,
	}

	t, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTripResponse(t))
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
