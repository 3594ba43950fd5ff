package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderpk/tour-booking-backend/internal/contact"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/request"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/response"
)

type Handler struct {
	service contact.Service
}

func NewHandler(service contact.Service) *Handler {
	return &Handler{service: service}
}

// Create is the public contact form endpoint.
func (h *Handler) Create(c *gin.Context) {
	var body CreateMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	m, err := h.service.Create(c.Request.Context(), contact.CreateRequest{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Message: body.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewMessageResponse(m))
}

func (h *Handler) List(c *gin.Context) {
	var req ListMessagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	messages, total, err := h.service.List(c.Request.Context(), contact.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	items := make([]MessageResponse, len(messages))
	for i, m := range messages {
		items[i] = NewMessageResponse(m)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
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
