package http

import (
	"time"

	"github.com/wanderpk/tour-booking-backend/internal/contact"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/request"
)

type CreateMessageBody struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

type ListMessagesRequest struct {
	request.ListParams
}

type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMessageResponse(m *contact.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Body,
		CreatedAt: m.CreatedAt,
	}
}
