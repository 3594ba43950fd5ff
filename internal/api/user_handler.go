package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderpk/tour-booking-backend/internal/auth"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/request"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/response"
	"github.com/wanderpk/tour-booking-backend/internal/user"
)

// UserAdminHandler serves the back-office account management endpoints.
type UserAdminHandler struct {
	userService user.Service
}

func NewUserAdminHandler(userService user.Service) *UserAdminHandler {
	return &UserAdminHandler{userService: userService}
}

type ListUsersRequest struct {
	request.ListParams
	Email string `form:"email"`
}

type SetAdminBody struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

func (h *UserAdminHandler) List(c *gin.Context) {
	var req ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), user.Filter{
		Email:    req.Email,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = NewUserResponse(u)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *UserAdminHandler) SetAdmin(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body SetAdminBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	// An admin cannot drop their own flag; that avoids locking everyone out.
	if !*body.IsAdmin && uri.ID == auth.GetUserID(c) {
		c.JSON(http.StatusConflict, gin.H{"error": "cannot revoke your own admin access"})
		return
	}

	if err := h.userService.SetAdmin(c.Request.Context(), uri.ID, *body.IsAdmin); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserAdminHandler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if uri.ID == auth.GetUserID(c) {
		c.JSON(http.StatusConflict, gin.H{"error": "cannot delete your own account"})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), uri.ID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	c.Status(http.StatusNoContent)
}
