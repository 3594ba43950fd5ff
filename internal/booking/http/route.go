package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public intake endpoint and the admin
// moderation endpoints. adminMiddlewares must include authentication
// followed by the admin gate.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddlewares ...gin.HandlerFunc) {
	// Public intake: the landing-page form posts here without an account.
	g.POST("/bookings", h.Create)

	admin := g.Group("/admin/bookings")
	admin.Use(adminMiddlewares...)
	{
		admin.GET("", h.List)
		admin.GET("/stream", h.Stream)
		admin.GET("/export", h.Export)
		admin.GET("/:id", h.Get)
		admin.PATCH("/:id/status", h.UpdateStatus)
		admin.DELETE("/:id", h.Delete)
	}
}
