package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public contact form and admin inbox.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddlewares ...gin.HandlerFunc) {
	g.POST("/contact", h.Create)

	admin := g.Group("/admin/contact")
	admin.Use(adminMiddlewares...)
	{
		admin.GET("", h.List)
		admin.DELETE("/:id", h.Delete)
	}
}
