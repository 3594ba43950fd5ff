package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts public gallery browsing and admin upload/delete.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddlewares ...gin.HandlerFunc) {
	g.GET("/gallery", h.List)
	g.GET("/gallery/:id/image", h.Image)
	g.GET("/gallery/:id/thumbnail", h.Thumbnail)

	admin := g.Group("/admin/gallery")
	admin.Use(adminMiddlewares...)
	{
		admin.POST("", h.Upload)
		admin.DELETE("/:id", h.Delete)
	}
}
