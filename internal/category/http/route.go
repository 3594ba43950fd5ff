package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public category list and admin CRUD.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddlewares ...gin.HandlerFunc) {
	g.GET("/categories", h.List)

	admin := g.Group("/admin/categories")
	admin.Use(adminMiddlewares...)
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
