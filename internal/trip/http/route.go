package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts public catalog endpoints and admin CRUD.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddlewares ...gin.HandlerFunc) {
	g.GET("/trips", h.List)
	g.GET("/trips/:slug", h.GetBySlug)

	admin := g.Group("/admin/trips")
	admin.Use(adminMiddlewares...)
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
