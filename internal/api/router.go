package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wanderpk/tour-booking-backend/internal/auth"
	"github.com/wanderpk/tour-booking-backend/internal/booking"
	bookingHttp "github.com/wanderpk/tour-booking-backend/internal/booking/http"
	"github.com/wanderpk/tour-booking-backend/internal/category"
	categoryHttp "github.com/wanderpk/tour-booking-backend/internal/category/http"
	"github.com/wanderpk/tour-booking-backend/internal/contact"
	contactHttp "github.com/wanderpk/tour-booking-backend/internal/contact/http"
	"github.com/wanderpk/tour-booking-backend/internal/gallery"
	galleryHttp "github.com/wanderpk/tour-booking-backend/internal/gallery/http"
	"github.com/wanderpk/tour-booking-backend/internal/trip"
	tripHttp "github.com/wanderpk/tour-booking-backend/internal/trip/http"
	"github.com/wanderpk/tour-booking-backend/internal/user"
)

// Config holds the services the router wires handlers to.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	UserService     user.Service
	BookingService  booking.Service
	TripService     trip.Service
	CategoryService category.Service
	GalleryService  gallery.Service
	ContactService  contact.Service
	JWTManager      *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // local frontend
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the authenticated user has admin privileges.
	adminMiddleware := RequireAdmin(cfg.UserService)

	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager)
	userAdminHandler := NewUserAdminHandler(cfg.UserService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	tripHandler := tripHttp.NewHandler(cfg.TripService)
	categoryHandler := categoryHttp.NewHandler(cfg.CategoryService)
	galleryHandler := galleryHttp.NewHandler(cfg.GalleryService)
	contactHandler := contactHttp.NewHandler(cfg.ContactService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/auth/me", authMiddleware, authHandler.Me)

		adminUsers := v1.Group("/admin/users", authMiddleware, adminMiddleware)
		{
			adminUsers.GET("", userAdminHandler.List)
			adminUsers.PATCH("/:id/admin", userAdminHandler.SetAdmin)
			adminUsers.DELETE("/:id", userAdminHandler.Delete)
		}

		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		tripHttp.RegisterRoutes(v1, tripHandler, authMiddleware, adminMiddleware)
		categoryHttp.RegisterRoutes(v1, categoryHandler, authMiddleware, adminMiddleware)
		galleryHttp.RegisterRoutes(v1, galleryHandler, authMiddleware, adminMiddleware)
		contactHttp.RegisterRoutes(v1, contactHandler, authMiddleware, adminMiddleware)
	}

	return r
}
