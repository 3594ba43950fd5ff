package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wanderpk/tour-booking-backend/internal/api"
	"github.com/wanderpk/tour-booking-backend/internal/auth"
	"github.com/wanderpk/tour-booking-backend/internal/booking"
	"github.com/wanderpk/tour-booking-backend/internal/category"
	"github.com/wanderpk/tour-booking-backend/internal/contact"
	"github.com/wanderpk/tour-booking-backend/internal/gallery"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/storage"
	"github.com/wanderpk/tour-booking-backend/internal/trip"
	"github.com/wanderpk/tour-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	MediaPath    string
	// IsBootstrapAdmin is consulted at registration and login to grant
	// the admin flag to allowlisted emails. May be nil.
	IsBootstrapAdmin func(email string) bool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	BookingHub *booking.Hub
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	mediaStore, err := storage.NewLocalStorage(cfg.MediaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to init media storage: %w", err)
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher, cfg.IsBootstrapAdmin)

	// Booking Module (intake + moderation + live feed)
	bookingHub := booking.NewHub()
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, bookingHub)

	// Trip Package Module
	tripRepo := trip.NewPgxRepository(cfg.DBPool)
	tripService := trip.NewService(tripRepo)

	// Tour Category Module
	categoryRepo := category.NewPgxRepository(cfg.DBPool)
	categoryService := category.NewService(categoryRepo)

	// Gallery Module
	galleryRepo := gallery.NewPgxRepository(cfg.DBPool)
	galleryService := gallery.NewService(galleryRepo, mediaStore)

	// Contact Module
	contactRepo := contact.NewPgxRepository(cfg.DBPool)
	contactService := contact.NewService(contactRepo)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UserService:     userService,
		BookingService:  bookingService,
		TripService:     tripService,
		CategoryService: categoryService,
		GalleryService:  galleryService,
		ContactService:  contactService,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		BookingHub: bookingHub,
	}, nil
}
