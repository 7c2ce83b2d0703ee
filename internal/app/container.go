package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventpass/hotel-booking-backend/internal/api"
	"github.com/eventpass/hotel-booking-backend/internal/auth"
	"github.com/eventpass/hotel-booking-backend/internal/booking"
	"github.com/eventpass/hotel-booking-backend/internal/enrollment"
	"github.com/eventpass/hotel-booking-backend/internal/hotel"
	"github.com/eventpass/hotel-booking-backend/internal/hotelimage"
	"github.com/eventpass/hotel-booking-backend/internal/pkg/storage"
	"github.com/eventpass/hotel-booking-backend/internal/ticket"
	"github.com/eventpass/hotel-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	StoragePath  string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Enrollment module (lookup only; managed elsewhere in the platform)
	enrollmentRepo := enrollment.NewPgxRepository(cfg.DBPool)

	// Ticket module
	ticketRepo := ticket.NewPgxRepository(cfg.DBPool)
	ticketService := ticket.NewService(ticketRepo, enrollmentRepo)

	// Hotel module
	hotelRepo := hotel.NewPgxRepository(cfg.DBPool)
	hotelService := hotel.NewService(hotelRepo, ticketService)

	// Hotel image module
	hotelImageRepo := hotelimage.NewPgxRepository(cfg.DBPool)
	hotelImageService := hotelimage.NewService(hotelImageRepo, hotelRepo, store)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, enrollmentRepo, ticketRepo, hotelRepo)

	router := api.NewRouter(api.Config{
		IsProduction:      cfg.IsProduction,
		ProdOrigins:       cfg.ProdOrigins,
		UserService:       userService,
		TicketService:     ticketService,
		HotelService:      hotelService,
		HotelImageService: hotelImageService,
		BookingService:    bookingService,
		JWTManager:        jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
