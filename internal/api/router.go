package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eventpass/hotel-booking-backend/internal/auth"
	"github.com/eventpass/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/eventpass/hotel-booking-backend/internal/booking/http"
	"github.com/eventpass/hotel-booking-backend/internal/hotel"
	hotelHttp "github.com/eventpass/hotel-booking-backend/internal/hotel/http"
	"github.com/eventpass/hotel-booking-backend/internal/hotelimage"
	hotelimageHttp "github.com/eventpass/hotel-booking-backend/internal/hotelimage/http"
	"github.com/eventpass/hotel-booking-backend/internal/ticket"
	ticketHttp "github.com/eventpass/hotel-booking-backend/internal/ticket/http"
	"github.com/eventpass/hotel-booking-backend/internal/user"
	userHttp "github.com/eventpass/hotel-booking-backend/internal/user/http"
)

// Config holds everything the router needs to assemble the HTTP surface.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService       user.Service
	TicketService     ticket.Service
	HotelService      hotel.Service
	HotelImageService hotelimage.Service
	BookingService    booking.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: global middleware (logging,
// recovery, CORS), the authentication gate, and every module's routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	ticketHandler := ticketHttp.NewHandler(cfg.TicketService)
	hotelHandler := hotelHttp.NewHandler(cfg.HotelService)
	hotelImageHandler := hotelimageHttp.NewHandler(cfg.HotelImageService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		ticketHttp.RegisterRoutes(root, ticketHandler, authMiddleware)
		hotelHttp.RegisterRoutes(root, hotelHandler, authMiddleware)
		hotelimageHttp.RegisterRoutes(root, hotelImageHandler, authMiddleware)
		bookingHttp.RegisterRoutes(root, bookingHandler, authMiddleware)
	}

	return r
}
