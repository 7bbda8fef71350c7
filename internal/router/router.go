package router

import (
	"database/sql"
	"time"

	"spa_booking_backend/internal/handlers"
	"spa_booking_backend/internal/repositories"
	"spa_booking_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// paymentInitiationDelay simulates the latency of an external payment provider.
const paymentInitiationDelay = time.Second

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	bookingRepo := repositories.NewBookingRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)

	// Initialize Services
	bookingService := services.NewBookingService(bookingRepo, db)
	testimonialService := services.NewTestimonialService(testimonialRepo, db)
	paymentService := services.NewPaymentService(bookingRepo, db, paymentInitiationDelay)

	// Initialize Handlers
	bookingHandler := handlers.NewBookingHandler(bookingService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	SetupBookingRoutes(engine, bookingHandler)

	api := engine.Group("/api")
	SetupPaymentRoutes(api, paymentHandler)
	SetupTestimonialRoutes(api, testimonialHandler)
}
