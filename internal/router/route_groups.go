package router

import (
	"spa_booking_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up the booking routes. The /bookings4 path is kept
// for compatibility with the existing frontend.
func SetupBookingRoutes(engine *gin.Engine, bookingHandler *handlers.BookingHandler) {
	engine.GET("/bookings4", bookingHandler.GetBookings)
	engine.POST("/bookings4", bookingHandler.CreateBooking)
	engine.DELETE("/bookings4/:id", bookingHandler.DeleteBooking)
}

// SetupPaymentRoutes sets up the simulated payment routes.
func SetupPaymentRoutes(apiGroup *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	paymentRoutes := apiGroup.Group("/payments")
	{
		paymentRoutes.POST("/initiate", paymentHandler.InitiatePayment)
		paymentRoutes.POST("/confirm", paymentHandler.ConfirmPayment)
		paymentRoutes.GET("/qr", paymentHandler.PaymentQR)
	}
}

// SetupTestimonialRoutes sets up the testimonial routes.
func SetupTestimonialRoutes(apiGroup *gin.RouterGroup, testimonialHandler *handlers.TestimonialHandler) {
	testimonialRoutes := apiGroup.Group("/testimonials")
	{
		testimonialRoutes.POST("", testimonialHandler.CreateTestimonial)
		testimonialRoutes.GET("", testimonialHandler.GetTestimonials)
		testimonialRoutes.DELETE("/:id", testimonialHandler.DeleteTestimonial)
	}
}
