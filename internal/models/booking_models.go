package models

import "time"

// Payment status values for a booking.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Booking represents a scheduled spa appointment with its payment state.
type Booking struct {
	ID            int64     `json:"id" db:"id"`
	Service       string    `json:"service" db:"service"`
	Duration      string    `json:"duration" db:"duration"`
	Price         float64   `json:"price" db:"price"`
	Name          string    `json:"name" db:"name"`
	Phone         string    `json:"phone" db:"phone"`
	Datetime      time.Time `json:"datetime" db:"datetime"`
	PaymentStatus string    `json:"payment_status" db:"payment_status"`
	BookingTime   time.Time `json:"booking_time" db:"booking_time"`
}
