package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"spa_booking_backend/internal/models"
	"spa_booking_backend/internal/repositories"
)

// --- Custom Service Errors for Booking ---
var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingValidation = errors.New("booking data validation error")
	ErrDatetimeFormat    = errors.New("invalid datetime format, please use RFC3339 (e.g. 2025-01-01T10:00:00Z)")
)

// --- Booking DTOs ---
type CreateBookingRequest struct {
	Service  string   `json:"service"`
	Duration string   `json:"duration"`
	Price    *float64 `json:"price"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Datetime string   `json:"datetime"`
}

// --- BookingService Interface ---
type BookingService interface {
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	GetBookings() ([]models.Booking, error)
	DeleteBooking(bookingID int64) error
}

// --- bookingService Implementation ---
type bookingService struct {
	bookingRepo repositories.BookingRepository
	db          *sql.DB
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(repo repositories.BookingRepository, db *sql.DB) BookingService {
	return &bookingService{
		bookingRepo: repo,
		db:          db,
	}
}

func (s *bookingService) validateCreateRequest(req CreateBookingRequest) error {
	required := map[string]string{
		"service":  req.Service,
		"duration": req.Duration,
		"name":     req.Name,
		"phone":    req.Phone,
		"datetime": req.Datetime,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", ErrBookingValidation, field)
		}
	}
	if req.Price == nil || *req.Price <= 0 {
		return fmt.Errorf("%w: price is required and must be positive", ErrBookingValidation)
	}
	return nil
}

func (s *bookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	datetime, err := time.Parse(time.RFC3339, req.Datetime)
	if err != nil {
		return nil, ErrDatetimeFormat
	}

	booking := &models.Booking{
		Service:  req.Service,
		Duration: req.Duration,
		Price:    *req.Price,
		Name:     req.Name,
		Phone:    req.Phone,
		Datetime: datetime,
	}

	created, err := s.bookingRepo.CreateBooking(s.db, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking in repository: %w", err)
	}
	return created, nil
}

func (s *bookingService) GetBookings() ([]models.Booking, error) {
	bookings, err := s.bookingRepo.GetBookings()
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) DeleteBooking(bookingID int64) error {
	err := s.bookingRepo.DeleteBooking(s.db, bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}
