package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"spa_booking_backend/internal/models"
)

// BookingRepository defines the interface for booking-related database operations.
type BookingRepository interface {
	CreateBooking(executor SQLExecutor, booking *models.Booking) (*models.Booking, error)
	GetBookings() ([]models.Booking, error)
	DeleteBooking(executor SQLExecutor, id int64) error
	MarkPaymentCompleted(executor SQLExecutor, id int64) error
}

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// scanBooking scans a single booking row.
func scanBooking(row scanner) (*models.Booking, error) {
	var booking models.Booking
	err := row.Scan(
		&booking.ID, &booking.Service, &booking.Duration, &booking.Price,
		&booking.Name, &booking.Phone, &booking.Datetime,
		&booking.PaymentStatus, &booking.BookingTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning booking: %v", ErrDatabaseError, err)
	}
	return &booking, nil
}

// CreateBooking inserts a new booking. payment_status and booking_time are
// filled in by the database's column defaults and read back via RETURNING.
func (r *bookingRepository) CreateBooking(executor SQLExecutor, booking *models.Booking) (*models.Booking, error) {
	query := `INSERT INTO bookings4 (service, duration, price, name, phone, datetime)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, payment_status, booking_time`

	err := executor.QueryRow(query,
		booking.Service, booking.Duration, booking.Price,
		booking.Name, booking.Phone, booking.Datetime,
	).Scan(&booking.ID, &booking.PaymentStatus, &booking.BookingTime)

	if err != nil {
		return nil, fmt.Errorf("%w: creating booking: %v", ErrDatabaseError, err)
	}
	return booking, nil
}

// GetBookings returns all bookings, newest appointment first.
func (r *bookingRepository) GetBookings() ([]models.Booking, error) {
	bookings := []models.Booking{}
	query := `SELECT id, service, duration, price, name, phone, datetime, payment_status, booking_time
	          FROM bookings4 ORDER BY datetime DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying bookings: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		booking, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		bookings = append(bookings, *booking)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating booking rows: %v", ErrDatabaseError, err)
	}
	return bookings, nil
}

// DeleteBooking removes a booking by id.
func (r *bookingRepository) DeleteBooking(executor SQLExecutor, id int64) error {
	query := `DELETE FROM bookings4 WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting booking ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkPaymentCompleted sets a booking's payment_status to completed.
// The statement is idempotent: re-applying it to an already completed
// booking still matches the row and is not an error.
func (r *bookingRepository) MarkPaymentCompleted(executor SQLExecutor, id int64) error {
	query := `UPDATE bookings4 SET payment_status = $1 WHERE id = $2`
	result, err := executor.Exec(query, models.PaymentStatusCompleted, id)
	if err != nil {
		return fmt.Errorf("%w: marking booking ID %d paid: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
