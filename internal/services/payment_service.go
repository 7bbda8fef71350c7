package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"spa_booking_backend/internal/models"
	"spa_booking_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Payment ---
var (
	ErrPaymentValidation = errors.New("payment data validation error")
)

// --- Payment DTOs ---
type InitiatePaymentRequest struct {
	Amount      *float64 `json:"amount"`
	ServiceName string   `json:"serviceName"`
	BookingID   *int64   `json:"bookingId"`
}

type ConfirmPaymentRequest struct {
	BookingID *int64 `json:"bookingId"`
}

// --- PaymentService Interface ---
type PaymentService interface {
	InitiatePayment(req InitiatePaymentRequest) (*models.PaymentInitiation, error)
	ConfirmPayment(bookingID int64) error
	QRPayload(bookingID int64, amount float64) string
}

// --- paymentService Implementation ---
type paymentService struct {
	bookingRepo repositories.BookingRepository
	db          *sql.DB
	// initiationDelay simulates the round trip to an external payment
	// provider. Tests pass zero.
	initiationDelay time.Duration
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(repo repositories.BookingRepository, db *sql.DB, initiationDelay time.Duration) PaymentService {
	return &paymentService{
		bookingRepo:     repo,
		db:              db,
		initiationDelay: initiationDelay,
	}
}

// newTransactionID builds an id of the form TXN-<unix seconds>-<8 random hex chars>.
func newTransactionID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("TXN-%d-%s", time.Now().Unix(), random)
}

// InitiatePayment simulates starting an external payment flow. Nothing is
// persisted: the transaction id and QR URL are generated per request and the
// confirmation step later matches on booking id alone.
func (s *paymentService) InitiatePayment(req InitiatePaymentRequest) (*models.PaymentInitiation, error) {
	if req.Amount == nil || *req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount is required and must be positive", ErrPaymentValidation)
	}
	if strings.TrimSpace(req.ServiceName) == "" {
		return nil, fmt.Errorf("%w: serviceName is required", ErrPaymentValidation)
	}
	if req.BookingID == nil {
		return nil, fmt.Errorf("%w: bookingId is required", ErrPaymentValidation)
	}

	time.Sleep(s.initiationDelay)

	return &models.PaymentInitiation{
		Message:       "Payment initiated. Scan the QR code to complete the payment.",
		QRCodeURL:     fmt.Sprintf("/api/payments/qr?bookingId=%d&amount=%.2f", *req.BookingID, *req.Amount),
		TransactionID: newTransactionID(),
		Status:        models.PaymentStatusPending,
	}, nil
}

// ConfirmPayment marks the booking paid. Re-confirming an already completed
// booking matches the same row again and succeeds.
func (s *paymentService) ConfirmPayment(bookingID int64) error {
	err := s.bookingRepo.MarkPaymentCompleted(s.db, bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to confirm payment: %w", err)
	}
	return nil
}

// QRPayload is the string encoded into the payment QR image.
func (s *paymentService) QRPayload(bookingID int64, amount float64) string {
	return fmt.Sprintf("spa-payment|booking:%d|amount:%.2f", bookingID, amount)
}
