package services_test

import (
	"errors"
	"sort"
	"testing"
	"time"

	"spa_booking_backend/internal/models"
	"spa_booking_backend/internal/repositories"
	"spa_booking_backend/internal/services"
)

// fakeBookingRepo is an in-memory stand-in for the Postgres-backed repository.
type fakeBookingRepo struct {
	bookings map[int64]models.Booking
	nextID   int64
	failWith error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int64]models.Booking{}, nextID: 1}
}

func (f *fakeBookingRepo) CreateBooking(_ repositories.SQLExecutor, booking *models.Booking) (*models.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	booking.ID = f.nextID
	f.nextID++
	booking.PaymentStatus = models.PaymentStatusPending
	booking.BookingTime = time.Now()
	f.bookings[booking.ID] = *booking
	return booking, nil
}

func (f *fakeBookingRepo) GetBookings() ([]models.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.Booking{}
	for _, b := range f.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Datetime.After(out[j].Datetime) })
	return out, nil
}

func (f *fakeBookingRepo) DeleteBooking(_ repositories.SQLExecutor, id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.bookings[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) MarkPaymentCompleted(_ repositories.SQLExecutor, id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	b, ok := f.bookings[id]
	if !ok {
		return repositories.ErrNotFound
	}
	b.PaymentStatus = models.PaymentStatusCompleted
	f.bookings[id] = b
	return nil
}

func floatPtr(f float64) *float64 { return &f }

func validBookingRequest() services.CreateBookingRequest {
	return services.CreateBookingRequest{
		Service:  "Massage",
		Duration: "60m",
		Price:    floatPtr(50),
		Name:     "Ana",
		Phone:    "555-1234",
		Datetime: "2025-01-01T10:00:00Z",
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := services.NewBookingService(repo, nil)

	booking, err := svc.CreateBooking(validBookingRequest())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if booking.ID == 0 {
		t.Error("expected a generated id")
	}
	if booking.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("payment status = %q, want %q", booking.PaymentStatus, models.PaymentStatusPending)
	}
	if booking.Service != "Massage" || booking.Name != "Ana" || booking.Price != 50 {
		t.Errorf("created booking does not echo input: %+v", booking)
	}
	if booking.BookingTime.IsZero() {
		t.Error("expected booking_time to be set")
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := services.NewBookingService(repo, nil)

	mutations := map[string]func(*services.CreateBookingRequest){
		"service":  func(r *services.CreateBookingRequest) { r.Service = "" },
		"duration": func(r *services.CreateBookingRequest) { r.Duration = "  " },
		"price":    func(r *services.CreateBookingRequest) { r.Price = nil },
		"name":     func(r *services.CreateBookingRequest) { r.Name = "" },
		"phone":    func(r *services.CreateBookingRequest) { r.Phone = "" },
		"datetime": func(r *services.CreateBookingRequest) { r.Datetime = "" },
	}
	for field, mutate := range mutations {
		req := validBookingRequest()
		mutate(&req)
		_, err := svc.CreateBooking(req)
		if !errors.Is(err, services.ErrBookingValidation) {
			t.Errorf("missing %s: error = %v, want ErrBookingValidation", field, err)
		}
	}
	if len(repo.bookings) != 0 {
		t.Error("validation failures must not reach the repository")
	}
}

func TestCreateBookingRejectsZeroPrice(t *testing.T) {
	svc := services.NewBookingService(newFakeBookingRepo(), nil)
	req := validBookingRequest()
	req.Price = floatPtr(0)
	if _, err := svc.CreateBooking(req); !errors.Is(err, services.ErrBookingValidation) {
		t.Errorf("zero price: error = %v, want ErrBookingValidation", err)
	}
}

func TestCreateBookingBadDatetime(t *testing.T) {
	svc := services.NewBookingService(newFakeBookingRepo(), nil)
	req := validBookingRequest()
	req.Datetime = "next tuesday"
	if _, err := svc.CreateBooking(req); !errors.Is(err, services.ErrDatetimeFormat) {
		t.Errorf("bad datetime: error = %v, want ErrDatetimeFormat", err)
	}
}

func TestGetBookingsOrder(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := services.NewBookingService(repo, nil)

	early := validBookingRequest()
	early.Datetime = "2025-01-01T10:00:00Z"
	late := validBookingRequest()
	late.Datetime = "2025-06-01T10:00:00Z"
	if _, err := svc.CreateBooking(early); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateBooking(late); err != nil {
		t.Fatal(err)
	}

	bookings, err := svc.GetBookings()
	if err != nil {
		t.Fatalf("GetBookings failed: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
	if !bookings[0].Datetime.After(bookings[1].Datetime) {
		t.Error("bookings not ordered by datetime descending")
	}
}

func TestDeleteBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := services.NewBookingService(repo, nil)

	booking, err := svc.CreateBooking(validBookingRequest())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteBooking(booking.ID); err != nil {
		t.Fatalf("DeleteBooking failed: %v", err)
	}
	if err := svc.DeleteBooking(booking.ID); !errors.Is(err, services.ErrBookingNotFound) {
		t.Errorf("second delete: error = %v, want ErrBookingNotFound", err)
	}
	if err := svc.DeleteBooking(999); !errors.Is(err, services.ErrBookingNotFound) {
		t.Errorf("unknown id: error = %v, want ErrBookingNotFound", err)
	}
}

func TestBookingRepositoryErrorsAreWrapped(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.failWith = repositories.ErrDatabaseError
	svc := services.NewBookingService(repo, nil)

	if _, err := svc.CreateBooking(validBookingRequest()); !errors.Is(err, repositories.ErrDatabaseError) {
		t.Errorf("create: error = %v, want wrapped ErrDatabaseError", err)
	}
	if _, err := svc.GetBookings(); !errors.Is(err, repositories.ErrDatabaseError) {
		t.Errorf("list: error = %v, want wrapped ErrDatabaseError", err)
	}
}
