package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"spa_booking_backend/internal/handlers"
	"spa_booking_backend/internal/models"
	"spa_booking_backend/internal/repositories"
	"spa_booking_backend/internal/router"
	"spa_booking_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// The handler tests run the real services on top of in-memory repositories,
// so every request exercises the full bind/validate/persist/respond path.

type fakeBookingRepo struct {
	bookings map[int64]models.Booking
	nextID   int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int64]models.Booking{}, nextID: 1}
}

func (f *fakeBookingRepo) CreateBooking(_ repositories.SQLExecutor, booking *models.Booking) (*models.Booking, error) {
	booking.ID = f.nextID
	f.nextID++
	booking.PaymentStatus = models.PaymentStatusPending
	booking.BookingTime = time.Now()
	f.bookings[booking.ID] = *booking
	return booking, nil
}

func (f *fakeBookingRepo) GetBookings() ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range f.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Datetime.After(out[j].Datetime) })
	return out, nil
}

func (f *fakeBookingRepo) DeleteBooking(_ repositories.SQLExecutor, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) MarkPaymentCompleted(_ repositories.SQLExecutor, id int64) error {
	b, ok := f.bookings[id]
	if !ok {
		return repositories.ErrNotFound
	}
	b.PaymentStatus = models.PaymentStatusCompleted
	f.bookings[id] = b
	return nil
}

type fakeTestimonialRepo struct {
	testimonials map[int64]models.Testimonial
	nextID       int64
}

func newFakeTestimonialRepo() *fakeTestimonialRepo {
	return &fakeTestimonialRepo{testimonials: map[int64]models.Testimonial{}, nextID: 1}
}

func (f *fakeTestimonialRepo) CreateTestimonial(_ repositories.SQLExecutor, testimonial *models.Testimonial) (*models.Testimonial, error) {
	testimonial.ID = f.nextID
	f.nextID++
	testimonial.CreatedAt = time.Now().Add(time.Duration(testimonial.ID) * time.Millisecond)
	f.testimonials[testimonial.ID] = *testimonial
	return testimonial, nil
}

func (f *fakeTestimonialRepo) GetTestimonials() ([]models.Testimonial, error) {
	out := []models.Testimonial{}
	for _, tm := range f.testimonials {
		out = append(out, tm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTestimonialRepo) DeleteTestimonial(_ repositories.SQLExecutor, id int64) error {
	if _, ok := f.testimonials[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.testimonials, id)
	return nil
}

// newTestRouter wires the real route setup against fake repositories.
// The payment initiation delay is zero so tests do not sleep.
func newTestRouter() (*gin.Engine, *fakeBookingRepo, *fakeTestimonialRepo) {
	gin.SetMode(gin.TestMode)

	bookingRepo := newFakeBookingRepo()
	testimonialRepo := newFakeTestimonialRepo()

	bookingService := services.NewBookingService(bookingRepo, nil)
	testimonialService := services.NewTestimonialService(testimonialRepo, nil)
	paymentService := services.NewPaymentService(bookingRepo, nil, 0)

	engine := gin.New()
	router.SetupBookingRoutes(engine, handlers.NewBookingHandler(bookingService))
	api := engine.Group("/api")
	router.SetupPaymentRoutes(api, handlers.NewPaymentHandler(paymentService))
	router.SetupTestimonialRoutes(api, handlers.NewTestimonialHandler(testimonialService))

	return engine, bookingRepo, testimonialRepo
}

func performRequest(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}
