package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	idempotencyRepo "skymate/database/repository/idempotency"
	"skymate/handlers"
	"skymate/middleware"
	"skymate/models"
	"skymate/obs"
	"skymate/services/booking"
	"skymate/services/idempotency"
)

type memIdempotencyRepo struct {
	mu      sync.Mutex
	records map[string]*models.IdempotencyRecord
}

func newMemIdempotencyRepo() *memIdempotencyRepo {
	return &memIdempotencyRepo{records: make(map[string]*models.IdempotencyRecord)}
}

func (r *memIdempotencyRepo) Reserve(record *models.IdempotencyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[record.Hash]; exists {
		return idempotencyRepo.ErrDuplicateHash
	}
	copied := *record
	r.records[record.Hash] = &copied
	return nil
}

func (r *memIdempotencyRepo) FindByHash(hash string) (*models.IdempotencyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[hash]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (r *memIdempotencyRepo) Complete(hash string, response []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[hash]; ok {
		rec.Status = models.IdempotencyStatusCompleted
		rec.Response = response
	}
	return nil
}

func (r *memIdempotencyRepo) Delete(hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, hash)
	return nil
}

func (r *memIdempotencyRepo) PurgeExpired(now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for hash, rec := range r.records {
		if !rec.Live(now) {
			delete(r.records, hash)
		}
	}
	return nil
}

type stubBookingService struct {
	mu          sync.Mutex
	createCalls int
	bookings    map[string]*models.Booking
}

func newStubBookingService() *stubBookingService {
	return &stubBookingService{bookings: make(map[string]*models.Booking)}
}

func (s *stubBookingService) Create(_ context.Context, userID string, input models.BookingInput) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCalls++
	b := &models.Booking{
		ID:          "bk_1",
		UserID:      userID,
		Status:      models.BookingStatusConfirmed,
		OfferID:     input.OfferID,
		TotalAmount: 25900,
		Currency:    "INR",
	}
	s.bookings[b.ID] = b
	return b, nil
}

func (s *stubBookingService) Cancel(_ context.Context, userID, bookingID, _ string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[bookingID]
	if !ok || b.UserID != userID {
		return nil, booking.ErrBookingNotFound
	}
	b.Status = models.BookingStatusCancelled
	return b, nil
}

func (s *stubBookingService) Get(_ context.Context, userID, bookingID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[bookingID]
	if !ok || b.UserID != userID {
		return nil, booking.ErrBookingNotFound
	}
	return b, nil
}

func (s *stubBookingService) Update(_ context.Context, userID, bookingID string, _ booking.UpdateInput) (*models.Booking, error) {
	return s.Get(context.Background(), userID, bookingID)
}

func (s *stubBookingService) List(_ context.Context, _, _, _ string) (*models.BookingPage, error) {
	return &models.BookingPage{Items: []models.Booking{}}, nil
}

func (s *stubBookingService) NextSegment(_ context.Context, _ string, _ time.Time) (*booking.NextFlight, error) {
	return nil, nil
}

func newBookingRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	guard := idempotency.NewGuard(newMemIdempotencyRepo(), zap.NewNop())
	metrics := obs.NewMetrics(prometheus.NewRegistry())
	h := handlers.NewBookingHandler(svc, guard, metrics, zap.NewNop())

	r := gin.New()
	grp := r.Group("/api/bookings")
	grp.Use(middleware.UserAuthMiddleware())
	grp.POST("", h.Create)
	grp.GET("", h.List)
	grp.GET("/:id", h.Get)
	grp.PATCH("/:id", h.Update)
	grp.POST("/:id/cancel", h.Cancel)
	return r
}

func validInput() models.BookingInput {
	return models.BookingInput{
		OfferID:    "off_1",
		Contact:    models.Contact{Email: "asha@example.dev"},
		Passengers: []models.Passenger{{Type: "ADULT", FirstName: "Asha", LastName: "Rao"}},
	}
}

func doRequest(r *gin.Engine, method, path, userID string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBooking_RequiresIdentity(t *testing.T) {
	r := newBookingRouter(newStubBookingService())

	w := doRequest(r, http.MethodPost, "/api/bookings", "", validInput(), nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateBooking_RequiresOfferID(t *testing.T) {
	r := newBookingRouter(newStubBookingService())

	w := doRequest(r, http.MethodPost, "/api/bookings", "user_1", map[string]string{}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateBooking_IdempotentReplay(t *testing.T) {
	svc := newStubBookingService()
	r := newBookingRouter(svc)

	input := validInput()
	headers := map[string]string{"Idempotency-Key": "key-abc"}

	first := doRequest(r, http.MethodPost, "/api/bookings", "user_1", input, headers)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", first.Code, first.Body.String())
	}
	if first.Header().Get(handlers.ReplayHeader) != "" {
		t.Fatal("first response must not carry the replay header")
	}

	second := doRequest(r, http.MethodPost, "/api/bookings", "user_1", input, headers)
	if second.Code != http.StatusOK {
		t.Fatalf("expected 200 on replay, got %d: %s", second.Code, second.Body.String())
	}
	if second.Header().Get(handlers.ReplayHeader) != "true" {
		t.Fatal("replay response must carry the replay header")
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replay body differs:\n%s\n%s", first.Body.String(), second.Body.String())
	}
	if svc.createCalls != 1 {
		t.Fatalf("expected a single service call, got %d", svc.createCalls)
	}

	// A different key creates again.
	third := doRequest(r, http.MethodPost, "/api/bookings", "user_1", input,
		map[string]string{"Idempotency-Key": "key-def"})
	if third.Code != http.StatusCreated {
		t.Fatalf("expected 201 for a new key, got %d", third.Code)
	}
	if svc.createCalls != 2 {
		t.Fatalf("expected a second service call, got %d", svc.createCalls)
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	r := newBookingRouter(newStubBookingService())

	w := doRequest(r, http.MethodGet, "/api/bookings/bk_missing", "user_1", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCancelBooking_ReturnsStatus(t *testing.T) {
	svc := newStubBookingService()
	r := newBookingRouter(svc)

	w := doRequest(r, http.MethodPost, "/api/bookings", "user_1", validInput(), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodPost, "/api/bookings/bk_1/cancel", "user_1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["status"] != models.BookingStatusCancelled {
		t.Fatalf("expected CANCELLED, got %q", body["status"])
	}
}

func TestListBookings_RejectsUnknownStatus(t *testing.T) {
	r := newBookingRouter(newStubBookingService())

	w := doRequest(r, http.MethodGet, "/api/bookings?status=NOPE", "user_1", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
