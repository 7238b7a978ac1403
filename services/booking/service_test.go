package booking_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	bookingRepo "skymate/database/repository/booking"
	"skymate/models"
	"skymate/services/booking"
)

type fakeBookingRepo struct {
	bookings  []models.Booking
	createErr error
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeBookingRepo) GetForUser(id, userID string) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id && r.bookings[i].UserID == userID {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) UpdateFieldsForUser(id, userID string, fields bson.M) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID != id || r.bookings[i].UserID != userID {
			continue
		}
		b := &r.bookings[i]
		for k, v := range fields {
			switch k {
			case "status":
				b.Status = v.(string)
			case "contact":
				b.Contact = v.(models.Contact)
			case "passengers":
				b.Passengers = v.([]models.Passenger)
			}
		}
		b.UpdatedAt = time.Now().UTC()
		out := *b
		return &out, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) ListForUser(userID, status, cursorID string, limit int) ([]models.Booking, error) {
	var filtered []models.Booking
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		filtered = append(filtered, b)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		}
		return filtered[i].ID > filtered[j].ID
	})

	start := 0
	if cursorID != "" {
		start = -1
		for i, b := range filtered {
			if b.ID == cursorID {
				start = i
				break
			}
		}
		if start < 0 {
			return nil, bookingRepo.ErrCursorNotFound
		}
	}

	end := start + limit + 1
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], nil
}

type fakeUserRepo struct {
	ensured []string
}

func (r *fakeUserRepo) Ensure(id string) (*models.User, error) {
	r.ensured = append(r.ensured, id)
	return &models.User{ID: id}, nil
}
func (r *fakeUserRepo) GetByID(id string) (*models.User, error)                  { return &models.User{ID: id}, nil }
func (r *fakeUserRepo) UpdateFields(id string, _ bson.M) (*models.User, error)   { return &models.User{ID: id}, nil }
func (r *fakeUserRepo) CreateTraveler(_ *models.Traveler) error                  { return nil }

type fakeProvider struct {
	offers      map[string]models.Offer
	bookErr     error
	cancelErr   error
	cancelCalls int
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Search(_ context.Context, _ models.SearchParams) ([]models.Offer, error) {
	return nil, nil
}

func (p *fakeProvider) GetOffer(_ context.Context, id string) (*models.Offer, error) {
	if o, ok := p.offers[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (p *fakeProvider) Book(_ context.Context, _ models.BookingInput) (*models.BookingResult, error) {
	if p.bookErr != nil {
		return nil, p.bookErr
	}
	return &models.BookingResult{OrderID: "ord_fake_1", Status: models.BookingStatusConfirmed}, nil
}

func (p *fakeProvider) Cancel(_ context.Context, _, _ string) (*models.CancelResult, error) {
	p.cancelCalls++
	if p.cancelErr != nil {
		return nil, p.cancelErr
	}
	return &models.CancelResult{Status: models.BookingStatusCancelled}, nil
}

func (p *fakeProvider) GetOrder(_ context.Context, id string) (*models.OrderSnapshot, error) {
	return &models.OrderSnapshot{ID: id, Status: models.BookingStatusConfirmed}, nil
}

func testOffer() models.Offer {
	return models.Offer{
		ID:      "off_test_1",
		Price:   models.Price{Amount: 25900, Currency: "INR"},
		Summary: "BLR→BOM non-stop, 1h40",
		Details: models.OfferDetails{
			Origin:          "BLR",
			Destination:     "BOM",
			Carrier:         "6E",
			FlightNumber:    "6E 101",
			DepartAt:        "2025-09-02T06:10:00Z",
			ArriveAt:        "2025-09-02T07:50:00Z",
			DurationMinutes: 100,
			Cabin:           models.CabinEconomy,
		},
	}
}

func newTestService(repo *fakeBookingRepo, provider *fakeProvider) (*booking.DefaultBookingService, *fakeUserRepo) {
	users := &fakeUserRepo{}
	return &booking.DefaultBookingService{
		Repo:     repo,
		Users:    users,
		Provider: provider,
		Logger:   zap.NewNop(),
	}, users
}

func TestCreate_PersistsBookingWithSegment(t *testing.T) {
	repo := &fakeBookingRepo{}
	provider := &fakeProvider{offers: map[string]models.Offer{"off_test_1": testOffer()}}
	svc, users := newTestService(repo, provider)

	input := models.BookingInput{
		OfferID:    "off_test_1",
		Passengers: []models.Passenger{{Type: "ADULT", FirstName: "Asha", LastName: "Rao"}},
		Contact:    models.Contact{Email: "asha@example.dev"},
	}
	b, err := svc.Create(context.Background(), "user_1", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", b.Status)
	}
	if b.TotalAmount != 25900 || b.Currency != "INR" {
		t.Fatalf("money fields not taken from offer: %d %s", b.TotalAmount, b.Currency)
	}
	if b.Provider != "fake" || b.ProviderRef != "ord_fake_1" {
		t.Fatalf("provider fields wrong: %s %s", b.Provider, b.ProviderRef)
	}
	if len(b.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(b.Segments))
	}
	seg := b.Segments[0]
	if seg.Origin != "BLR" || seg.Destination != "BOM" || seg.FlightNumber != "6E 101" {
		t.Fatalf("segment not derived from offer: %+v", seg)
	}
	if !seg.ArriveAt.After(seg.DepartAt) {
		t.Fatalf("segment times inverted: %v %v", seg.DepartAt, seg.ArriveAt)
	}
	if len(users.ensured) != 1 || users.ensured[0] != "user_1" {
		t.Fatalf("expected user to be ensured, got %v", users.ensured)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected booking to be persisted, got %d", len(repo.bookings))
	}
}

func TestCreate_UnknownOffer(t *testing.T) {
	svc, _ := newTestService(&fakeBookingRepo{}, &fakeProvider{})

	_, err := svc.Create(context.Background(), "user_1", models.BookingInput{OfferID: "off_nope"})
	if !errors.Is(err, booking.ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestCreate_ProviderBookFailure(t *testing.T) {
	repo := &fakeBookingRepo{}
	provider := &fakeProvider{
		offers:  map[string]models.Offer{"off_test_1": testOffer()},
		bookErr: errors.New("upstream down"),
	}
	svc, _ := newTestService(repo, provider)

	_, err := svc.Create(context.Background(), "user_1", models.BookingInput{OfferID: "off_test_1"})
	var pe *booking.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatal("no booking should persist when the provider fails")
	}
}

func TestCancel_TransitionsAndIsIdempotent(t *testing.T) {
	repo := &fakeBookingRepo{}
	provider := &fakeProvider{offers: map[string]models.Offer{"off_test_1": testOffer()}}
	svc, _ := newTestService(repo, provider)

	b, err := svc.Create(context.Background(), "user_1", models.BookingInput{OfferID: "off_test_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cancelled, err := svc.Cancel(context.Background(), "user_1", b.ID, "plans changed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != models.BookingStatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", cancelled.Status)
	}

	// Second cancel is a no-op; the provider is only told once.
	again, err := svc.Cancel(context.Background(), "user_1", b.ID, "again")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Status != models.BookingStatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", again.Status)
	}
	if provider.cancelCalls != 1 {
		t.Fatalf("expected 1 provider cancel, got %d", provider.cancelCalls)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	repo := &fakeBookingRepo{}
	provider := &fakeProvider{offers: map[string]models.Offer{"off_test_1": testOffer()}}
	svc, _ := newTestService(repo, provider)

	b, err := svc.Create(context.Background(), "user_1", models.BookingInput{OfferID: "off_test_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A different user sees the booking as not found, on every operation.
	if _, err := svc.Get(context.Background(), "user_2", b.ID); !errors.Is(err, booking.ErrBookingNotFound) {
		t.Fatalf("get: expected ErrBookingNotFound, got %v", err)
	}
	if _, err := svc.Cancel(context.Background(), "user_2", b.ID, ""); !errors.Is(err, booking.ErrBookingNotFound) {
		t.Fatalf("cancel: expected ErrBookingNotFound, got %v", err)
	}
	if _, err := svc.Update(context.Background(), "user_2", b.ID, booking.UpdateInput{}); !errors.Is(err, booking.ErrBookingNotFound) {
		t.Fatalf("update: expected ErrBookingNotFound, got %v", err)
	}
}

func TestUpdate_RejectsCancelledBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	provider := &fakeProvider{offers: map[string]models.Offer{"off_test_1": testOffer()}}
	svc, _ := newTestService(repo, provider)

	b, err := svc.Create(context.Background(), "user_1", models.BookingInput{OfferID: "off_test_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), "user_1", b.ID, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	patch := booking.UpdateInput{Contact: &models.Contact{Email: "new@example.dev"}}
	if _, err := svc.Update(context.Background(), "user_1", b.ID, patch); !errors.Is(err, booking.ErrAlreadyCancelled) {
		t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
	}

	got, err := svc.Get(context.Background(), "user_1", b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Contact.Email == "new@example.dev" {
		t.Fatal("rejected update must not modify the booking")
	}
}

func TestUpdate_AppliesPartialPatch(t *testing.T) {
	repo := &fakeBookingRepo{}
	provider := &fakeProvider{offers: map[string]models.Offer{"off_test_1": testOffer()}}
	svc, _ := newTestService(repo, provider)

	input := models.BookingInput{
		OfferID:    "off_test_1",
		Passengers: []models.Passenger{{Type: "ADULT", FirstName: "Asha", LastName: "Rao"}},
		Contact:    models.Contact{Email: "asha@example.dev"},
	}
	b, err := svc.Create(context.Background(), "user_1", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	patch := booking.UpdateInput{Contact: &models.Contact{Email: "new@example.dev", Phone: "+91 1234"}}
	updated, err := svc.Update(context.Background(), "user_1", b.ID, patch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Contact.Email != "new@example.dev" {
		t.Fatalf("contact not updated: %+v", updated.Contact)
	}
	if len(updated.Passengers) != 1 || updated.Passengers[0].FirstName != "Asha" {
		t.Fatalf("passengers must be untouched by a contact-only patch: %+v", updated.Passengers)
	}

	// An empty patch is a no-op returning the current booking.
	same, err := svc.Update(context.Background(), "user_1", b.ID, booking.UpdateInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same.Contact.Email != "new@example.dev" {
		t.Fatalf("empty patch changed the booking: %+v", same.Contact)
	}
}

func seedBookings(repo *fakeBookingRepo, userID string, n int, base time.Time) {
	for i := 0; i < n; i++ {
		repo.bookings = append(repo.bookings, models.Booking{
			ID:        fmt.Sprintf("bk_%03d", i),
			UserID:    userID,
			Status:    models.BookingStatusConfirmed,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
}

func TestList_PaginatesNewestFirst(t *testing.T) {
	repo := &fakeBookingRepo{}
	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	seedBookings(repo, "user_1", 25, base)
	svc, _ := newTestService(repo, &fakeProvider{})

	var all []models.Booking
	cursor := ""
	pages := 0
	for {
		page, err := svc.List(context.Background(), "user_1", "", cursor)
		if err != nil {
			t.Fatalf("page %d: unexpected error: %v", pages, err)
		}
		pages++
		all = append(all, page.Items...)
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	if pages != 3 {
		t.Fatalf("expected 3 pages of 10/10/5, got %d", pages)
	}
	if len(all) != 25 {
		t.Fatalf("expected 25 bookings across pages, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Fatalf("bookings not newest-first at %d", i)
		}
	}
	// Newest booking seeded last.
	if all[0].ID != "bk_024" {
		t.Fatalf("expected newest booking first, got %s", all[0].ID)
	}
}

func TestList_InvalidCursor(t *testing.T) {
	repo := &fakeBookingRepo{}
	seedBookings(repo, "user_1", 3, time.Now().UTC())
	svc, _ := newTestService(repo, &fakeProvider{})

	_, err := svc.List(context.Background(), "user_1", "", "bk_999")
	if !errors.Is(err, booking.ErrInvalidCursor) {
		t.Fatalf("expected ErrInvalidCursor, got %v", err)
	}
}

func TestList_EmptyPage(t *testing.T) {
	svc, _ := newTestService(&fakeBookingRepo{}, &fakeProvider{})

	page, err := svc.List(context.Background(), "user_1", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Fatalf("expected an empty non-nil page, got %+v", page.Items)
	}
	if page.NextCursor != "" {
		t.Fatalf("expected no cursor, got %q", page.NextCursor)
	}
}

func TestPickNextFlight(t *testing.T) {
	now := time.Date(2025, 9, 2, 12, 0, 0, 0, time.UTC)
	seg := func(departOffset time.Duration) models.Segment {
		return models.Segment{
			Origin:   "BLR",
			DepartAt: now.Add(departOffset),
			ArriveAt: now.Add(departOffset + 100*time.Minute),
		}
	}

	bookings := []models.Booking{
		{ID: "bk_past", Currency: "INR", TotalAmount: 100, Segments: []models.Segment{seg(-48 * time.Hour)}},
		{ID: "bk_recent_past", Currency: "INR", TotalAmount: 200, Segments: []models.Segment{seg(-2 * time.Hour)}},
		{ID: "bk_far_future", Currency: "INR", TotalAmount: 300, Segments: []models.Segment{seg(72 * time.Hour)}},
		{ID: "bk_soon", Currency: "INR", TotalAmount: 400, Segments: []models.Segment{seg(3 * time.Hour)}},
	}

	next := booking.PickNextFlight(bookings, now)
	if next == nil || next.BookingID != "bk_soon" {
		t.Fatalf("expected earliest upcoming departure, got %+v", next)
	}

	// With only past departures, the most recent one wins.
	past := bookings[:2]
	next = booking.PickNextFlight(past, now)
	if next == nil || next.BookingID != "bk_recent_past" {
		t.Fatalf("expected latest past departure, got %+v", next)
	}

	if booking.PickNextFlight(nil, now) != nil {
		t.Fatal("expected nil for no bookings")
	}
}
