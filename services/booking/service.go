package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	bookingRepo "skymate/database/repository/booking"
	userRepo "skymate/database/repository/user"
	"skymate/models"
	"skymate/services/flights"
)

// pageSize is the fixed page size for booking listings.
const pageSize = 10

// DefaultBookingService implements Service against a flight provider and the
// booking repository.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Provider flights.Provider
	Logger   *zap.Logger
}

// Create validates the offer, books it with the provider and persists the
// booking with its single derived segment. The booking and segment land in one
// atomic write, so a partial record is never observable. If the provider
// booking succeeds but persistence fails, the upstream reservation is orphaned
// with no local record; that window is a known prototype gap and is logged
// loudly rather than reconciled.
func (s *DefaultBookingService) Create(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error) {
	offer, err := s.Provider.GetOffer(ctx, input.OfferID)
	if err != nil {
		return nil, &ProviderError{Op: "getOffer", Err: err}
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}

	res, err := s.Provider.Book(ctx, input)
	if err != nil {
		return nil, &ProviderError{Op: "book", Err: err}
	}

	if _, err := s.Users.Ensure(userID); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		Provider:    s.Provider.Name(),
		ProviderRef: res.OrderID,
		Status:      res.Status,
		TotalAmount: offer.Price.Amount,
		Currency:    offer.Price.Currency,
		OfferID:     offer.ID,
		Passengers:  input.Passengers,
		Contact:     input.Contact,
		Segments:    []models.Segment{segmentFromOffer(offer, time.Now().UTC())},
	}

	if err := s.Repo.Create(booking); err != nil {
		s.Logger.Error("booking persisted after provider confirm failed; upstream order is orphaned",
			zap.String("provider_ref", res.OrderID),
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, err
	}
	return booking, nil
}

// segmentFromOffer derives the booking's single segment from the offer
// schedule, substituting sane defaults when schedule fields are missing.
func segmentFromOffer(offer *models.Offer, now time.Time) models.Segment {
	departAt, err := time.Parse(time.RFC3339, offer.Details.DepartAt)
	if err != nil {
		departAt = now
	}
	arriveAt, err := time.Parse(time.RFC3339, offer.Details.ArriveAt)
	if err != nil {
		dur := time.Duration(offer.Details.DurationMinutes) * time.Minute
		if dur <= 0 {
			dur = 90 * time.Minute
		}
		arriveAt = departAt.Add(dur)
	}

	origin := offer.Details.Origin
	if origin == "" {
		origin = "XXX"
	}
	destination := offer.Details.Destination
	if destination == "" {
		destination = "XXX"
	}
	carrier := offer.Details.Carrier
	if carrier == "" {
		carrier = "XX"
	}
	flightNumber := offer.Details.FlightNumber
	if flightNumber == "" {
		flightNumber = "0001"
	}

	return models.Segment{
		Origin:       origin,
		Destination:  destination,
		DepartAt:     departAt,
		ArriveAt:     arriveAt,
		Carrier:      carrier,
		FlightNumber: flightNumber,
	}
}

// Cancel moves a booking to its terminal state. Cancelling an already
// cancelled booking is a no-op that returns the booking unchanged; the
// provider is only told once.
func (s *DefaultBookingService) Cancel(ctx context.Context, userID, bookingID, reason string) (*models.Booking, error) {
	booking, err := s.Repo.GetForUser(bookingID, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status == models.BookingStatusCancelled {
		return booking, nil
	}

	if _, err := s.Provider.Cancel(ctx, booking.ProviderRef, reason); err != nil {
		return nil, &ProviderError{Op: "cancel", Err: err}
	}

	updated, err := s.Repo.UpdateFieldsForUser(bookingID, userID, bson.M{"status": models.BookingStatusCancelled})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}
	return updated, nil
}

func (s *DefaultBookingService) Get(_ context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetForUser(bookingID, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// Update applies a partial change to contact and passenger fields only.
// Cancelled bookings are immutable and reject the update outright.
func (s *DefaultBookingService) Update(_ context.Context, userID, bookingID string, patch UpdateInput) (*models.Booking, error) {
	booking, err := s.Repo.GetForUser(bookingID, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	fields := bson.M{}
	if patch.Contact != nil {
		fields["contact"] = *patch.Contact
	}
	if patch.Passengers != nil {
		fields["passengers"] = patch.Passengers
	}
	if len(fields) == 0 {
		return booking, nil
	}

	updated, err := s.Repo.UpdateFieldsForUser(bookingID, userID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}
	return updated, nil
}

// List returns one page of the user's bookings, newest first, optionally
// filtered by status. NextCursor names the first booking beyond the page.
func (s *DefaultBookingService) List(_ context.Context, userID, status, cursor string) (*models.BookingPage, error) {
	items, err := s.Repo.ListForUser(userID, status, cursor, pageSize)
	if err != nil {
		if err == bookingRepo.ErrCursorNotFound {
			return nil, ErrInvalidCursor
		}
		return nil, err
	}

	page := &models.BookingPage{Items: items}
	if len(items) > pageSize {
		page.Items = items[:pageSize]
		page.NextCursor = items[pageSize].ID
	}
	if page.Items == nil {
		page.Items = []models.Booking{}
	}
	return page, nil
}
