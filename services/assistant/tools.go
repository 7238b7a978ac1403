package assistant

import (
	"context"
	"time"

	"skymate/models"
	"skymate/services/booking"
	"skymate/services/flights"
	"skymate/services/user"
)

// ToolService exposes the read-only capabilities an LLM assistant may call
// against a user's own data. Chat orchestration, prompt handling and the LLM
// client live outside this server; these are just the capabilities, each
// strictly scoped to the calling user.
type ToolService interface {
	GetUserProfile(ctx context.Context, userID string) (*models.User, error)
	ListUserBookings(ctx context.Context, userID, status string) (*models.BookingPage, error)
	GetNextFlight(ctx context.Context, userID string) (*booking.NextFlight, error)
	SearchFlights(ctx context.Context, origin, destination, depart string, adults int) ([]models.Offer, error)
}

// DefaultToolService implements ToolService over the core services.
type DefaultToolService struct {
	Users    user.Service
	Bookings booking.Service
	Provider flights.Provider
}

func (s *DefaultToolService) GetUserProfile(_ context.Context, userID string) (*models.User, error) {
	return s.Users.GetProfile(userID)
}

func (s *DefaultToolService) ListUserBookings(ctx context.Context, userID, status string) (*models.BookingPage, error) {
	return s.Bookings.List(ctx, userID, status, "")
}

func (s *DefaultToolService) GetNextFlight(ctx context.Context, userID string) (*booking.NextFlight, error) {
	return s.Bookings.NextSegment(ctx, userID, time.Now().UTC())
}

// SearchFlights accepts loose origin/destination/date input the way a chat
// model produces it, normalizes it, and runs a regular search.
func (s *DefaultToolService) SearchFlights(ctx context.Context, origin, destination, depart string, adults int) ([]models.Offer, error) {
	if adults < 1 {
		adults = 1
	}
	params := models.SearchParams{
		Origin:      NormalizePlace(origin),
		Destination: NormalizePlace(destination),
		DepartDate:  NormalizeDate(depart, time.Now()),
		Adults:      adults,
	}
	return s.Provider.Search(ctx, params)
}
