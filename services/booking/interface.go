package booking

import (
	"context"
	"time"

	"skymate/models"
)

// UpdateInput is a partial update of a booking's mutable fields. Nil fields
// are left untouched; status and money fields are never client-mutable.
type UpdateInput struct {
	Contact    *models.Contact    `json:"contact,omitempty"`
	Passengers []models.Passenger `json:"passengers,omitempty"`
}

// NextFlight points at one segment of one booking: the user's next upcoming
// departure, or their most recent past one when nothing lies ahead.
type NextFlight struct {
	BookingID   string         `json:"bookingId"`
	Currency    string         `json:"currency"`
	TotalAmount int64          `json:"totalAmount"`
	Segment     models.Segment `json:"segment"`
}

// Service orchestrates provider bookings and their persistence. All operations
// are scoped to the calling user.
type Service interface {
	Create(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error)
	Cancel(ctx context.Context, userID, bookingID, reason string) (*models.Booking, error)
	Get(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	Update(ctx context.Context, userID, bookingID string, patch UpdateInput) (*models.Booking, error)
	List(ctx context.Context, userID, status, cursor string) (*models.BookingPage, error)
	NextSegment(ctx context.Context, userID string, now time.Time) (*NextFlight, error)
}
