package bookingRepo

import (
	"skymate/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines data access for bookings. All reads and writes are
// scoped to the owning user; a booking that exists but belongs to someone else
// behaves exactly like one that does not exist.
type BookingRepository interface {
	// Create persists a booking together with its embedded segments in a
	// single atomic write.
	Create(booking *models.Booking) error

	// GetForUser fetches a booking owned by userID. Returns (nil, nil) when
	// absent or owned by another user.
	GetForUser(id, userID string) (*models.Booking, error)

	// UpdateFieldsForUser applies a $set document to a booking owned by
	// userID and returns the updated booking.
	UpdateFieldsForUser(id, userID string, fields bson.M) (*models.Booking, error)

	// ListForUser returns up to limit+1 bookings for a user, newest first,
	// optionally filtered by status, starting at the cursor booking when a
	// cursor id is given (inclusive). The extra element, when present, tells
	// the caller there is a further page.
	ListForUser(userID, status, cursorID string, limit int) ([]models.Booking, error)
}
