package flights

import (
	"context"

	"skymate/models"
)

// Provider is the flight-provider capability surface consumed by the booking
// service. The mock implementation is the default; a real GDS backend can be
// swapped in by constructing a different implementation at startup and
// injecting it where a Provider is needed.
//
// GetOffer returns (nil, nil) for an unknown or unparseable id: absence is a
// normal outcome for callers, distinct from a transport failure.
type Provider interface {
	Name() string
	Search(ctx context.Context, params models.SearchParams) ([]models.Offer, error)
	GetOffer(ctx context.Context, offerID string) (*models.Offer, error)
	Book(ctx context.Context, input models.BookingInput) (*models.BookingResult, error)
	Cancel(ctx context.Context, orderID, reason string) (*models.CancelResult, error)
	GetOrder(ctx context.Context, orderID string) (*models.OrderSnapshot, error)
}
