package booking

import "fmt"

// BookingError is a domain error with a stable code the request boundary can
// map to an HTTP status. None of these are retryable by the caller.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrOfferNotFound signals the offer id did not resolve to any offer.
	ErrOfferNotFound = &BookingError{Code: "offerNotFound", Message: "offer not found"}

	// ErrBookingNotFound covers both a missing booking and one owned by a
	// different user; callers cannot tell the two apart.
	ErrBookingNotFound = &BookingError{Code: "bookingNotFound", Message: "booking not found"}

	// ErrAlreadyCancelled rejects mutation of a terminal booking.
	ErrAlreadyCancelled = &BookingError{Code: "alreadyCancelled", Message: "cannot update a cancelled booking"}

	// ErrInvalidCursor rejects a pagination cursor that does not resolve.
	ErrInvalidCursor = &BookingError{Code: "invalidCursor", Message: "pagination cursor not found"}
)

// ProviderError wraps a failed upstream provider call. The operation is not
// retried here; the caller resubmits, relying on its idempotency key to avoid
// duplication.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
