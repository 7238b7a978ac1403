package booking

import (
	"context"
	"time"

	"skymate/models"
)

// NextSegment finds the user's next upcoming flight: the segment with the
// earliest future departure across their confirmed bookings, or the most
// recent past departure when nothing lies ahead. Returns (nil, nil) when the
// user has no confirmed segments at all.
func (s *DefaultBookingService) NextSegment(ctx context.Context, userID string, now time.Time) (*NextFlight, error) {
	var bookings []models.Booking
	cursor := ""
	for {
		page, err := s.List(ctx, userID, models.BookingStatusConfirmed, cursor)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, page.Items...)
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}
	return PickNextFlight(bookings, now), nil
}

// PickNextFlight is the pure selection over a set of bookings: earliest
// future departure wins; otherwise the latest past departure.
func PickNextFlight(bookings []models.Booking, now time.Time) *NextFlight {
	var upcoming, latestPast *NextFlight

	for i := range bookings {
		b := &bookings[i]
		for _, seg := range b.Segments {
			candidate := &NextFlight{
				BookingID:   b.ID,
				Currency:    b.Currency,
				TotalAmount: b.TotalAmount,
				Segment:     seg,
			}
			if !seg.DepartAt.Before(now) {
				if upcoming == nil || seg.DepartAt.Before(upcoming.Segment.DepartAt) {
					upcoming = candidate
				}
			} else if latestPast == nil || seg.DepartAt.After(latestPast.Segment.DepartAt) {
				latestPast = candidate
			}
		}
	}

	if upcoming != nil {
		return upcoming
	}
	return latestPast
}
