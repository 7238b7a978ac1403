package models

import "time"

// Booking statuses. RESERVED and CONFIRMED come from the provider's booking
// result; CANCELLED is terminal and a cancelled booking is immutable.
const (
	BookingStatusReserved  = "RESERVED"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
)

// Contact holds the booking holder's contact details.
type Contact struct {
	Email string `bson:"email" json:"email" binding:"required,email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Passenger is one traveler on a booking.
type Passenger struct {
	Type      string `bson:"type" json:"type" binding:"required,oneof=ADULT CHILD INFANT"`
	FirstName string `bson:"first_name" json:"firstName" binding:"required"`
	LastName  string `bson:"last_name" json:"lastName" binding:"required"`
}

// Segment is one scheduled flight leg owned by a booking. Segments are created
// atomically with their booking and never mutated independently.
type Segment struct {
	Origin       string    `bson:"origin" json:"origin"`
	Destination  string    `bson:"destination" json:"destination"`
	DepartAt     time.Time `bson:"depart_at" json:"departAt"`
	ArriveAt     time.Time `bson:"arrive_at" json:"arriveAt"`
	Carrier      string    `bson:"carrier" json:"carrier"`
	FlightNumber string    `bson:"flight_number" json:"flightNumber"`
}

// Booking is a persisted reservation owned by exactly one user.
type Booking struct {
	ID          string      `bson:"id" json:"id"`
	UserID      string      `bson:"user_id" json:"userId"`
	Provider    string      `bson:"provider" json:"provider"`
	ProviderRef string      `bson:"provider_ref" json:"providerRef"`
	Status      string      `bson:"status" json:"status"`
	TotalAmount int64       `bson:"total_amount" json:"totalAmount"`
	Currency    string      `bson:"currency" json:"currency"`
	OfferID     string      `bson:"offer_id" json:"offerId"`
	Passengers  []Passenger `bson:"passengers" json:"passengers"`
	Contact     Contact     `bson:"contact" json:"contact"`
	Segments    []Segment   `bson:"segments" json:"segments"`
	CreatedAt   time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updatedAt"`
}

// BookingPage is one page of a user's bookings, newest first. NextCursor is the
// id of the first booking beyond the page, or empty at the end.
type BookingPage struct {
	Items      []Booking `json:"items"`
	NextCursor string    `json:"nextCursor,omitempty"`
}
