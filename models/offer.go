package models

// Price is a monetary amount in minor units (paise, cents) with an ISO 4217 code.
type Price struct {
	Amount   int64  `bson:"amount" json:"amount"`
	Currency string `bson:"currency" json:"currency"`
}

// OfferDetails carries the schedule behind an offer with explicit types.
type OfferDetails struct {
	Origin          string `bson:"origin" json:"origin"`
	Destination     string `bson:"destination" json:"destination"`
	Carrier         string `bson:"carrier" json:"carrier"`
	FlightNumber    string `bson:"flight_number" json:"flightNumber"`
	DepartAt        string `bson:"depart_at" json:"departAt"` // ISO 8601 timestamp
	ArriveAt        string `bson:"arrive_at" json:"arriveAt"`
	Stops           int    `bson:"stops" json:"stops"`
	Via             string `bson:"via,omitempty" json:"via,omitempty"`
	DurationMinutes int    `bson:"duration_minutes" json:"durationMinutes"`
	Cabin           string `bson:"cabin" json:"cabin"`
}

// Offer is an immutable priced quote for a flight. Hand-authored offers carry a
// literal id; synthetic ones use the form offgen_<ORIGIN>_<DEST>_<YYYYMMDD>_<index>,
// which encodes everything needed to regenerate the offer without storage.
type Offer struct {
	ID      string       `json:"id"`
	Price   Price        `json:"price"`
	Summary string       `json:"summary"`
	Details OfferDetails `json:"details"`
}

// BookingInput is the provider-facing payload for booking an offer.
type BookingInput struct {
	OfferID    string      `json:"offerId"`
	Contact    Contact     `json:"contact"`
	Passengers []Passenger `json:"passengers"`
}

// BookingResult is what a provider returns for a successful booking.
type BookingResult struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"` // RESERVED or CONFIRMED
}

// CancelResult reports the terminal status of a cancelled provider order.
type CancelResult struct {
	Status string `json:"status"` // always CANCELLED
}

// OrderSnapshot is an opaque view of a provider-side order.
type OrderSnapshot struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
