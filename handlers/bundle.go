package handlers

// HandlerBundle carries the constructed handlers into route registration.
type HandlerBundle struct {
	Flights  *FlightsHandler
	Bookings *BookingHandler
	Users    *UserHandler
}
