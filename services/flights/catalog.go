package flights

import "skymate/models"

// staticOffers is the hand-authored catalog: a handful of realistic offers on
// popular routes for a fixed sample date. Synthetic ids never collide with
// these because they always carry the offgen_ prefix.
var staticOffers = []models.Offer{
	// BLR → BOM — 2025-09-02
	{
		ID:      "off_blr_bom_0630_6e",
		Price:   models.Price{Amount: 34900, Currency: "INR"},
		Summary: "BLR→BOM non-stop, 1h35",
		Details: models.OfferDetails{Origin: "BLR", Destination: "BOM", Carrier: "6E", FlightNumber: "6E 512", DepartAt: "2025-09-02T06:30:00+05:30", ArriveAt: "2025-09-02T08:05:00+05:30", Stops: 0, DurationMinutes: 95, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_blr_bom_0805_ai",
		Price:   models.Price{Amount: 36900, Currency: "INR"},
		Summary: "BLR→BOM non-stop, 1h40",
		Details: models.OfferDetails{Origin: "BLR", Destination: "BOM", Carrier: "AI", FlightNumber: "AI 640", DepartAt: "2025-09-02T08:05:00+05:30", ArriveAt: "2025-09-02T09:45:00+05:30", Stops: 0, DurationMinutes: 100, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_blr_bom_1100_uk",
		Price:   models.Price{Amount: 39900, Currency: "INR"},
		Summary: "BLR→BOM non-stop, 1h45",
		Details: models.OfferDetails{Origin: "BLR", Destination: "BOM", Carrier: "UK", FlightNumber: "UK 855", DepartAt: "2025-09-02T11:00:00+05:30", ArriveAt: "2025-09-02T12:45:00+05:30", Stops: 0, DurationMinutes: 105, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_blr_bom_1420_i5",
		Price:   models.Price{Amount: 35900, Currency: "INR"},
		Summary: "BLR→BOM non-stop, 1h35",
		Details: models.OfferDetails{Origin: "BLR", Destination: "BOM", Carrier: "I5", FlightNumber: "I5 321", DepartAt: "2025-09-02T14:20:00+05:30", ArriveAt: "2025-09-02T15:55:00+05:30", Stops: 0, DurationMinutes: 95, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_blr_bom_1810_6e",
		Price:   models.Price{Amount: 42900, Currency: "INR"},
		Summary: "BLR→BOM non-stop, 1h40",
		Details: models.OfferDetails{Origin: "BLR", Destination: "BOM", Carrier: "6E", FlightNumber: "6E 834", DepartAt: "2025-09-02T18:10:00+05:30", ArriveAt: "2025-09-02T19:50:00+05:30", Stops: 0, DurationMinutes: 100, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_blr_bom_2115_ai",
		Price:   models.Price{Amount: 43900, Currency: "INR"},
		Summary: "BLR→BOM non-stop, 1h35",
		Details: models.OfferDetails{Origin: "BLR", Destination: "BOM", Carrier: "AI", FlightNumber: "AI 644", DepartAt: "2025-09-02T21:15:00+05:30", ArriveAt: "2025-09-02T22:50:00+05:30", Stops: 0, DurationMinutes: 95, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_blr_bom_0930_uk_goi",
		Price:   models.Price{Amount: 28900, Currency: "INR"},
		Summary: "BLR→BOM 1 stop, 3h10",
		Details: models.OfferDetails{Origin: "BLR", Destination: "BOM", Carrier: "UK", FlightNumber: "UK 301", DepartAt: "2025-09-02T09:30:00+05:30", ArriveAt: "2025-09-02T12:40:00+05:30", Stops: 1, Via: "GOI", DurationMinutes: 190, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_blr_bom_1625_6e_hyd",
		Price:   models.Price{Amount: 30900, Currency: "INR"},
		Summary: "BLR→BOM 1 stop, 3h40",
		Details: models.OfferDetails{Origin: "BLR", Destination: "BOM", Carrier: "6E", FlightNumber: "6E 712", DepartAt: "2025-09-02T16:25:00+05:30", ArriveAt: "2025-09-02T20:05:00+05:30", Stops: 1, Via: "HYD", DurationMinutes: 220, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_blr_bom_2300_ai_maa",
		Price:   models.Price{Amount: 27900, Currency: "INR"},
		Summary: "BLR→BOM 1 stop, 4h05",
		Details: models.OfferDetails{Origin: "BLR", Destination: "BOM", Carrier: "AI", FlightNumber: "AI 321", DepartAt: "2025-09-02T23:00:00+05:30", ArriveAt: "2025-09-03T03:05:00+05:30", Stops: 1, Via: "MAA", DurationMinutes: 245, Cabin: models.CabinEconomy},
	},

	// DEL → GOI — 2025-09-02
	{
		ID:      "off_del_goi_0710_6e",
		Price:   models.Price{Amount: 52900, Currency: "INR"},
		Summary: "DEL→GOI non-stop, 2h35",
		Details: models.OfferDetails{Origin: "DEL", Destination: "GOI", Carrier: "6E", FlightNumber: "6E 221", DepartAt: "2025-09-02T07:10:00+05:30", ArriveAt: "2025-09-02T09:45:00+05:30", Stops: 0, DurationMinutes: 155, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_del_goi_1215_ai",
		Price:   models.Price{Amount: 56900, Currency: "INR"},
		Summary: "DEL→GOI non-stop, 2h45",
		Details: models.OfferDetails{Origin: "DEL", Destination: "GOI", Carrier: "AI", FlightNumber: "AI 885", DepartAt: "2025-09-02T12:15:00+05:30", ArriveAt: "2025-09-02T15:00:00+05:30", Stops: 0, DurationMinutes: 165, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_del_goi_2040_uk",
		Price:   models.Price{Amount: 54900, Currency: "INR"},
		Summary: "DEL→GOI non-stop, 2h35",
		Details: models.OfferDetails{Origin: "DEL", Destination: "GOI", Carrier: "UK", FlightNumber: "UK 871", DepartAt: "2025-09-02T20:40:00+05:30", ArriveAt: "2025-09-02T23:15:00+05:30", Stops: 0, DurationMinutes: 155, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_del_goi_1030_6e_bom",
		Price:   models.Price{Amount: 46900, Currency: "INR"},
		Summary: "DEL→GOI 1 stop, 4h10",
		Details: models.OfferDetails{Origin: "DEL", Destination: "GOI", Carrier: "6E", FlightNumber: "6E 330", DepartAt: "2025-09-02T10:30:00+05:30", ArriveAt: "2025-09-02T14:40:00+05:30", Stops: 1, Via: "BOM", DurationMinutes: 250, Cabin: models.CabinEconomy},
	},

	// SFO → SEA — 2025-09-02
	{
		ID:      "off_sfo_sea_0715_as",
		Price:   models.Price{Amount: 13900, Currency: "USD"},
		Summary: "SFO→SEA non-stop, 2h05",
		Details: models.OfferDetails{Origin: "SFO", Destination: "SEA", Carrier: "AS", FlightNumber: "AS 123", DepartAt: "2025-09-02T07:15:00-07:00", ArriveAt: "2025-09-02T09:20:00-07:00", Stops: 0, DurationMinutes: 125, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_sfo_sea_1320_dl",
		Price:   models.Price{Amount: 14900, Currency: "USD"},
		Summary: "SFO→SEA non-stop, 2h10",
		Details: models.OfferDetails{Origin: "SFO", Destination: "SEA", Carrier: "DL", FlightNumber: "DL 456", DepartAt: "2025-09-02T13:20:00-07:00", ArriveAt: "2025-09-02T15:30:00-07:00", Stops: 0, DurationMinutes: 130, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_sfo_sea_1825_ua",
		Price:   models.Price{Amount: 15900, Currency: "USD"},
		Summary: "SFO→SEA non-stop, 2h02",
		Details: models.OfferDetails{Origin: "SFO", Destination: "SEA", Carrier: "UA", FlightNumber: "UA 789", DepartAt: "2025-09-02T18:25:00-07:00", ArriveAt: "2025-09-02T20:27:00-07:00", Stops: 0, DurationMinutes: 122, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_sfo_sea_1000_as_pdx",
		Price:   models.Price{Amount: 12900, Currency: "USD"},
		Summary: "SFO→SEA 1 stop, 3h20",
		Details: models.OfferDetails{Origin: "SFO", Destination: "SEA", Carrier: "AS", FlightNumber: "AS 234", DepartAt: "2025-09-02T10:00:00-07:00", ArriveAt: "2025-09-02T13:20:00-07:00", Stops: 1, Via: "PDX", DurationMinutes: 200, Cabin: models.CabinEconomy},
	},

	// International samples, same date
	{
		ID:      "off_lhr_cdg_0900_ba",
		Price:   models.Price{Amount: 9900, Currency: "GBP"},
		Summary: "LHR→CDG non-stop, 1h20",
		Details: models.OfferDetails{Origin: "LHR", Destination: "CDG", Carrier: "BA", FlightNumber: "BA 304", DepartAt: "2025-09-02T09:00:00+01:00", ArriveAt: "2025-09-02T11:20:00+02:00", Stops: 0, DurationMinutes: 80, Cabin: models.CabinEconomy},
	},
	{
		ID:      "off_jfk_lax_1500_b6",
		Price:   models.Price{Amount: 21900, Currency: "USD"},
		Summary: "JFK→LAX non-stop, 6h10",
		Details: models.OfferDetails{Origin: "JFK", Destination: "LAX", Carrier: "B6", FlightNumber: "B6 715", DepartAt: "2025-09-02T15:00:00-04:00", ArriveAt: "2025-09-02T18:10:00-07:00", Stops: 0, DurationMinutes: 370, Cabin: models.CabinEconomy},
	},
}

// sameDate compares the calendar-day prefix of an ISO timestamp with a
// YYYY-MM-DD string. Static schedules are ISO-like, so no zone math is needed.
func sameDate(iso, ymd string) bool {
	return len(iso) >= 10 && iso[:10] == ymd
}
