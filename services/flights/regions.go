package flights

// Region is a coarse geographic grouping of airport codes. The region pair of
// a route decides the carrier pool, via-airport pool, currency and price band
// used by the synthetic generator.
type Region string

const (
	RegionIN    Region = "IN"
	RegionUS    Region = "US"
	RegionUK    Region = "UK"
	RegionEU    Region = "EU"
	RegionOther Region = "OTHER"
)

var inAirports = map[string]bool{
	"BLR": true, "BOM": true, "DEL": true, "GOI": true, "HYD": true,
	"MAA": true, "COK": true, "AMD": true, "CCU": true, "PNQ": true,
}

var usAirports = map[string]bool{
	"SFO": true, "SEA": true, "JFK": true, "LAX": true, "ORD": true,
	"DFW": true, "ATL": true, "BOS": true, "IAD": true, "IAH": true,
	"PHX": true, "SAN": true, "LAS": true, "DEN": true, "PDX": true,
	"MSP": true, "SLC": true,
}

var ukAirports = map[string]bool{
	"LHR": true, "LGW": true, "MAN": true,
}

var euAirports = map[string]bool{
	"CDG": true, "AMS": true, "FRA": true, "MUC": true, "MAD": true,
	"BCN": true, "ZRH": true, "VIE": true, "FCO": true,
}

// RegionFor classifies an airport code into its region.
func RegionFor(code string) Region {
	switch {
	case inAirports[code]:
		return RegionIN
	case usAirports[code]:
		return RegionUS
	case ukAirports[code]:
		return RegionUK
	case euAirports[code]:
		return RegionEU
	default:
		return RegionOther
	}
}

// CurrencyFor picks the currency of a route: the shared region's currency when
// both endpoints match, otherwise the origin's region currency, defaulting to
// USD for unknown origins. UK→EU and EU→UK trade in EUR.
func CurrencyFor(origin, dest string) string {
	ro, rd := RegionFor(origin), RegionFor(dest)
	switch {
	case ro == RegionIN && rd == RegionIN:
		return "INR"
	case ro == RegionUS && rd == RegionUS:
		return "USD"
	case ro == RegionUK && rd == RegionUK:
		return "GBP"
	case (ro == RegionEU && rd == RegionEU) || (ro == RegionUK && rd == RegionEU) || (ro == RegionEU && rd == RegionUK):
		return "EUR"
	}
	switch ro {
	case RegionIN:
		return "INR"
	case RegionUS:
		return "USD"
	case RegionUK:
		return "GBP"
	case RegionEU:
		return "EUR"
	}
	return "USD"
}

var carriersByRegion = map[Region][]string{
	RegionIN:    {"6E", "AI", "UK", "I5", "SG", "G8"},
	RegionUS:    {"AS", "DL", "UA", "AA", "B6", "WN"},
	RegionUK:    {"BA", "U2", "VS"},
	RegionEU:    {"AF", "LH", "KL", "LX", "IB", "SK", "VY"},
	RegionOther: {"XY", "ZZ"},
}

var viaByRegion = map[Region][]string{
	RegionIN:    {"HYD", "GOI", "MAA", "COK", "AMD", "CCU", "PNQ"},
	RegionUS:    {"PDX", "SLC", "DEN", "PHX", "LAS", "DFW", "ORD", "IAD", "MSP"},
	RegionUK:    {"MAN", "LGW", "LHR"},
	RegionEU:    {"AMS", "CDG", "FRA", "ZRH", "MAD", "BCN", "FCO", "VIE", "MUC"},
	RegionOther: {"HUB"},
}

// routeDurationHints overrides the regional duration range (minutes, gate to
// gate before layover) for a short list of well-known routes.
var routeDurationHints = map[string][2]int{
	"BLR-BOM": {90, 115},
	"DEL-GOI": {150, 175},
	"SFO-SEA": {115, 140},
	"JFK-LAX": {350, 400},
	"LHR-CDG": {70, 90},
	"DEL-BLR": {120, 150},
	"BLR-DEL": {120, 150},
	"BOM-DEL": {110, 140},
	"DEL-BOM": {110, 140},
	"SFO-LAX": {60, 90},
}

func durationRange(origin, dest string) (int, int) {
	if hint, ok := routeDurationHints[origin+"-"+dest]; ok {
		return hint[0], hint[1]
	}
	ro, rd := RegionFor(origin), RegionFor(dest)
	if ro == rd {
		switch ro {
		case RegionUS:
			return 90, 210
		case RegionIN:
			return 70, 190
		case RegionEU, RegionUK:
			return 60, 180
		}
	}
	// Cross-region routes are medium to long haul.
	return 240, 540
}

// priceBand is the synthetic base-price range in minor units for a currency.
type priceBand struct {
	Currency string
	Min      int64
	Max      int64
}

func priceBandFor(origin, dest string) priceBand {
	switch CurrencyFor(origin, dest) {
	case "INR":
		return priceBand{Currency: "INR", Min: 24900, Max: 64900}
	case "GBP":
		return priceBand{Currency: "GBP", Min: 5900, Max: 17900}
	case "EUR":
		return priceBand{Currency: "EUR", Min: 6900, Max: 18900}
	default:
		return priceBand{Currency: "USD", Min: 8900, Max: 29900}
	}
}
