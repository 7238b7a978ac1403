package flights

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"skymate/models"
)

// Synthetic offer generation.
//
// Offers for an (origin, destination, departDate) triple are produced by a
// deterministic PRNG seeded from the route and date, so the same inputs yield
// byte-identical offers in every process. Each offer id embeds the route, the
// date and its index, which lets GetOffer regenerate exactly that offer later
// without any storage.

// syntheticIDPattern matches offgen_<ORIGIN>_<DEST>_<YYYYMMDD>_<index>. Any id
// that does not match is treated as a literal static-catalog id.
var syntheticIDPattern = regexp.MustCompile(`^offgen_([A-Z]{3})_([A-Z]{3})_(\d{8})_(\d{1,2})$`)

// hash32 is the 32-bit FNV-1a hash, used to derive the PRNG seed from the
// route and date string.
func hash32(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// mulberry32 is a tiny 32-bit PRNG with a fixed, documented bit-reproduction
// algorithm (state += 0x6d2b79f5 per draw, two xor-multiply mixing rounds over
// 32-bit words). The exact algorithm is load-bearing: regenerating an offer
// from its id must replay the identical draw sequence.
type mulberry32 struct {
	state uint32
}

func newMulberry32(seed uint32) *mulberry32 {
	return &mulberry32{state: seed}
}

// next returns a float in [0, 1).
func (m *mulberry32) next() float64 {
	m.state += 0x6d2b79f5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

func pick(rng *mulberry32, pool []string) string {
	return pool[int(rng.next()*float64(len(pool)))%len(pool)]
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

// formatClock renders minutes since midnight on a date as an ISO timestamp.
// Synthetic schedules are date-local; the zone is nominal.
func formatClock(dateYMD string, minutes int) string {
	return fmt.Sprintf("%sT%s:%s:00Z", dateYMD, pad2(minutes/60), pad2(minutes%60))
}

func formatDuration(mins int) string {
	return fmt.Sprintf("%dh%s", mins/60, pad2(mins%60))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Generate produces count synthetic offers for a route and date. A
// non-positive count yields an empty slice. Codes are case-normalized to
// uppercase; the seed is the FNV-1a hash of "ORIGIN|DEST|YYYY-MM-DD", so the
// output is a pure function of its inputs.
//
// Synthesis per offer, in draw order: 70% weighted coin for nonstop vs
// one-stop; duration within the route's hinted or regional range; departure
// spaced evenly across 06:00–22:00 with ±10 min jitter, clamped to
// [05:00, 23:00]; 45–120 min layover for one-stops; price from the route's
// band, scaled +15% max for longer durations and ×0.9 for one-stops, floored
// at 0.8× the band minimum. The price formula is reproduced exactly for id
// round-trip stability; it is synthetic, not authoritative pricing.
func Generate(origin, destination, departDate string, count int) []models.Offer {
	if count <= 0 {
		return []models.Offer{}
	}
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)

	rng := newMulberry32(hash32(origin + "|" + destination + "|" + departDate))
	region := RegionFor(origin)
	carriers := carriersByRegion[region]
	vias := viaByRegion[region]
	minDur, maxDur := durationRange(origin, destination)
	band := priceBandFor(origin, destination)

	const windowStart = 6 * 60  // 06:00
	const windowWidth = 16 * 60 // through 22:00
	step := windowWidth / count
	if step < 45 {
		step = 45
	}

	offers := make([]models.Offer, 0, count)
	for i := 0; i < count; i++ {
		stops := 0
		if rng.next() >= 0.7 {
			stops = 1
		}
		duration := minDur + int(math.Floor(rng.next()*float64(maxDur-minDur)))
		departMin := windowStart + i*step + int(math.Floor(rng.next()*20)) - 10
		layover := 0
		if stops == 1 {
			layover = 45 + int(math.Floor(rng.next()*75))
		}
		totalDuration := duration + layover
		arriveMin := departMin + totalDuration
		carrier := pick(rng, carriers)
		flightNumber := fmt.Sprintf("%s %d", carrier, 100+int(math.Floor(rng.next()*899)))
		via := ""
		if stops == 1 {
			via = pick(rng, vias)
		}

		base := band.Min + int64(math.Floor(rng.next()*float64(band.Max-band.Min)))
		stopFactor := 1.0
		if stops == 1 {
			stopFactor = 0.9
		}
		uplift := 1 + (float64(duration-minDur)/float64(maxDur-minDur+1))*0.15
		amount := int64(math.Floor(float64(base) * stopFactor * uplift))
		if floor := int64(math.Floor(float64(band.Min) * 0.8)); amount < floor {
			amount = floor
		}

		stopLabel := "non-stop"
		if stops == 1 {
			stopLabel = "1 stop"
		}

		offers = append(offers, models.Offer{
			ID:      fmt.Sprintf("offgen_%s_%s_%s_%d", origin, destination, strings.ReplaceAll(departDate, "-", ""), i),
			Price:   models.Price{Amount: amount, Currency: band.Currency},
			Summary: fmt.Sprintf("%s→%s %s, %s", origin, destination, stopLabel, formatDuration(totalDuration)),
			Details: models.OfferDetails{
				Origin:          origin,
				Destination:     destination,
				Carrier:         carrier,
				FlightNumber:    flightNumber,
				DepartAt:        formatClock(departDate, clamp(departMin, 5*60, 23*60)),
				ArriveAt:        formatClock(departDate, clamp(arriveMin, 6*60, 24*60-1)),
				Stops:           stops,
				Via:             via,
				DurationMinutes: totalDuration,
				Cabin:           models.CabinEconomy,
			},
		})
	}
	return offers
}

// ParseSyntheticID inverts a generated offer id into the inputs needed to
// regenerate it. ok is false for any id not in the synthetic form.
func ParseSyntheticID(id string) (origin, destination, departDate string, index int, ok bool) {
	m := syntheticIDPattern.FindStringSubmatch(id)
	if m == nil {
		return "", "", "", 0, false
	}
	ymd := m[3]
	departDate = ymd[0:4] + "-" + ymd[4:6] + "-" + ymd[6:8]
	index, _ = strconv.Atoi(m[4])
	return m[1], m[2], departDate, index, true
}
