package assistant

import (
	"regexp"
	"strings"
	"time"
)

// Loose-input normalization for assistant tool arguments: city names and
// natural date phrases become IATA codes and YYYY-MM-DD dates. Heuristics, not
// a geocoder; unknown places degrade to a best-effort 3-letter guess.

var iataAliases = map[string]string{
	// India
	"blr": "BLR", "bengaluru": "BLR", "bangalore": "BLR",
	"bom": "BOM", "mumbai": "BOM", "bombay": "BOM",
	"del": "DEL", "delhi": "DEL", "new delhi": "DEL",
	"goi": "GOI", "goa": "GOI",
	// US
	"nyc": "JFK", "new york": "JFK", "new york city": "JFK", "jfk": "JFK", "ewr": "EWR", "lga": "LGA",
	"sfo": "SFO", "san francisco": "SFO",
	"sea": "SEA", "seattle": "SEA",
	// UK
	"lon": "LHR", "london": "LHR", "lhr": "LHR", "lgw": "LGW",
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var (
	iataPattern     = regexp.MustCompile(`^[a-z]{3}$`)
	isoDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	nextDayPattern  = regexp.MustCompile(`^next\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)$`)
	thisDayPattern  = regexp.MustCompile(`^this\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)$`)
	eveningPattern  = regexp.MustCompile(`tonight|evening|late`)
	daytimePattern  = regexp.MustCompile(`morning|afternoon`)
	nonAlphaPattern = regexp.MustCompile(`[^a-z]`)
)

// NormalizePlace maps loose place input to an IATA code: a code passes
// through uppercased, known aliases resolve, a "City, Country" form tries its
// first part, and anything else falls back to the first three letters.
func NormalizePlace(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return ""
	}
	if iataPattern.MatchString(s) {
		return strings.ToUpper(s)
	}
	if code, ok := iataAliases[s]; ok {
		return code
	}
	first := strings.TrimSpace(strings.SplitN(s, ",", 2)[0])
	if code, ok := iataAliases[first]; ok {
		return code
	}
	letters := nonAlphaPattern.ReplaceAllString(first, "")
	if len(letters) >= 3 {
		return strings.ToUpper(letters[:3])
	}
	return iataAliases["nyc"]
}

// NormalizeDate resolves a natural date phrase relative to now: ISO dates pass
// through; today/tomorrow, "next friday", "this monday" and time-of-day words
// resolve to calendar dates; anything unrecognized means today.
func NormalizeDate(input string, now time.Time) string {
	format := func(t time.Time) string { return t.Format("2006-01-02") }

	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return format(now)
	}
	if isoDatePattern.MatchString(s) {
		return s
	}
	switch s {
	case "today":
		return format(now)
	case "tomorrow":
		return format(now.AddDate(0, 0, 1))
	}
	if m := nextDayPattern.FindStringSubmatch(s); m != nil {
		target := weekdays[m[1]]
		delta := (7 + int(target) - int(now.Weekday())) % 7
		if delta == 0 {
			delta = 7
		}
		return format(now.AddDate(0, 0, delta))
	}
	if m := thisDayPattern.FindStringSubmatch(s); m != nil {
		target := weekdays[m[1]]
		delta := (7 + int(target) - int(now.Weekday())) % 7
		return format(now.AddDate(0, 0, delta))
	}
	if eveningPattern.MatchString(s) {
		if now.Hour() >= 18 {
			return format(now.AddDate(0, 0, 1))
		}
		return format(now)
	}
	if daytimePattern.MatchString(s) {
		return format(now)
	}
	return format(now)
}
