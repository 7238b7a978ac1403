package models

// Cabin classes accepted by search.
const (
	CabinEconomy        = "ECONOMY"
	CabinPremiumEconomy = "PREMIUM_ECONOMY"
	CabinBusiness       = "BUSINESS"
	CabinFirst          = "FIRST"
)

// Sort orders for search results.
const (
	SortPrice    = "price"
	SortDuration = "duration"
)

// SearchParams is the input to a flight search. Origin and destination are
// 3-letter IATA codes; DepartDate is a YYYY-MM-DD calendar date.
type SearchParams struct {
	Origin      string `json:"origin" binding:"required,len=3,alpha"`
	Destination string `json:"destination" binding:"required,len=3,alpha"`
	DepartDate  string `json:"departDate" binding:"required,datetime=2006-01-02"`
	ReturnDate  string `json:"returnDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Adults      int    `json:"adults" binding:"required,min=1"`
	Children    int    `json:"children,omitempty" binding:"omitempty,min=0"`
	Infants     int    `json:"infants,omitempty" binding:"omitempty,min=0"`
	Cabin       string `json:"cabin,omitempty" binding:"omitempty,oneof=ECONOMY PREMIUM_ECONOMY BUSINESS FIRST"`
	// MaxStops is a ceiling on stop count; nil means no limit.
	MaxStops *int   `json:"maxStops,omitempty" binding:"omitempty,min=0"`
	Sort     string `json:"sort,omitempty" binding:"omitempty,oneof=price duration"`
}
