package flights

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"skymate/models"
)

// searchBatchSize is how many synthetic offers search unions into its results.
// Lookups regenerate with the same size so the replayed draw sequence and
// departure spacing reproduce the searched offer exactly; a larger batch would
// shift the schedule because departure slots are spaced by batch size.
const searchBatchSize = 18

// MockProvider serves the static catalog plus deterministically generated
// synthetic offers. It holds no mutable state, so it is safe to share across
// concurrent requests. Book and Cancel always succeed; there is no real
// inventory or payment behind them.
type MockProvider struct{}

// NewMockProvider returns the mock flight provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Name() string { return "mock" }

// Search filters the static catalog by origin, destination, date, cabin and
// max stops, then unions in a batch of synthetic offers when the route and
// date are fully specified. Results are deduplicated by id and sorted by price
// ascending, or by duration when requested. The full set is returned; there is
// no pagination at this layer.
func (p *MockProvider) Search(_ context.Context, params models.SearchParams) ([]models.Offer, error) {
	origin := strings.ToUpper(params.Origin)
	dest := strings.ToUpper(params.Destination)

	matches := func(o models.Offer) bool {
		if origin != "" && o.Details.Origin != origin {
			return false
		}
		if dest != "" && o.Details.Destination != dest {
			return false
		}
		if params.DepartDate != "" && !sameDate(o.Details.DepartAt, params.DepartDate) {
			return false
		}
		if params.MaxStops != nil && o.Details.Stops > *params.MaxStops {
			return false
		}
		if params.Cabin != "" && o.Details.Cabin != params.Cabin {
			return false
		}
		return true
	}

	var results []models.Offer
	for _, o := range staticOffers {
		if matches(o) {
			results = append(results, o)
		}
	}

	if origin != "" && dest != "" && params.DepartDate != "" {
		seen := make(map[string]bool, len(results))
		for _, o := range results {
			seen[o.ID] = true
		}
		for _, o := range Generate(origin, dest, params.DepartDate, searchBatchSize) {
			if matches(o) && !seen[o.ID] {
				seen[o.ID] = true
				results = append(results, o)
			}
		}
	}

	if params.Sort == models.SortDuration {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Details.DurationMinutes < results[j].Details.DurationMinutes
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price.Amount < results[j].Price.Amount
		})
	}
	return results, nil
}

// GetOffer resolves an offer id: the static catalog first, then synthetic ids,
// which are inverted and regenerated on the spot. Unknown ids yield (nil, nil).
func (p *MockProvider) GetOffer(_ context.Context, offerID string) (*models.Offer, error) {
	for i := range staticOffers {
		if staticOffers[i].ID == offerID {
			o := staticOffers[i]
			return &o, nil
		}
	}
	origin, dest, departDate, index, ok := ParseSyntheticID(offerID)
	if !ok {
		return nil, nil
	}
	count := searchBatchSize
	if index+1 > count {
		count = index + 1
	}
	batch := Generate(origin, dest, departDate, count)
	if index >= len(batch) {
		return nil, nil
	}
	o := batch[index]
	return &o, nil
}

// Book always confirms with a fresh unique order reference.
func (p *MockProvider) Book(_ context.Context, _ models.BookingInput) (*models.BookingResult, error) {
	return &models.BookingResult{
		OrderID: "ord_mock_" + uuid.NewString(),
		Status:  models.BookingStatusConfirmed,
	}, nil
}

// Cancel always succeeds.
func (p *MockProvider) Cancel(_ context.Context, _, _ string) (*models.CancelResult, error) {
	return &models.CancelResult{Status: models.BookingStatusCancelled}, nil
}

func (p *MockProvider) GetOrder(_ context.Context, orderID string) (*models.OrderSnapshot, error) {
	return &models.OrderSnapshot{ID: orderID, Status: models.BookingStatusConfirmed}, nil
}
