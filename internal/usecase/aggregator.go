package usecase

import (
	"sync"

	"github.com/pricewatch/backend/internal/domain"
)

// BuildRows assembles one comparison row per canonical item, in shopping
// list order. Items are reconciled concurrently: rows have no cross-item
// dependency and each goroutine writes only its own slot. Rows where no
// retailer has a representative listing are dropped, so downstream totals
// never average over empty rows; in common-basket mode a row is also
// dropped unless every registered retailer is present.
func (e *Engine) BuildRows(items []domain.CanonicalItem, listings map[string][]domain.RawListing) []domain.ComparisonRow {
	rows := make([]*domain.ComparisonRow, len(items))

	var wg sync.WaitGroup
	for idx, item := range items {
		wg.Add(1)
		go func(idx int, item domain.CanonicalItem) {
			defer wg.Done()
			rows[idx] = e.buildRow(item, listings)
		}(idx, item)
	}
	wg.Wait()

	out := make([]domain.ComparisonRow, 0, len(items))
	for _, row := range rows {
		if row != nil {
			out = append(out, *row)
		}
	}
	return out
}

func (e *Engine) buildRow(item domain.CanonicalItem, listings map[string][]domain.RawListing) *domain.ComparisonRow {
	per := make(map[string]domain.NormalizedListing, len(e.retailers))
	for _, r := range e.retailers {
		if best, ok := e.SelectBest(item, r.ID, listings[r.ID]); ok {
			per[r.ID] = best
		}
	}

	if len(per) == 0 {
		return nil
	}
	if e.mode == domain.ModeCommonBasket && len(per) < len(e.retailers) {
		return nil
	}

	// Cheapest retailer for the row, computed only over retailers present;
	// iteration in registration order makes the tie-break deterministic.
	cheapest := ""
	var lowest float64
	for _, r := range e.retailers {
		listing, ok := per[r.ID]
		if !ok {
			continue
		}
		if cheapest == "" || listing.UnitPrice < lowest {
			cheapest = r.ID
			lowest = listing.UnitPrice
		}
	}

	return &domain.ComparisonRow{
		ItemID:      item.ID,
		Query:       item.Query,
		PerRetailer: per,
		Cheapest:    cheapest,
	}
}
