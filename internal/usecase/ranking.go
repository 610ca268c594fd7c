package usecase

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/pricewatch/backend/internal/domain"
)

// Rank folds the comparison rows into per-retailer totals and sorts them
// ascending by total unit price, so the cheapest retailer ranks first.
// The fold is a plain associative sum, one bucket per retailer; the sort
// is stable over registration order, which resolves ties. rawCounts
// carries the number of raw scraped listings per retailer, reported as
// coverage metadata.
func (e *Engine) Rank(rows []domain.ComparisonRow, rawCounts map[string]int) []domain.RetailerTotals {
	totals := make([]domain.RetailerTotals, 0, len(e.retailers))
	for _, r := range e.retailers {
		t := domain.RetailerTotals{
			RetailerID:    r.ID,
			RetailerName:  r.Name,
			ItemsFoundRaw: rawCounts[r.ID],
		}
		for _, row := range rows {
			if listing, ok := row.PerRetailer[r.ID]; ok {
				t.SumUnitPrice += listing.UnitPrice
				t.ItemsCounted++
			}
		}
		totals = append(totals, t)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].SumUnitPrice < totals[j].SumUnitPrice
	})
	return totals
}

// Run reconciles and ranks one batch of scraper output: the pure function
// the rest of the system is built around. listings maps retailer id to
// that retailer's raw listings for every item; a missing or empty entry
// means the retailer found nothing, which is sparse data, not an error.
func (e *Engine) Run(items []domain.CanonicalItem, listings map[string][]domain.RawListing) *domain.Comparison {
	rows := e.BuildRows(items, listings)

	rawCounts := make(map[string]int, len(listings))
	for id, ls := range listings {
		rawCounts[id] = len(ls)
	}
	totals := e.Rank(rows, rawCounts)

	e.logger.Info("comparison computed",
		zap.Int("basket_size", len(items)),
		zap.Int("rows", len(rows)),
		zap.String("mode", string(e.mode)),
	)

	return &domain.Comparison{
		GeneratedAt: time.Now(),
		Mode:        e.mode,
		BasketSize:  len(items),
		Totals:      totals,
		Rows:        rows,
	}
}
