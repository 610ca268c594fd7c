package domain

import "time"

// Mode selects how rows contribute to retailer totals.
type Mode string

const (
	// ModeAllCoverage keeps a row once any retailer has a representative
	// listing; each retailer's total sums whatever it matched, so baskets
	// may differ in size across retailers.
	ModeAllCoverage Mode = "all-coverage"

	// ModeCommonBasket keeps a row only when every requested retailer has
	// a representative listing, so every total covers the identical set of
	// items.
	ModeCommonBasket Mode = "common-basket"
)

// ParseMode validates a mode string from configuration.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAllCoverage, ModeCommonBasket:
		return Mode(s), nil
	}
	return "", ErrUnknownMode
}

// ComparisonRow holds, for one canonical item, each retailer's
// representative listing (absent retailers are simply missing from the
// map) and the retailer with the lowest unit price among those present.
type ComparisonRow struct {
	ItemID      int                          `json:"id"`
	Query       string                       `json:"query"`
	PerRetailer map[string]NormalizedListing `json:"retailers"`
	Cheapest    string                       `json:"cheapest_retailer"`
}

// RetailerTotals is the per-retailer fold over the comparison rows.
// SumUnitPrice only includes rows where the retailer has a representative
// listing; ItemsFoundRaw counts raw scraped listings before filtering.
type RetailerTotals struct {
	RetailerID    string  `json:"retailer_id"`
	RetailerName  string  `json:"retailer_name"`
	SumUnitPrice  float64 `json:"total_unit_price"`
	ItemsCounted  int     `json:"items_counted"`
	ItemsFoundRaw int     `json:"items_found_raw"`
}

// Comparison is the output artifact consumed by the presentation layer.
// Totals are ranked ascending by SumUnitPrice; Rows keep shopping-list
// order. Field names are stable: the presentation layer indexes by
// retailer id and row position.
type Comparison struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Mode        Mode             `json:"mode"`
	BasketSize  int              `json:"basket_size"`
	Totals      []RetailerTotals `json:"totals"`
	Rows        []ComparisonRow  `json:"products"`
}
