package domain

// RawListing is a scraped candidate product as delivered by a retailer's
// scraper: free-text name plus the displayed price. It may be mismatched,
// zero-priced, or quoted for a different quantity than the canonical item.
// Never mutated after creation.
type RawListing struct {
	RetailerID   string  `json:"-"`
	ItemID       int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	RawUnitPrice float64 `json:"unit_price,omitempty"`
}

// NormalizedListing is a RawListing that survived price normalization:
// Price > 0, UnitQuantity > 0 and UnitPrice == Price / UnitQuantity.
type NormalizedListing struct {
	RetailerID   string  `json:"-"`
	ItemID       int     `json:"-"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	UnitQuantity float64 `json:"unit_quantity"`
	UnitPrice    float64 `json:"unit_price"`
}

// MatchDecision records whether a candidate was accepted for a canonical
// item and why. Produced by the candidate filter for auditability.
type MatchDecision struct {
	Accepted bool
	Reason   string
}
