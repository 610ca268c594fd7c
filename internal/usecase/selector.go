package usecase

import "github.com/pricewatch/backend/internal/domain"

// normalizeListing derives the comparable per-unit price for a raw
// listing. Listings without a positive price die here, before filtering.
// When the scraper already computed a unit price, it is trusted and the
// quantity derived from it, keeping UnitPrice == Price / UnitQuantity;
// otherwise the quantity is parsed out of the product name.
func normalizeListing(raw domain.RawListing) (domain.NormalizedListing, bool) {
	if raw.Price <= 0 {
		return domain.NormalizedListing{}, false
	}

	qty := ExtractUnitQuantity(raw.Name)
	unitPrice := raw.Price / qty
	if raw.RawUnitPrice > 0 {
		unitPrice = raw.RawUnitPrice
		qty = raw.Price / raw.RawUnitPrice
	}

	return domain.NormalizedListing{
		RetailerID:   raw.RetailerID,
		ItemID:       raw.ItemID,
		Name:         raw.Name,
		Price:        raw.Price,
		UnitQuantity: qty,
		UnitPrice:    unitPrice,
	}, true
}

// SelectBest picks the representative listing for one (canonical item,
// retailer) pair: the accepted candidate with the lowest unit price.
// The strict-less comparison keeps the first-seen candidate on ties, so
// selection is deterministic for identical input order. Returns ok=false
// when no candidate survives normalization and filtering; absence is not
// an error.
func (e *Engine) SelectBest(item domain.CanonicalItem, retailerID string, raw []domain.RawListing) (domain.NormalizedListing, bool) {
	var best domain.NormalizedListing
	found := false

	for _, rl := range raw {
		if rl.ItemID != item.ID {
			continue
		}

		listing, ok := normalizeListing(rl)
		if !ok {
			continue
		}

		if !e.filter.Match(item, rl.Name, rl.Price).Accepted {
			continue
		}

		if !found || listing.UnitPrice < best.UnitPrice {
			best = listing
			best.RetailerID = retailerID
			found = true
		}
	}

	return best, found
}
