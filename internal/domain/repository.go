package domain

import "context"

// BasketSource loads the canonical shopping list.
type BasketSource interface {
	Load(ctx context.Context) ([]CanonicalItem, error)
}

// ListingSource provides the raw scraped listings for one retailer. A
// retailer with no output file contributes an empty slice, not an error.
type ListingSource interface {
	Listings(ctx context.Context, retailerID string) ([]RawListing, error)
}

// ComparisonWriter persists the output artifact for the presentation
// layer.
type ComparisonWriter interface {
	Write(ctx context.Context, c *Comparison) error
}
