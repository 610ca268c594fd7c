package domain

// CanonicalItem is one entry of the fixed shopping list to be priced at
// every retailer. The id is the 1-based line position in the source list.
// Query is the primary search phrasing; Alternates hold additional
// acceptable phrasings for the same item (pipe-delimited in the source).
type CanonicalItem struct {
	ID         int
	Query      string
	Alternates []string
}

// Phrasings returns the primary query followed by the alternates, in
// source order.
func (i CanonicalItem) Phrasings() []string {
	out := make([]string, 0, 1+len(i.Alternates))
	out = append(out, i.Query)
	out = append(out, i.Alternates...)
	return out
}

// Retailer identifies one scraped store. Registration order (the order
// retailers appear in configuration) is the tie-break order everywhere a
// tie between retailers must be resolved.
type Retailer struct {
	ID   string `mapstructure:"id" json:"id"`
	Name string `mapstructure:"name" json:"name"`
}
