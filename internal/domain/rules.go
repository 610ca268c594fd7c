package domain

// MatchRules is the declarative rule table shared by every retailer.
// Both lists are reactively grown configuration, not inferred at runtime:
// false positives from vocabulary the rules do not cover yet are a known
// limitation and are fixed by adding terms, never by guessing.
type MatchRules struct {
	// ExcludeUnlessRequested rejects a candidate containing one of these
	// terms when no query phrasing mentions it. Prevents whole-category
	// false positives, e.g. a pork cut surfacing for a beef query, a
	// cooking oil for a vegetable, an air freshener for raw cotton.
	ExcludeUnlessRequested []string `mapstructure:"exclude_unless_requested"`

	// VariantGroups are closed sets of distinguishing attributes (bean
	// varieties, rice types). When the query names a variant from a group,
	// the candidate must name that same variant or be rejected.
	VariantGroups [][]string `mapstructure:"variant_groups"`
}

// DefaultMatchRules returns the seed rule table observed in production
// scrapers.
func DefaultMatchRules() MatchRules {
	return MatchRules{
		ExcludeUnlessRequested: []string{"suina", "oleo", "aromatizante"},
		VariantGroups: [][]string{
			{"carioca", "preto", "branco", "fradinho"},
			{"integral", "parboilizado"},
		},
	}
}
