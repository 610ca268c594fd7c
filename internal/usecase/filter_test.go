package usecase

import (
	"strings"
	"testing"

	"github.com/pricewatch/backend/internal/domain"
)

func newTestFilter() *CandidateFilter {
	return NewCandidateFilter(FilterConfig{Rules: domain.DefaultMatchRules()})
}

func TestNewCandidateFilter(t *testing.T) {
	t.Run("applies defaults for zero values", func(t *testing.T) {
		f := NewCandidateFilter(FilterConfig{})
		if f.radicalLen != 3 {
			t.Errorf("radicalLen = %d, want 3", f.radicalLen)
		}
		if f.minTokenLen != 3 {
			t.Errorf("minTokenLen = %d, want 3", f.minTokenLen)
		}
	})

	t.Run("normalizes rule terms", func(t *testing.T) {
		f := NewCandidateFilter(FilterConfig{Rules: domain.MatchRules{
			ExcludeUnlessRequested: []string{"Suína"},
		}})
		if len(f.rules.ExcludeUnlessRequested) != 1 || f.rules.ExcludeUnlessRequested[0] != "suina" {
			t.Errorf("rule terms = %v, want [suina]", f.rules.ExcludeUnlessRequested)
		}
	})
}

func TestMatchRadicalCoverage(t *testing.T) {
	f := newTestFilter()
	item := domain.CanonicalItem{ID: 1, Query: "carne moida"}

	t.Run("accepts when every token radical is covered", func(t *testing.T) {
		d := f.Match(item, "Carne Moída Bovina Patinho 500g", 19.9)
		if !d.Accepted {
			t.Errorf("rejected: %s", d.Reason)
		}
	})

	t.Run("tolerates inflected forms via radicals", func(t *testing.T) {
		// "moida" matches "moidas" through the "moi" radical.
		d := f.Match(item, "Carnes Moídas Resfriadas", 15)
		if !d.Accepted {
			t.Errorf("rejected: %s", d.Reason)
		}
	})

	t.Run("rejects when a query token is missing", func(t *testing.T) {
		d := f.Match(item, "Carne Seca Dianteiro", 25)
		if d.Accepted {
			t.Error("accepted a candidate missing the 'moida' component")
		}
		if !strings.Contains(d.Reason, "moida") {
			t.Errorf("reason %q does not name the missing token", d.Reason)
		}
	})

	t.Run("ignores short query tokens", func(t *testing.T) {
		short := domain.CanonicalItem{ID: 2, Query: "pao de forma"}
		d := f.Match(short, "Pão de Forma Tradicional", 8.5)
		if !d.Accepted {
			t.Errorf("rejected: %s", d.Reason)
		}
	})

	t.Run("accepts via alternate phrasing", func(t *testing.T) {
		alt := domain.CanonicalItem{ID: 3, Query: "macarrao espaguete", Alternates: []string{"massa espaguete"}}
		d := f.Match(alt, "Massa Espaguete Grano Duro", 6)
		if !d.Accepted {
			t.Errorf("rejected: %s", d.Reason)
		}
	})
}

func TestMatchExclusionRules(t *testing.T) {
	f := newTestFilter()

	t.Run("rejects unrequested category", func(t *testing.T) {
		// An air freshener sharing the word the query asked for.
		item := domain.CanonicalItem{ID: 1, Query: "algodao"}
		d := f.Match(item, "Aromatizante Algodão Fresh 360ml", 8)
		if d.Accepted {
			t.Error("accepted an air freshener for a raw cotton query")
		}
		if !strings.Contains(d.Reason, "aromatizante") {
			t.Errorf("reason %q does not name the blocked term", d.Reason)
		}
	})

	t.Run("rejects pork cut for generic meat query", func(t *testing.T) {
		item := domain.CanonicalItem{ID: 2, Query: "bisteca"}
		d := f.Match(item, "Bisteca Suína Congelada kg", 14.9)
		if d.Accepted {
			t.Error("accepted a pork cut the query did not ask for")
		}
	})

	t.Run("allows the category when requested", func(t *testing.T) {
		item := domain.CanonicalItem{ID: 3, Query: "bisteca suina"}
		d := f.Match(item, "Bisteca Suína Congelada kg", 14.9)
		if !d.Accepted {
			t.Errorf("rejected: %s", d.Reason)
		}
	})

	t.Run("rejects oil for a vegetable query", func(t *testing.T) {
		item := domain.CanonicalItem{ID: 4, Query: "soja graos"}
		d := f.Match(item, "Óleo de Soja Liza 900ml graos", 7.5)
		if d.Accepted {
			t.Error("accepted a cooking oil for a vegetable query")
		}
	})
}

func TestMatchVariantConsistency(t *testing.T) {
	f := newTestFilter()

	t.Run("requires the queried variant", func(t *testing.T) {
		item := domain.CanonicalItem{ID: 1, Query: "feijao carioca"}
		d := f.Match(item, "Feijão Preto Camil Tipo 1 Cario", 9)
		if d.Accepted {
			t.Error("accepted the wrong bean variety")
		}
	})

	t.Run("accepts the matching variant", func(t *testing.T) {
		item := domain.CanonicalItem{ID: 2, Query: "feijao carioca"}
		d := f.Match(item, "Feijão Carioca Camil Tipo 1 1kg", 9)
		if !d.Accepted {
			t.Errorf("rejected: %s", d.Reason)
		}
	})

	t.Run("no variant in query places no constraint", func(t *testing.T) {
		item := domain.CanonicalItem{ID: 3, Query: "feijao"}
		d := f.Match(item, "Feijão Preto Camil 1kg", 9)
		if !d.Accepted {
			t.Errorf("rejected: %s", d.Reason)
		}
	})
}

func TestMatchPrice(t *testing.T) {
	f := newTestFilter()
	item := domain.CanonicalItem{ID: 1, Query: "arroz"}

	t.Run("rejects zero price regardless of name", func(t *testing.T) {
		if f.IsMatch(item, "Arroz Branco 5kg", 0) {
			t.Error("accepted a zero-priced candidate")
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		if f.IsMatch(item, "Arroz Branco 5kg", -3) {
			t.Error("accepted a negative-priced candidate")
		}
	})

	t.Run("never fails on malformed input", func(t *testing.T) {
		d := f.Match(domain.CanonicalItem{}, "", 10)
		if d.Accepted {
			t.Error("accepted an empty item and candidate")
		}
	})
}
