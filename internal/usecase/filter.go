package usecase

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pricewatch/backend/internal/domain"
)

const (
	defaultRadicalLength  = 3
	defaultMinTokenLength = 3
)

// FilterConfig holds configuration for the candidate filter.
type FilterConfig struct {
	RadicalLength  int
	MinTokenLength int
	Rules          domain.MatchRules
	Logger         *zap.Logger
}

// CandidateFilter decides whether a scraped candidate genuinely matches a
// canonical item. Pure and total: malformed input yields a rejection,
// never an error.
type CandidateFilter struct {
	radicalLen  int
	minTokenLen int
	rules       domain.MatchRules
	logger      *zap.Logger
}

// NewCandidateFilter creates a filter with the given configuration,
// falling back to the defaults for zero values. Rule terms are normalized
// once here so Match compares normalized text on both sides.
func NewCandidateFilter(cfg FilterConfig) *CandidateFilter {
	radicalLen := cfg.RadicalLength
	if radicalLen <= 0 {
		radicalLen = defaultRadicalLength
	}

	minTokenLen := cfg.MinTokenLength
	if minTokenLen <= 0 {
		minTokenLen = defaultMinTokenLength
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rules := domain.MatchRules{
		ExcludeUnlessRequested: make([]string, 0, len(cfg.Rules.ExcludeUnlessRequested)),
		VariantGroups:          make([][]string, 0, len(cfg.Rules.VariantGroups)),
	}
	for _, term := range cfg.Rules.ExcludeUnlessRequested {
		if t := Normalize(term); t != "" {
			rules.ExcludeUnlessRequested = append(rules.ExcludeUnlessRequested, t)
		}
	}
	for _, group := range cfg.Rules.VariantGroups {
		norm := make([]string, 0, len(group))
		for _, term := range group {
			if t := Normalize(term); t != "" {
				norm = append(norm, t)
			}
		}
		if len(norm) > 0 {
			rules.VariantGroups = append(rules.VariantGroups, norm)
		}
	}

	return &CandidateFilter{
		radicalLen:  radicalLen,
		minTokenLen: minTokenLen,
		rules:       rules,
		logger:      logger,
	}
}

// Match decides acceptance of a candidate listing for a canonical item.
// A candidate is accepted when any of the item's phrasings accepts it;
// the returned reason traces the acceptance or the last rejection.
func (f *CandidateFilter) Match(item domain.CanonicalItem, candidateName string, price float64) domain.MatchDecision {
	if price <= 0 {
		return domain.MatchDecision{Reason: "non-positive price"}
	}

	name := Normalize(candidateName)
	if name == "" {
		return domain.MatchDecision{Reason: "empty candidate name"}
	}

	decision := domain.MatchDecision{Reason: "no query phrasing"}
	for _, phrasing := range item.Phrasings() {
		query := Normalize(phrasing)
		if query == "" {
			continue
		}

		decision = f.matchPhrasing(query, name)
		if decision.Accepted {
			break
		}
	}

	f.logger.Debug("match decision",
		zap.Int("item_id", item.ID),
		zap.String("candidate", candidateName),
		zap.Bool("accepted", decision.Accepted),
		zap.String("reason", decision.Reason),
	)
	return decision
}

// IsMatch is the boolean form of Match.
func (f *CandidateFilter) IsMatch(item domain.CanonicalItem, candidateName string, price float64) bool {
	return f.Match(item, candidateName, price).Accepted
}

func (f *CandidateFilter) matchPhrasing(query, name string) domain.MatchDecision {
	// Radical coverage: every query token of useful length must occur in
	// the candidate by its leading radical, which tolerates plural and
	// inflected forms while still requiring each semantic component.
	covered := 0
	for _, token := range strings.Fields(query) {
		runes := []rune(token)
		if len(runes) < f.minTokenLen {
			continue
		}
		radical := token
		if len(runes) > f.radicalLen {
			radical = string(runes[:f.radicalLen])
		}
		if !strings.Contains(name, radical) {
			return domain.MatchDecision{Reason: fmt.Sprintf("query token %q not covered", token)}
		}
		covered++
	}
	if covered == 0 {
		return domain.MatchDecision{Reason: "no usable query tokens"}
	}

	for _, term := range f.rules.ExcludeUnlessRequested {
		if !strings.Contains(query, term) && strings.Contains(name, term) {
			return domain.MatchDecision{Reason: fmt.Sprintf("blocked term %q not requested", term)}
		}
	}

	for _, group := range f.rules.VariantGroups {
		var wanted []string
		for _, term := range group {
			if strings.Contains(query, term) {
				wanted = append(wanted, term)
			}
		}
		if len(wanted) == 0 {
			continue
		}
		found := false
		for _, term := range wanted {
			if strings.Contains(name, term) {
				found = true
				break
			}
		}
		if !found {
			return domain.MatchDecision{Reason: fmt.Sprintf("variant mismatch, query wants %q", strings.Join(wanted, " "))}
		}
	}

	return domain.MatchDecision{Accepted: true, Reason: "all query tokens covered"}
}
