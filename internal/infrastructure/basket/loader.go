package basket

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pricewatch/backend/internal/domain"
)

// unitTokenPattern strips bare unit words from a query phrasing before it
// is used for matching ("arroz kg" -> "arroz"). Quantities attached to a
// number ("5kg") are left alone; the unit extractor handles those on the
// candidate side.
var unitTokenPattern = regexp.MustCompile(`(?i)\b(kg|g)\b`)

// Loader reads the canonical shopping list from a plain text file: one
// item per line, `#` comments and blank lines ignored, `|` separating
// alternative phrasings. The 1-based position among item lines is the
// canonical item id.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given shopping list file.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the shopping list. A line with no usable phrasing is a
// configuration error and aborts the load; this is the only input class
// that fails a run.
func (l *Loader) Load(ctx context.Context) ([]domain.CanonicalItem, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading shopping list %s: %w", l.path, err)
	}

	var items []domain.CanonicalItem
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		id := len(items) + 1
		var phrasings []string
		for _, part := range strings.Split(line, "|") {
			part = strings.TrimSpace(unitTokenPattern.ReplaceAllString(part, " "))
			part = strings.Join(strings.Fields(part), " ")
			if part != "" {
				phrasings = append(phrasings, part)
			}
		}
		if len(phrasings) == 0 {
			return nil, fmt.Errorf("%s item %d: %w", l.path, id, domain.ErrMalformedBasketLine)
		}

		items = append(items, domain.CanonicalItem{
			ID:         id,
			Query:      phrasings[0],
			Alternates: phrasings[1:],
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", l.path, domain.ErrEmptyBasket)
	}
	return items, nil
}
