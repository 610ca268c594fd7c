package pricestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pricewatch/backend/internal/domain"
)

// Store reads per-retailer raw listing files written by the external
// scrapers (prices_<retailer>.json) and persists the comparison artifact
// for the presentation layer.
type Store struct {
	dir     string
	outPath string
	logger  *zap.Logger
}

// NewStore creates a store over the given prices directory; outPath is
// where Write places the comparison artifact.
func NewStore(dir, outPath string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, outPath: outPath, logger: logger}
}

// price unmarshals a displayed price leniently: a JSON number, or a text
// price like "R$ 12,34". Text that cannot be parsed coerces to 0, which
// the engine drops at the normalization boundary; malformed prices are
// sparse data, never an error.
type price float64

var nonPriceChars = regexp.MustCompile(`[^\d.]`)

func (p *price) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = price(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*p = 0
		return nil
	}

	s = strings.ReplaceAll(s, ",", ".")
	s = nonPriceChars.ReplaceAllString(s, "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = price(f)
	return nil
}

type listingRecord struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Price     price  `json:"price"`
	UnitPrice price  `json:"unit_price"`
}

// Listings loads one retailer's raw listings. A missing file is an empty
// set, not an error: that retailer simply found nothing this run. A file
// that fails to parse is treated the same way, with a warning.
func (s *Store) Listings(ctx context.Context, retailerID string) ([]domain.RawListing, error) {
	path := filepath.Join(s.dir, "prices_"+retailerID+".json")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []listingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("unparseable price file, treating as empty",
			zap.String("path", path), zap.Error(err))
		return nil, nil
	}

	listings := make([]domain.RawListing, 0, len(records))
	for _, rec := range records {
		listings = append(listings, domain.RawListing{
			RetailerID:   retailerID,
			ItemID:       rec.ID,
			Name:         rec.Name,
			Price:        float64(rec.Price),
			RawUnitPrice: float64(rec.UnitPrice),
		})
	}
	return listings, nil
}

// Write persists the comparison artifact as pretty-printed JSON, creating
// the output directory if needed.
func (s *Store) Write(ctx context.Context, c *domain.Comparison) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding comparison: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.outPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(s.outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.outPath, err)
	}

	s.logger.Info("comparison artifact written", zap.String("path", s.outPath))
	return nil
}
