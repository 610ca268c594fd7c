package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pricewatch/backend/internal/domain"
	"github.com/pricewatch/backend/internal/metrics"
)

// ComparisonService orchestrates one reconciliation run: load the basket,
// gather every retailer's raw listings, run the engine, persist the
// artifact, and keep the latest result available for delivery.
type ComparisonService struct {
	basket domain.BasketSource
	prices domain.ListingSource
	writer domain.ComparisonWriter
	engine *Engine
	logger *zap.Logger

	mu     sync.RWMutex
	latest *domain.Comparison
}

// NewComparisonService creates the orchestrator. writer may be nil when
// the caller only serves the artifact and never persists it.
func NewComparisonService(
	basket domain.BasketSource,
	prices domain.ListingSource,
	writer domain.ComparisonWriter,
	engine *Engine,
	logger *zap.Logger,
) *ComparisonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComparisonService{
		basket: basket,
		prices: prices,
		writer: writer,
		engine: engine,
		logger: logger,
	}
}

// Refresh reloads all inputs and recomputes the comparison. Sparse data
// (missing price files, unmatched items) never fails a refresh; a
// malformed shopping list does, since that violates the input contract.
func (s *ComparisonService) Refresh(ctx context.Context) (*domain.Comparison, error) {
	items, err := s.basket.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading shopping list: %w", err)
	}

	listings := make(map[string][]domain.RawListing, len(s.engine.Retailers()))
	for _, r := range s.engine.Retailers() {
		ls, err := s.prices.Listings(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("loading listings for %s: %w", r.ID, err)
		}
		listings[r.ID] = ls
		s.logger.Debug("listings loaded", zap.String("retailer", r.ID), zap.Int("count", len(ls)))
	}

	cmp := s.engine.Run(items, listings)

	if s.writer != nil {
		if err := s.writer.Write(ctx, cmp); err != nil {
			return nil, fmt.Errorf("writing comparison artifact: %w", err)
		}
	}

	metrics.RecordComparison(cmp)

	s.mu.Lock()
	s.latest = cmp
	s.mu.Unlock()

	return cmp, nil
}

// Latest returns the most recent comparison, or ErrNoComparison before
// the first successful refresh.
func (s *ComparisonService) Latest() (*domain.Comparison, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return nil, domain.ErrNoComparison
	}
	return s.latest, nil
}
