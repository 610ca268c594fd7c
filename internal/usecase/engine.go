package usecase

import (
	"go.uber.org/zap"

	"github.com/pricewatch/backend/internal/domain"
)

// EngineConfig holds configuration for the reconciliation engine.
type EngineConfig struct {
	Retailers      []domain.Retailer
	Mode           domain.Mode
	RadicalLength  int
	MinTokenLength int
	Rules          domain.MatchRules
	Logger         *zap.Logger
}

// Engine is the cross-retailer reconciliation and ranking engine: a pure,
// synchronous batch computation over already-collected scraper output.
// Each run is a function of its inputs only; no state survives between
// runs.
type Engine struct {
	retailers []domain.Retailer
	mode      domain.Mode
	filter    *CandidateFilter
	logger    *zap.Logger
}

// NewEngine creates an engine for the registered retailers. The retailer
// order is the registration order used for every tie-break.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if len(cfg.Retailers) == 0 {
		return nil, domain.ErrNoRetailers
	}

	mode := cfg.Mode
	if mode == "" {
		mode = domain.ModeAllCoverage
	}
	if _, err := domain.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	filter := NewCandidateFilter(FilterConfig{
		RadicalLength:  cfg.RadicalLength,
		MinTokenLength: cfg.MinTokenLength,
		Rules:          cfg.Rules,
		Logger:         logger,
	})

	return &Engine{
		retailers: cfg.Retailers,
		mode:      mode,
		filter:    filter,
		logger:    logger,
	}, nil
}

// Mode reports the configured aggregation mode.
func (e *Engine) Mode() domain.Mode {
	return e.mode
}

// Retailers reports the registered retailers in registration order.
func (e *Engine) Retailers() []domain.Retailer {
	return e.retailers
}
