package domain

import "errors"

var (
	// ErrMalformedBasketLine is returned when a shopping-list line has no
	// usable query phrasing. This is a configuration error and aborts the
	// run; sparse or missing price data never does.
	ErrMalformedBasketLine = errors.New("malformed shopping list line")

	// ErrEmptyBasket is returned when the shopping list contains no items.
	ErrEmptyBasket = errors.New("shopping list is empty")

	// ErrUnknownMode is returned for an aggregation mode that is neither
	// all-coverage nor common-basket.
	ErrUnknownMode = errors.New("unknown aggregation mode")

	// ErrNoRetailers is returned when the engine is built without any
	// registered retailer.
	ErrNoRetailers = errors.New("no retailers registered")

	// ErrNoComparison is returned when the latest comparison is requested
	// before any run has completed.
	ErrNoComparison = errors.New("no comparison computed yet")
)
