package usecase

import (
	"math"
	"testing"

	"github.com/pricewatch/backend/internal/domain"
)

func newTestEngine(t *testing.T, mode domain.Mode, retailers ...domain.Retailer) *Engine {
	t.Helper()
	if len(retailers) == 0 {
		retailers = []domain.Retailer{
			{ID: "goodbom", Name: "GoodBom"},
			{ID: "tenda", Name: "Tenda"},
		}
	}
	e, err := NewEngine(EngineConfig{
		Retailers: retailers,
		Mode:      mode,
		Rules:     domain.DefaultMatchRules(),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngine(t *testing.T) {
	t.Run("requires at least one retailer", func(t *testing.T) {
		_, err := NewEngine(EngineConfig{})
		if err != domain.ErrNoRetailers {
			t.Errorf("error = %v, want ErrNoRetailers", err)
		}
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		_, err := NewEngine(EngineConfig{
			Retailers: []domain.Retailer{{ID: "x", Name: "X"}},
			Mode:      domain.Mode("bogus"),
		})
		if err != domain.ErrUnknownMode {
			t.Errorf("error = %v, want ErrUnknownMode", err)
		}
	})

	t.Run("defaults to all-coverage", func(t *testing.T) {
		e := newTestEngine(t, "")
		if e.Mode() != domain.ModeAllCoverage {
			t.Errorf("mode = %v, want all-coverage", e.Mode())
		}
	})
}

func TestSelectBest(t *testing.T) {
	e := newTestEngine(t, domain.ModeAllCoverage)
	item := domain.CanonicalItem{ID: 1, Query: "arroz"}

	t.Run("picks the lowest unit price", func(t *testing.T) {
		raw := []domain.RawListing{
			{ItemID: 1, Name: "Arroz Branco 1kg", Price: 6},
			{ItemID: 1, Name: "Arroz Branco 5kg", Price: 20}, // 4.00/kg
			{ItemID: 1, Name: "Arroz Parboilizado 1kg", Price: 5},
		}
		best, ok := e.SelectBest(item, "goodbom", raw)
		if !ok {
			t.Fatal("expected a representative listing")
		}
		if best.Name != "Arroz Branco 5kg" {
			t.Errorf("selected %q, want the 5kg listing", best.Name)
		}
		if math.Abs(best.UnitPrice-4) > 1e-9 {
			t.Errorf("unit price = %v, want 4", best.UnitPrice)
		}
		if best.RetailerID != "goodbom" {
			t.Errorf("retailer = %q, want goodbom", best.RetailerID)
		}
	})

	t.Run("unit price equals price over quantity", func(t *testing.T) {
		raw := []domain.RawListing{{ItemID: 1, Name: "Arroz 2kg", Price: 9}}
		best, ok := e.SelectBest(item, "goodbom", raw)
		if !ok {
			t.Fatal("expected a representative listing")
		}
		if math.Abs(best.UnitPrice-best.Price/best.UnitQuantity) > 1e-9 {
			t.Errorf("UnitPrice %v != Price/UnitQuantity %v", best.UnitPrice, best.Price/best.UnitQuantity)
		}
		if best.UnitQuantity <= 0 {
			t.Errorf("UnitQuantity = %v, want > 0", best.UnitQuantity)
		}
	})

	t.Run("tie broken by first-seen order", func(t *testing.T) {
		raw := []domain.RawListing{
			{ItemID: 1, Name: "Arroz Prato Fino 1kg", Price: 5},
			{ItemID: 1, Name: "Arroz Camil 1kg", Price: 5},
		}
		for run := 0; run < 5; run++ {
			best, ok := e.SelectBest(item, "goodbom", raw)
			if !ok {
				t.Fatal("expected a representative listing")
			}
			if best.Name != "Arroz Prato Fino 1kg" {
				t.Errorf("run %d selected %q, want the first-seen listing", run, best.Name)
			}
		}
	})

	t.Run("drops non-positive prices before filtering", func(t *testing.T) {
		raw := []domain.RawListing{
			{ItemID: 1, Name: "Arroz Branco 1kg", Price: 0},
			{ItemID: 1, Name: "Arroz Branco 1kg", Price: -2},
		}
		if _, ok := e.SelectBest(item, "goodbom", raw); ok {
			t.Error("selected a listing with non-positive price")
		}
	})

	t.Run("absent when nothing matches", func(t *testing.T) {
		raw := []domain.RawListing{
			{ItemID: 1, Name: "Feijão Carioca 1kg", Price: 8},
		}
		if _, ok := e.SelectBest(item, "goodbom", raw); ok {
			t.Error("selected a non-matching listing")
		}
	})

	t.Run("ignores listings for other items", func(t *testing.T) {
		raw := []domain.RawListing{
			{ItemID: 2, Name: "Arroz Branco 1kg", Price: 6},
		}
		if _, ok := e.SelectBest(item, "goodbom", raw); ok {
			t.Error("selected a listing scraped for a different item")
		}
	})

	t.Run("trusts scraper unit price when present", func(t *testing.T) {
		raw := []domain.RawListing{
			{ItemID: 1, Name: "Arroz Branco Embalagem Econômica", Price: 18, RawUnitPrice: 3.6},
		}
		best, ok := e.SelectBest(item, "goodbom", raw)
		if !ok {
			t.Fatal("expected a representative listing")
		}
		if math.Abs(best.UnitPrice-3.6) > 1e-9 {
			t.Errorf("unit price = %v, want 3.6", best.UnitPrice)
		}
		if math.Abs(best.Price/best.UnitQuantity-best.UnitPrice) > 1e-9 {
			t.Error("derived quantity breaks the unit price invariant")
		}
	})
}
