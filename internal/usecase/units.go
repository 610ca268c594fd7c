package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// quantityPattern matches the first quantity+unit token in a product name,
// e.g. "Arroz Branco 5kg", "Leite 1,5l", "Molho 340 g". Comma and dot both
// work as decimal separators.
var quantityPattern = regexp.MustCompile(`(\d+[.,]?\d*)\s*(g|kg|ml|l)`)

// ExtractUnitQuantity parses the quantity a listing is sold in, converted
// to the base unit (kilogram or liter). Grams and milliliters divide by
// 1000; kilograms and liters pass through. When no quantity token is found,
// or the parsed number is non-positive, it returns 1.0: the listing is
// treated as sold "by the unit" and its price compared at face value. That
// default is a deliberate approximation so heterogeneous name formats
// degrade gracefully instead of failing.
func ExtractUnitQuantity(name string) float64 {
	m := quantityPattern.FindStringSubmatch(strings.ToLower(name))
	if m == nil {
		return 1
	}

	qty, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil || qty <= 0 {
		return 1
	}

	if m[2] == "g" || m[2] == "ml" {
		qty /= 1000
	}
	return qty
}
