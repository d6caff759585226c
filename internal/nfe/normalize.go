package nfe

import (
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// NormalizeWeight converts a quantity in the given commercial unit to
// kilograms. Unknown units are treated as kilograms, matching how the
// documents we receive use custom unit labels for goods sold by weight.
func NormalizeWeight(quantity decimal.Decimal, unit string) decimal.Decimal {
	switch strings.ToUpper(strings.TrimSpace(unit)) {
	case "KG", "KILO", "QUILOGRAMA":
		return quantity
	case "G", "GRAMA", "GRAMAS":
		return quantity.Div(thousand)
	case "T", "TON", "TONELADA":
		return quantity.Mul(thousand)
	}

	return quantity
}
