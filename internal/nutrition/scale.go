package nutrition

import (
	"github.com/shopspring/decimal"
)

// Scale resolves a library profile to the macros of qty units of its basis.
// The divisor is fixed by the basis (100 for per-100g, 1 for per-unit), and each
// field is rounded to one decimal place.
func Scale(item LibraryItem, qty float64) Macros {
	qty = finite(qty)
	if qty == 0 {
		return Macros{}
	}
	ratio := qty / item.Basis.Divisor()
	return Macros{
		Carbs:   round1(item.Carbs * ratio),
		Protein: round1(item.Protein * ratio),
		Fat:     round1(item.Fat * ratio),
		Fiber:   round1(item.Fiber * ratio),
	}
}

// round1 rounds half away from zero on the decimal representation, so 0.45
// becomes 0.5 rather than falling to the binary neighbour below it.
func round1(v float64) float64 {
	v = finite(v)
	out, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return out
}
