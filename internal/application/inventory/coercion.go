package inventory

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var maxStock = decimal.NewFromInt(math.MaxInt)

// ParseMRP convierte el texto ingresado a precio. Vacío, inválido, negativo o fuera de rango -> 0.
func ParseMRP(raw string) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return 0
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

// ParseStock convierte el texto ingresado a cantidad entera (trunca decimales).
// Vacío, inválido, negativo o mayor que math.MaxInt -> 0.
func ParseStock(raw string) int {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return 0
	}
	d = d.Truncate(0)
	if d.GreaterThan(maxStock) {
		return 0
	}
	return int(d.IntPart())
}
