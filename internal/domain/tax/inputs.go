package tax

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RawInputs valores crudos del formulario tal como llegan de la capa de presentación.
// Los campos que no aplican al escenario activo se ignoran sin validarse.
type RawInputs struct {
	TotalSales     string `json:"totalSales"`
	DiscountRate   string `json:"discountRate"`
	DiscountAmount string `json:"discountAmount"`
	TotalPurchase  string `json:"totalPurchase"`
	TotalPeople    string `json:"totalPeople"`
	CardHolders    string `json:"cardHolders"`
	AddedVat       string `json:"addedVat"`
	WithholdingTax string `json:"withholdingTax"`
}

// numericPrefix reconoce el prefijo numérico más largo de un texto (misma regla que parseFloat).
var numericPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// maxExponent rango de exponentes decimales representable en float64 (con margen para subnormales).
const maxExponent = 350

// parseLeading extrae el número al inicio del texto. ok=false si no hay número finito.
func parseLeading(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	m := numericPrefix.FindString(s)
	if m == "" {
		return decimal.Zero, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	if f == 0 {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(m)
	if err != nil || d.Exponent() < -maxExponent || d.Exponent() > maxExponent {
		// "1e-300000000" o "0.5e400" dejarían un exponente imposible de reescalar.
		return decimal.NewFromFloat(f), true
	}
	return d, true
}

// ParseAmount convierte un valor crudo en monto. Todo lo que no sea un número finito vale 0.
func ParseAmount(raw string) decimal.Decimal {
	d, _ := parseLeading(raw)
	return d
}

// ParsePeople convierte la cantidad de personas: entero (floor), mínimo 1.
// Un valor no numérico vale 1 para no dividir entre cero.
func ParsePeople(raw string) int64 {
	d, ok := parseLeading(raw)
	if !ok {
		return 1
	}
	n := floorInt(d)
	if n < 1 {
		return 1
	}
	return n
}

// ParseCardHolders convierte la cantidad de titulares de tarjeta: entero (floor), mínimo 0.
func ParseCardHolders(raw string) int64 {
	n := floorInt(ParseAmount(raw))
	if n < 0 {
		return 0
	}
	return n
}

func floorInt(d decimal.Decimal) int64 {
	f := d.Floor()
	if f.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return math.MaxInt32
	}
	if f.LessThan(decimal.NewFromInt(math.MinInt32)) {
		return math.MinInt32
	}
	return f.IntPart()
}
