// Package format convierte montos en texto para la capa de presentación:
// pesos filipinos con locale en-PH y al menos dos decimales.
package format

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const pesoSign = "₱"

// minFractionDigits mínimo de decimales mostrados, sin importar la escala de la moneda.
const minFractionDigits = 2

// php no está entre las unidades predefinidas de x/text/currency.
var php = currency.MustParseISO("PHP")

// CurrencyFormatter formatea montos en PHP con los separadores del locale.
// Los dígitos salen del decimal exacto; el locale solo aporta los separadores.
type CurrencyFormatter struct {
	unit    currency.Unit
	scale   int32
	group   string
	decimal string
}

// NewPesoFormatter construye el formateador para en-PH / PHP.
func NewPesoFormatter() *CurrencyFormatter {
	scale, _ := currency.Standard.Rounding(php)
	if scale < minFractionDigits {
		scale = minFractionDigits
	}
	p := message.NewPrinter(language.MustParse("en-PH"))
	return &CurrencyFormatter{
		unit:    php,
		scale:   int32(scale),
		group:   separatorAt(p.Sprintf("%d", 1000), ","),
		decimal: separatorAt(p.Sprintf("%.1f", 1.5), "."),
	}
}

// separatorAt toma el símbolo que el locale pone tras el primer dígito ("1,000" -> ",").
func separatorAt(s, fallback string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 || size >= len(s) {
		return fallback
	}
	r, n := utf8.DecodeRuneInString(s[size:])
	if r == utf8.RuneError || (r >= '0' && r <= '9') {
		return fallback
	}
	return s[size : size+n]
}

// Currency devuelve el monto con símbolo, ej. "₱1,120.00" o "-₱50.00".
func (f *CurrencyFormatter) Currency(v decimal.Decimal) string {
	sign, digits := f.grouped(v)
	return sign + pesoSign + digits
}

// Coded devuelve el monto con el código ISO, ej. "PHP 1,120.00" (fuentes sin el glifo ₱).
func (f *CurrencyFormatter) Coded(v decimal.Decimal) string {
	sign, digits := f.grouped(v)
	return sign + f.unit.String() + " " + digits
}

// grouped redondea a la escala y agrupa los miles de la parte entera.
func (f *CurrencyFormatter) grouped(v decimal.Decimal) (sign, digits string) {
	r := v.Round(f.scale)
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	intPart, frac, _ := strings.Cut(r.StringFixed(f.scale), ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(c)
	}
	if frac != "" {
		b.WriteString(f.decimal)
		b.WriteString(frac)
	}
	return sign, b.String()
}

// Plain devuelve el monto sin símbolo ni agrupación, ej. "1120.00" (para campos editables).
func (f *CurrencyFormatter) Plain(v decimal.Decimal) string {
	return v.StringFixed(f.scale)
}

// Code devuelve el código ISO 4217 de la moneda.
func (f *CurrencyFormatter) Code() string { return f.unit.String() }
