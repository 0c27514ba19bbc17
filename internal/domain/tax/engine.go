// Package tax implementa el motor de cálculo de VAT filipino (12%) para los
// escenarios de venta regular y descuento PWD/Senior Citizen individual y grupal.
//
// Compute es una función pura: no guarda estado, no registra logs y nunca
// devuelve error. Cualquier entrada malformada se degrada a 0 (o a 1 para la
// cantidad de personas) y el resultado siempre es un registro completo.
package tax

import "github.com/shopspring/decimal"

var (
	vatDivisor        = decimal.RequireFromString("1.12") // precio con VAT / 1.12 = neto
	vatRate           = decimal.RequireFromString("0.12")
	groupDiscountRate = decimal.RequireFromString("0.2")
	hundred           = decimal.NewFromInt(100)
)

// ComputedOutputs montos derivados que se muestran en el formulario.
type ComputedOutputs struct {
	VatableSales   decimal.Decimal `json:"vatableSales"`
	Vat            decimal.Decimal `json:"vat"`
	ZeroRatedSales decimal.Decimal `json:"zeroRatedSales"`
	VatExemptSales decimal.Decimal `json:"vatExemptSales"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	LessVat        decimal.Decimal `json:"lessVat"`
	AmountNetOfVat decimal.Decimal `json:"amountNetOfVat"`
	Discount       decimal.Decimal `json:"discount"`
	AddedVat       decimal.Decimal `json:"addedVat"`
	WithholdingTax decimal.Decimal `json:"withholdingTax"`
	TotalAmountDue decimal.Decimal `json:"totalAmountDue"`

	// PerPerson solo es válido en ScenarioPWDGroup; se escribe de vuelta en un campo editable.
	PerPerson decimal.NullDecimal `json:"perPerson"`
}

// Compute calcula todas las salidas para el escenario e insumos dados.
// Un escenario desconocido se trata como ScenarioRegular.
func Compute(s Scenario, in RawInputs) ComputedOutputs {
	var out ComputedOutputs
	var baseTotal decimal.Decimal

	switch s {
	case ScenarioPWD:
		baseTotal = computePWD(in, &out)
	case ScenarioPWDGroup:
		baseTotal = computePWDGroup(in, &out)
	default:
		baseTotal = computeRegular(in, &out)
	}

	out.ZeroRatedSales = decimal.Zero
	out.LessVat = out.Vat
	out.AddedVat = ParseAmount(in.AddedVat)
	out.WithholdingTax = ParseAmount(in.WithholdingTax)
	out.TotalAmountDue = decimal.Max(baseTotal.Add(out.AddedVat).Sub(out.WithholdingTax), decimal.Zero)
	return out
}

// splitVat descompone un total con VAT incluido en neto y VAT (por resta).
func splitVat(total decimal.Decimal) (net, vat decimal.Decimal) {
	net = total.Div(vatDivisor)
	return net, total.Sub(net)
}

// clamp limita v a [0, upper] aplicando primero el piso y luego el techo.
// Con upper negativo el resultado es upper.
func clamp(v, upper decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, decimal.Zero), upper)
}

func computeRegular(in RawInputs, out *ComputedOutputs) decimal.Decimal {
	total := ParseAmount(in.TotalSales)
	net, vat := splitVat(total)

	out.TotalSales = total
	out.AmountNetOfVat = net
	out.Vat = vat
	out.VatableSales = net
	out.VatExemptSales = decimal.Zero
	out.Discount = clamp(ParseAmount(in.DiscountAmount), total)
	return total.Sub(out.Discount)
}

func computePWD(in RawInputs, out *ComputedOutputs) decimal.Decimal {
	total := ParseAmount(in.TotalSales)
	net, vat := splitVat(total)

	rate := decimal.Max(ParseAmount(in.DiscountRate).Div(hundred), decimal.Zero)

	out.TotalSales = total
	out.AmountNetOfVat = net
	out.Vat = vat
	out.VatableSales = net
	out.VatExemptSales = net
	out.Discount = decimal.Min(net.Mul(rate), net)
	return net.Sub(out.Discount)
}

func computePWDGroup(in RawInputs, out *ComputedOutputs) decimal.Decimal {
	total := ParseAmount(in.TotalPurchase)
	people := decimal.NewFromInt(ParsePeople(in.TotalPeople))
	holders := decimal.NewFromInt(ParseCardHolders(in.CardHolders))

	net := total.Div(vatDivisor)

	out.TotalSales = total
	out.AmountNetOfVat = net
	// En el escenario grupal el VAT se calcula multiplicando el neto, no por resta.
	out.Vat = net.Mul(vatRate)
	out.VatableSales = net
	out.VatExemptSales = net

	perPerson := total.Div(people)
	out.PerPerson = decimal.NewNullDecimal(perPerson.Round(2))

	perPersonNet := perPerson.Div(vatDivisor)
	// Tope en el neto y piso en 0: con una compra negativa no hay descuento.
	out.Discount = decimal.Max(decimal.Min(perPersonNet.Mul(groupDiscountRate).Mul(holders), net), decimal.Zero)
	return net.Sub(out.Discount)
}
