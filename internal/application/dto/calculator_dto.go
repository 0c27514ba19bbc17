package dto

import "github.com/shopspring/decimal"

// CalculateRequest body para POST /api/calculate y POST /api/calculate/pdf.
// Los valores van como texto crudo del formulario; lo no numérico cuenta como 0.
type CalculateRequest struct {
	Scenario string              `json:"scenario" example:"pwd"`
	Inputs   CalculateInputsBody `json:"inputs"`
}

// CalculateInputsBody campos crudos del formulario.
type CalculateInputsBody struct {
	TotalSales     string `json:"totalSales,omitempty" example:"1120"`
	DiscountRate   string `json:"discountRate,omitempty" example:"20"`
	DiscountAmount string `json:"discountAmount,omitempty"`
	TotalPurchase  string `json:"totalPurchase,omitempty"`
	TotalPeople    string `json:"totalPeople,omitempty"`
	CardHolders    string `json:"cardHolders,omitempty"`
	AddedVat       string `json:"addedVat,omitempty"`
	WithholdingTax string `json:"withholdingTax,omitempty"`
}

// CalculateResponse resultado del cálculo.
// Amounts lleva los montos exactos; Display los textos listos para pantalla.
type CalculateResponse struct {
	Scenario      string            `json:"scenario"`
	Amounts       CalculateAmounts  `json:"amounts"`
	Display       map[string]string `json:"display"`
	VisibleFields []string          `json:"visible_fields"`
	PerPerson     string            `json:"per_person,omitempty"`
	Currency      string            `json:"currency"`
}

// CalculateAmounts montos sin formato (string decimal en JSON).
type CalculateAmounts struct {
	VatableSales   decimal.Decimal  `json:"vatableSales"`
	Vat            decimal.Decimal  `json:"vat"`
	ZeroRatedSales decimal.Decimal  `json:"zeroRatedSales"`
	VatExemptSales decimal.Decimal  `json:"vatExemptSales"`
	TotalSales     decimal.Decimal  `json:"totalSales"`
	LessVat        decimal.Decimal  `json:"lessVat"`
	AmountNetOfVat decimal.Decimal  `json:"amountNetOfVat"`
	Discount       decimal.Decimal  `json:"discount"`
	AddedVat       decimal.Decimal  `json:"addedVat"`
	WithholdingTax decimal.Decimal  `json:"withholdingTax"`
	TotalAmountDue decimal.Decimal  `json:"totalAmountDue"`
	PerPerson      *decimal.Decimal `json:"perPerson,omitempty"`
}

// ScenarioResponse escenario y sus campos aplicables para GET /api/scenarios.
type ScenarioResponse struct {
	Scenario string   `json:"scenario"`
	Fields   []string `json:"fields"`
	Default  bool     `json:"default,omitempty"`
}
