// Package pdf genera el resumen imprimible de un cálculo de VAT.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + escenario   │  fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS INGRESADOS: campos visibles del escenario            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE: VATable / VAT / Zero-rated / Exempt / Total      │
//	│  AJUSTES: Less VAT / Neto / Descuento / Added VAT / WHT     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL AMOUNT DUE                                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/calculadora-vat/internal/application/calculator"
	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 56, Blue: 168}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// AmountFormatter formatea montos con una fuente sin el glifo ₱.
type AmountFormatter interface {
	Coded(v decimal.Decimal) string
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSummaryGenerator implementa calculator.SummaryPDFGenerator usando Maroto v2.
type MarotoSummaryGenerator struct {
	format AmountFormatter
}

// NewMarotoSummaryGenerator construye el generador.
func NewMarotoSummaryGenerator(format AmountFormatter) *MarotoSummaryGenerator {
	return &MarotoSummaryGenerator{format: format}
}

// GenerateSummaryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoSummaryGenerator) GenerateSummaryPDF(_ context.Context, s calculator.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("VAT Computation Summary", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("DATOS INGRESADOS"))
	m.AddRows(g.inputRows(s)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("DESGLOSE"))
	for _, sv := range calculator.Slots(s.Outputs) {
		if sv.Slot == calculator.SlotTotalAmountDue {
			continue
		}
		m.AddRows(amountRow(slotLabels[sv.Slot], g.format.Coded(sv.Value), false))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(amountRow(slotLabels[calculator.SlotTotalAmountDue], g.format.Coded(s.Outputs.TotalAmountDue), true))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

var scenarioLabels = map[tax.Scenario]string{
	tax.ScenarioRegular:  "Regular sale",
	tax.ScenarioPWD:      "PWD / Senior Citizen (individual)",
	tax.ScenarioPWDGroup: "PWD / Senior Citizen (group)",
}

var slotLabels = map[calculator.Slot]string{
	calculator.SlotVatableSales:   "VATable Sales",
	calculator.SlotVat:            "VAT (12%)",
	calculator.SlotZeroRatedSales: "Zero-Rated Sales",
	calculator.SlotVatExemptSales: "VAT-Exempt Sales",
	calculator.SlotTotalSales:     "Total Sales (VAT inclusive)",
	calculator.SlotLessVat:        "Less: VAT",
	calculator.SlotAmountNetOfVat: "Amount Net of VAT",
	calculator.SlotDiscount:       "Less: Discount",
	calculator.SlotAddedVat:       "Add: VAT",
	calculator.SlotWithholdingTax: "Less: Withholding Tax",
	calculator.SlotTotalAmountDue: "TOTAL AMOUNT DUE",
}

var fieldLabels = map[tax.Field]string{
	tax.FieldTotalSales:     "Total sales",
	tax.FieldDiscountRate:   "Discount rate (%)",
	tax.FieldDiscountAmount: "Discount amount",
	tax.FieldTotalPurchase:  "Total purchase",
	tax.FieldTotalPeople:    "Number of people",
	tax.FieldCardHolders:    "PWD/SC card holders",
	tax.FieldPerPerson:      "Amount per person",
	tax.FieldAddedVat:       "Added VAT",
	tax.FieldWithholdingTax: "Withholding tax",
}

// headerRow: título + escenario (izq) y fecha (der).
func headerRow(s calculator.Summary) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("VAT COMPUTATION SUMMARY", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Scenario: "+scenarioLabels[s.Scenario], props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+s.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

// inputRows: solo los campos visibles en el escenario, con el valor tal como se ingresó.
func (g *MarotoSummaryGenerator) inputRows(s calculator.Summary) []core.Row {
	var rows []core.Row
	for _, f := range tax.VisibleFields(s.Scenario) {
		value := rawValue(s.Inputs, f)
		if f == tax.FieldPerPerson && s.Outputs.PerPerson.Valid {
			value = g.format.Coded(s.Outputs.PerPerson.Decimal)
		}
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(fieldLabels[f], props.Text{Size: 8, Left: 2})),
			col.New(6).Add(text.New(nonEmpty(value, "—"), props.Text{Size: 8, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func amountRow(label, value string, grand bool) core.Row {
	style := props.Text{Size: 9, Left: 2}
	valueStyle := props.Text{Size: 9, Align: align.Right, Right: 1}
	height := 6.0
	if grand {
		style = props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Left: 2, Top: 1}
		valueStyle = props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Align: align.Right, Right: 1, Top: 1}
		height = 9
	}
	return row.New(height).Add(
		col.New(7).Add(text.New(label, style)),
		col.New(5).Add(text.New(value, valueStyle)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func rawValue(in tax.RawInputs, f tax.Field) string {
	switch f {
	case tax.FieldTotalSales:
		return in.TotalSales
	case tax.FieldDiscountRate:
		return in.DiscountRate
	case tax.FieldDiscountAmount:
		return in.DiscountAmount
	case tax.FieldTotalPurchase:
		return in.TotalPurchase
	case tax.FieldTotalPeople:
		return in.TotalPeople
	case tax.FieldCardHolders:
		return in.CardHolders
	case tax.FieldAddedVat:
		return in.AddedVat
	case tax.FieldWithholdingTax:
		return in.WithholdingTax
	}
	return ""
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
