package calculator

import (
	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// Slot nombra un campo de salida de solo lectura.
type Slot string

const (
	SlotVatableSales   Slot = "vatableSales"
	SlotVat            Slot = "vat"
	SlotZeroRatedSales Slot = "zeroRatedSales"
	SlotVatExemptSales Slot = "vatExemptSales"
	SlotTotalSales     Slot = "totalSales"
	SlotLessVat        Slot = "lessVat"
	SlotAmountNetOfVat Slot = "amountNetOfVat"
	SlotDiscount       Slot = "discount"
	SlotAddedVat       Slot = "addedVat"
	SlotWithholdingTax Slot = "withholdingTax"
	SlotTotalAmountDue Slot = "totalAmountDue"
)

// SlotValue par slot/monto en orden de pantalla.
type SlotValue struct {
	Slot  Slot
	Value decimal.Decimal
}

// Slots devuelve las once salidas en el orden en que se muestran.
func Slots(out tax.ComputedOutputs) []SlotValue {
	return []SlotValue{
		{SlotVatableSales, out.VatableSales},
		{SlotVat, out.Vat},
		{SlotZeroRatedSales, out.ZeroRatedSales},
		{SlotVatExemptSales, out.VatExemptSales},
		{SlotTotalSales, out.TotalSales},
		{SlotLessVat, out.LessVat},
		{SlotAmountNetOfVat, out.AmountNetOfVat},
		{SlotDiscount, out.Discount},
		{SlotAddedVat, out.AddedVat},
		{SlotWithholdingTax, out.WithholdingTax},
		{SlotTotalAmountDue, out.TotalAmountDue},
	}
}
