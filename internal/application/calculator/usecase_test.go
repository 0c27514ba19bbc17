package calculator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/calculadora-vat/internal/application/calculator"
	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
	"github.com/jhoicas/calculadora-vat/internal/infrastructure/format"
)

type fakePDF struct {
	got calculator.Summary
	err error
}

func (f *fakePDF) GenerateSummaryPDF(_ context.Context, s calculator.Summary) ([]byte, error) {
	f.got = s
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3"), nil
}

type pdfRecorder struct {
	countingRecorder
	pdfs int
}

func (r *pdfRecorder) ObservePDF() { r.pdfs++ }

func TestUseCase_Calculate_PasadaCompleta(t *testing.T) {
	uc := calculator.NewUseCase(format.NewPesoFormatter(), nil, nil, zerolog.Nop())

	res := uc.Calculate(tax.ScenarioPWDGroup, tax.RawInputs{TotalPurchase: "2240", TotalPeople: "2", CardHolders: "1"})

	assert.Equal(t, tax.ScenarioPWDGroup, res.Scenario)
	assert.Equal(t, "1120.00", res.View.PerPerson)
	assert.Equal(t, "₱1,800.00", res.View.Outputs[calculator.SlotTotalAmountDue])
	assert.Equal(t, tax.VisibleFields(tax.ScenarioPWDGroup), res.View.VisibleFields())
}

func TestUseCase_SummaryPDF_PasaElCalculoAlGenerador(t *testing.T) {
	gen := &fakePDF{}
	rec := &pdfRecorder{}
	uc := calculator.NewUseCase(format.NewPesoFormatter(), gen, rec, zerolog.Nop())
	in := tax.RawInputs{TotalSales: "1120", DiscountRate: "20"}

	doc, err := uc.SummaryPDF(context.Background(), tax.ScenarioPWD, in)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), doc)
	assert.Equal(t, tax.ScenarioPWD, gen.got.Scenario)
	assert.Equal(t, in, gen.got.Inputs)
	assert.Equal(t, "800.00", gen.got.Outputs.TotalAmountDue.StringFixed(2))
	assert.False(t, gen.got.GeneratedAt.IsZero())
	assert.Equal(t, 1, rec.pdfs)
	assert.Equal(t, []calculator.Event{calculator.EventReady}, rec.calls)
}

func TestUseCase_SummaryPDF_EnvuelveError(t *testing.T) {
	cause := errors.New("fuente no disponible")
	rec := &pdfRecorder{}
	uc := calculator.NewUseCase(format.NewPesoFormatter(), &fakePDF{err: cause}, rec, zerolog.Nop())

	_, err := uc.SummaryPDF(context.Background(), tax.ScenarioRegular, tax.RawInputs{})

	assert.ErrorIs(t, err, cause)
	assert.Zero(t, rec.pdfs)
}

func TestUseCase_SummaryPDF_SinGenerador(t *testing.T) {
	uc := calculator.NewUseCase(format.NewPesoFormatter(), nil, nil, zerolog.Nop())

	_, err := uc.SummaryPDF(context.Background(), tax.ScenarioRegular, tax.RawInputs{})
	assert.Error(t, err)
}
