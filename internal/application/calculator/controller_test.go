package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/calculadora-vat/internal/application/calculator"
	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
	"github.com/jhoicas/calculadora-vat/internal/infrastructure/format"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// form simula el formulario: el test modifica los valores entre eventos.
type form struct {
	values tax.RawInputs
	reads  int
}

func (f *form) ReadInputs() tax.RawInputs {
	f.reads++
	return f.values
}

type countingRecorder struct {
	calls []calculator.Event
}

func (r *countingRecorder) ObserveRecompute(_ tax.Scenario, ev calculator.Event) {
	r.calls = append(r.calls, ev)
}

func newTestController(t *testing.T, values tax.RawInputs) (*calculator.Controller, *form, *calculator.View, *countingRecorder) {
	t.Helper()
	f := &form{values: values}
	v := calculator.NewView()
	rec := &countingRecorder{}
	c := calculator.NewController(tax.DefaultScenario, f, v, format.NewPesoFormatter(),
		calculator.WithRecorder(rec))
	return c, f, v, rec
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestReady_PasadaInicialConValoresVacios(t *testing.T) {
	c, f, v, rec := newTestController(t, tax.RawInputs{})

	c.Ready()

	assert.Equal(t, tax.ScenarioRegular, v.Active)
	assert.Equal(t, 1, f.reads)
	assert.Len(t, v.Outputs, 11, "se escriben las once salidas")
	for slot, text := range v.Outputs {
		assert.Equal(t, "₱0.00", text, "slot %s", slot)
	}
	assert.Empty(t, v.PerPerson, "perPerson solo se escribe en el escenario grupal")
	assert.Equal(t, tax.VisibleFields(tax.ScenarioRegular), v.VisibleFields())
	assert.Equal(t, []calculator.Event{calculator.EventReady}, rec.calls)
}

func TestInputChanged_LeeValoresFrescos(t *testing.T) {
	c, f, v, _ := newTestController(t, tax.RawInputs{})
	c.Ready()

	f.values.TotalSales = "1120"
	out := c.InputChanged()

	assert.Equal(t, 2, f.reads)
	assert.Equal(t, "₱1,120.00", v.Outputs[calculator.SlotTotalSales])
	assert.Equal(t, "₱120.00", v.Outputs[calculator.SlotVat])
	assert.Equal(t, "₱120.00", v.Outputs[calculator.SlotLessVat])
	assert.Equal(t, "₱1,000.00", v.Outputs[calculator.SlotAmountNetOfVat])
	assert.Equal(t, "₱1,120.00", v.Outputs[calculator.SlotTotalAmountDue])
	assert.Equal(t, "1120.00", out.TotalAmountDue.StringFixed(2))
}

func TestSelectScenario_MismoEscenarioEsNoOp(t *testing.T) {
	c, f, v, rec := newTestController(t, tax.RawInputs{TotalSales: "1120"})
	c.Ready()
	marks, writes, reads := v.Marks, v.Writes, f.reads

	_, changed := c.SelectScenario(tax.ScenarioRegular)

	assert.False(t, changed)
	assert.Equal(t, marks, v.Marks, "no debe re-marcar el selector")
	assert.Equal(t, writes, v.Writes, "no debe reescribir salidas")
	assert.Equal(t, reads, f.reads, "no debe leer el formulario")
	assert.Len(t, rec.calls, 1)
}

func TestSelectScenario_InvalidoEsNoOp(t *testing.T) {
	c, _, _, rec := newTestController(t, tax.RawInputs{})
	c.Ready()

	_, changed := c.SelectScenario(tax.Scenario("vip"))

	assert.False(t, changed)
	assert.Equal(t, tax.ScenarioRegular, c.Scenario())
	assert.Len(t, rec.calls, 1)
}

func TestSelectScenario_CambiaVisibilidadYRecalcula(t *testing.T) {
	c, _, v, rec := newTestController(t, tax.RawInputs{
		TotalSales:    "1120",
		DiscountRate:  "20",
		TotalPurchase: "2240",
		TotalPeople:   "2",
		CardHolders:   "1",
	})
	c.Ready()

	out, changed := c.SelectScenario(tax.ScenarioPWD)
	require.True(t, changed)
	assert.Equal(t, tax.ScenarioPWD, c.Scenario())
	assert.Equal(t, tax.ScenarioPWD, v.Active)
	assert.Equal(t, tax.VisibleFields(tax.ScenarioPWD), v.VisibleFields())
	assert.Equal(t, "₱200.00", v.Outputs[calculator.SlotDiscount])
	assert.Equal(t, "₱800.00", v.Outputs[calculator.SlotTotalAmountDue])
	assert.Equal(t, "800.00", out.TotalAmountDue.StringFixed(2))

	_, changed = c.SelectScenario(tax.ScenarioPWDGroup)
	require.True(t, changed)
	assert.Equal(t, "1120.00", v.PerPerson)
	assert.Equal(t, tax.VisibleFields(tax.ScenarioPWDGroup), v.VisibleFields())
	assert.Equal(t, "₱2,240.00", v.Outputs[calculator.SlotTotalSales])
	assert.Equal(t, "₱0.00", v.Outputs[calculator.SlotZeroRatedSales])

	assert.Equal(t, []calculator.Event{
		calculator.EventReady, calculator.EventScenarioSelect, calculator.EventScenarioSelect,
	}, rec.calls)
}

func TestNewController_EscenarioInicialInvalidoUsaDefault(t *testing.T) {
	c := calculator.NewController(tax.Scenario(""), calculator.InputsFunc(func() tax.RawInputs {
		return tax.RawInputs{}
	}), calculator.NewView(), format.NewPesoFormatter())

	assert.Equal(t, tax.DefaultScenario, c.Scenario())
}
