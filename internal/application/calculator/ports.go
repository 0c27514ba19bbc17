package calculator

import (
	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// InputSource entrega los valores crudos actuales del formulario.
// Se consulta en cada evento; el controlador no guarda copia.
type InputSource interface {
	ReadInputs() tax.RawInputs
}

// Display recibe las instrucciones de presentación (mostrar/ocultar campos,
// marcar el selector activo y escribir textos en los slots de salida).
type Display interface {
	SetFieldVisible(field tax.Field, visible bool)
	MarkActiveScenario(active tax.Scenario)
	SetOutput(slot Slot, text string)
	SetPerPerson(text string)
}

// Formatter convierte montos en texto para el Display.
type Formatter interface {
	Currency(v decimal.Decimal) string
	Plain(v decimal.Decimal) string
}

// Recorder recibe una notificación por cada recálculo (métricas).
type Recorder interface {
	ObserveRecompute(scenario tax.Scenario, event Event)
}

// InputsFunc adapta una función a InputSource.
type InputsFunc func() tax.RawInputs

// ReadInputs implementa InputSource.
func (f InputsFunc) ReadInputs() tax.RawInputs { return f() }
