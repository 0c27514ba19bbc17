// Package calculator conecta los eventos de la capa de presentación con el
// motor de cálculo. El Controller es dueño del escenario activo; todo lo demás
// se lee del formulario en cada evento.
package calculator

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
)

// Event tipo de evento que dispara un recálculo.
type Event string

const (
	EventReady          Event = "ready"
	EventInputChanged   Event = "input"
	EventScenarioSelect Event = "scenario"
)

// Controller maneja los eventos del formulario de forma síncrona.
// No es seguro para uso concurrente: se asume un único bucle de eventos.
type Controller struct {
	scenario tax.Scenario
	inputs   InputSource
	display  Display
	format   Formatter
	recorder Recorder
	log      zerolog.Logger
}

// Option configura dependencias opcionales del Controller.
type Option func(*Controller)

// WithLogger asigna el logger (por defecto zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithRecorder asigna el receptor de métricas.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// NewController construye el controlador con el escenario inicial.
// Un escenario inválido se reemplaza por tax.DefaultScenario.
func NewController(initial tax.Scenario, inputs InputSource, display Display, format Formatter, opts ...Option) *Controller {
	if !initial.Valid() {
		initial = tax.DefaultScenario
	}
	c := &Controller{
		scenario: initial,
		inputs:   inputs,
		display:  display,
		format:   format,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scenario devuelve el escenario activo.
func (c *Controller) Scenario() tax.Scenario { return c.scenario }

// Ready ejecuta la pasada inicial con los valores por defecto del formulario.
func (c *Controller) Ready() tax.ComputedOutputs {
	c.display.MarkActiveScenario(c.scenario)
	return c.recompute(EventReady)
}

// InputChanged recalcula tras cualquier edición de un campo.
func (c *Controller) InputChanged() tax.ComputedOutputs {
	return c.recompute(EventInputChanged)
}

// SelectScenario cambia el escenario activo y recalcula.
// Si s ya es el escenario activo (o no es válido) no hace nada y devuelve changed=false.
func (c *Controller) SelectScenario(s tax.Scenario) (out tax.ComputedOutputs, changed bool) {
	if s == c.scenario || !s.Valid() {
		return tax.ComputedOutputs{}, false
	}
	c.scenario = s
	c.display.MarkActiveScenario(s)
	return c.recompute(EventScenarioSelect), true
}

func (c *Controller) recompute(ev Event) tax.ComputedOutputs {
	s := c.scenario
	for _, f := range tax.Fields() {
		c.display.SetFieldVisible(f, f.AppliesTo(s))
	}

	out := tax.Compute(s, c.inputs.ReadInputs())
	Render(c.display, c.format, out)

	if c.recorder != nil {
		c.recorder.ObserveRecompute(s, ev)
	}
	c.log.Debug().
		Str("scenario", s.String()).
		Str("event", string(ev)).
		Str("total_amount_due", out.TotalAmountDue.StringFixed(2)).
		Msg("recálculo")
	return out
}

// Render escribe las salidas formateadas en el Display.
func Render(d Display, f Formatter, out tax.ComputedOutputs) {
	for _, sv := range Slots(out) {
		d.SetOutput(sv.Slot, f.Currency(sv.Value))
	}
	if out.PerPerson.Valid {
		d.SetPerPerson(f.Plain(out.PerPerson.Decimal))
	}
}
