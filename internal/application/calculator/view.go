package calculator

import "github.com/jhoicas/calculadora-vat/internal/domain/tax"

// View es un Display en memoria: guarda el último estado escrito.
// Lo usan la API HTTP (para serializar la pantalla) y los tests.
type View struct {
	Active    tax.Scenario
	Visible   map[tax.Field]bool
	Outputs   map[Slot]string
	PerPerson string

	// Marks cuenta cuántas veces se marcó el selector activo.
	Marks int
	// Writes cuenta las escrituras de salidas.
	Writes int
}

// NewView construye una vista vacía.
func NewView() *View {
	return &View{
		Visible: make(map[tax.Field]bool),
		Outputs: make(map[Slot]string),
	}
}

// SetFieldVisible implementa Display.
func (v *View) SetFieldVisible(field tax.Field, visible bool) { v.Visible[field] = visible }

// MarkActiveScenario implementa Display.
func (v *View) MarkActiveScenario(active tax.Scenario) {
	v.Active = active
	v.Marks++
}

// SetOutput implementa Display.
func (v *View) SetOutput(slot Slot, text string) {
	v.Outputs[slot] = text
	v.Writes++
}

// SetPerPerson implementa Display.
func (v *View) SetPerPerson(text string) { v.PerPerson = text }

// VisibleFields devuelve los campos visibles en orden de formulario.
func (v *View) VisibleFields() []tax.Field {
	var out []tax.Field
	for _, f := range tax.Fields() {
		if v.Visible[f] {
			out = append(out, f)
		}
	}
	return out
}
