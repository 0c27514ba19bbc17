//go:build js && wasm

// Package dom implementa calculator.Display y calculator.InputSource sobre el DOM
// del navegador (build WebAssembly).
package dom

import (
	"syscall/js"

	"github.com/jhoicas/calculadora-vat/internal/application/calculator"
	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
)

// Page envuelve el documento con el formulario de la calculadora.
type Page struct {
	doc js.Value
}

// NewPage toma el document global.
func NewPage() *Page {
	return &Page{doc: js.Global().Get("document")}
}

func (p *Page) byID(id string) js.Value {
	return p.doc.Call("getElementById", id)
}

func (p *Page) value(id string) string {
	el := p.byID(id)
	if el.IsNull() || el.IsUndefined() {
		return ""
	}
	return el.Get("value").String()
}

// ReadInputs implementa calculator.InputSource; lee el formulario en cada llamada.
func (p *Page) ReadInputs() tax.RawInputs {
	return tax.RawInputs{
		TotalSales:     p.value(string(tax.FieldTotalSales)),
		DiscountRate:   p.value(string(tax.FieldDiscountRate)),
		DiscountAmount: p.value(string(tax.FieldDiscountAmount)),
		TotalPurchase:  p.value(string(tax.FieldTotalPurchase)),
		TotalPeople:    p.value(string(tax.FieldTotalPeople)),
		CardHolders:    p.value(string(tax.FieldCardHolders)),
		AddedVat:       p.value(string(tax.FieldAddedVat)),
		WithholdingTax: p.value(string(tax.FieldWithholdingTax)),
	}
}

// SetFieldVisible oculta o muestra el <label class="conditional"> que contiene el input.
func (p *Page) SetFieldVisible(field tax.Field, visible bool) {
	el := p.byID(string(field))
	if el.IsNull() || el.IsUndefined() {
		return
	}
	wrapper := el.Call("closest", ".conditional")
	if wrapper.IsNull() {
		return
	}
	wrapper.Set("hidden", !visible)
}

// MarkActiveScenario alterna la clase "active" en los selectores de escenario.
func (p *Page) MarkActiveScenario(active tax.Scenario) {
	buttons := p.doc.Call("querySelectorAll", ".scenario-button")
	for i := 0; i < buttons.Length(); i++ {
		b := buttons.Index(i)
		b.Get("classList").Call("toggle", "active", b.Get("dataset").Get("scenario").String() == active.String())
	}
}

// SetOutput escribe el texto en el slot [data-field=...].
func (p *Page) SetOutput(slot calculator.Slot, text string) {
	el := p.doc.Call("querySelector", "[data-field='"+string(slot)+"']")
	if el.IsNull() {
		return
	}
	el.Set("textContent", text)
}

// SetPerPerson escribe el monto por persona en el campo editable.
func (p *Page) SetPerPerson(text string) {
	el := p.byID(string(tax.FieldPerPerson))
	if el.IsNull() {
		return
	}
	el.Set("value", text)
}

// Bind conecta los eventos del formulario al controlador.
// Los js.Func devueltos viven mientras viva la página.
func (p *Page) Bind(ctrl *calculator.Controller) []js.Func {
	onInput := js.FuncOf(func(js.Value, []js.Value) any {
		ctrl.InputChanged()
		return nil
	})
	p.byID("calculator-form").Call("addEventListener", "input", onInput)
	funcs := []js.Func{onInput}

	buttons := p.doc.Call("querySelectorAll", ".scenario-button")
	for i := 0; i < buttons.Length(); i++ {
		b := buttons.Index(i)
		tag := tax.Scenario(b.Get("dataset").Get("scenario").String())
		onClick := js.FuncOf(func(js.Value, []js.Value) any {
			ctrl.SelectScenario(tag)
			return nil
		})
		b.Call("addEventListener", "click", onClick)
		funcs = append(funcs, onClick)
	}
	return funcs
}
