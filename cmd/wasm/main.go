//go:build js && wasm

// Build: GOOS=js GOARCH=wasm go build -o web/main.wasm ./cmd/wasm
// y copiar $(go env GOROOT)/lib/wasm/wasm_exec.js a web/. Abrir /?mode=wasm.
package main

import (
	"github.com/jhoicas/calculadora-vat/internal/application/calculator"
	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
	"github.com/jhoicas/calculadora-vat/internal/infrastructure/format"
	"github.com/jhoicas/calculadora-vat/internal/interfaces/dom"
)

func main() {
	page := dom.NewPage()
	ctrl := calculator.NewController(tax.DefaultScenario, page, page, format.NewPesoFormatter())
	page.Bind(ctrl)

	// app.js carga el módulo después de DOMContentLoaded: la pasada inicial va aquí.
	ctrl.Ready()

	select {}
}
