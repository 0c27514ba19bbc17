package calculator

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
)

// Summary datos de un cálculo para el resumen imprimible.
type Summary struct {
	Scenario    tax.Scenario
	Inputs      tax.RawInputs
	Outputs     tax.ComputedOutputs
	GeneratedAt time.Time
}

// SummaryPDFGenerator genera el resumen PDF de un cálculo.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, s Summary) ([]byte, error)
}

// Result pantalla completa tras un cálculo: montos crudos y textos formateados.
type Result struct {
	Scenario tax.Scenario
	Outputs  tax.ComputedOutputs
	View     *View
}

// UseCase expone el cálculo a transportes sin estado (HTTP).
// Cada llamada equivale a una pasada inicial de un formulario nuevo.
type UseCase struct {
	format   Formatter
	pdf      SummaryPDFGenerator
	recorder Recorder
	log      zerolog.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. pdf y recorder pueden ser nil.
func NewUseCase(format Formatter, pdf SummaryPDFGenerator, recorder Recorder, log zerolog.Logger) *UseCase {
	return &UseCase{
		format:   format,
		pdf:      pdf,
		recorder: recorder,
		log:      log,
		now:      time.Now,
	}
}

// Calculate ejecuta el cálculo para el escenario y valores dados.
func (uc *UseCase) Calculate(scenario tax.Scenario, in tax.RawInputs) Result {
	view := NewView()
	opts := []Option{WithLogger(uc.log)}
	if uc.recorder != nil {
		opts = append(opts, WithRecorder(uc.recorder))
	}
	ctrl := NewController(scenario, InputsFunc(func() tax.RawInputs { return in }), view, uc.format, opts...)
	out := ctrl.Ready()
	return Result{Scenario: ctrl.Scenario(), Outputs: out, View: view}
}

// SummaryPDF calcula y genera el resumen PDF.
func (uc *UseCase) SummaryPDF(ctx context.Context, scenario tax.Scenario, in tax.RawInputs) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("calculator: generador PDF no configurado")
	}
	res := uc.Calculate(scenario, in)
	doc, err := uc.pdf.GenerateSummaryPDF(ctx, Summary{
		Scenario:    res.Scenario,
		Inputs:      in,
		Outputs:     res.Outputs,
		GeneratedAt: uc.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("calculator: resumen PDF: %w", err)
	}
	if obs, ok := uc.recorder.(interface{ ObservePDF() }); ok {
		obs.ObservePDF()
	}
	return doc, nil
}
