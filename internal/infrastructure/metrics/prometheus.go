package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/calculadora-vat/internal/application/calculator"
	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
)

// CalculatorMetrics expone colectores Prometheus de la calculadora.
// Implementa calculator.Recorder.
type CalculatorMetrics struct {
	recomputes *prometheus.CounterVec
	pdfs       prometheus.Counter
}

var (
	defaultOnce    sync.Once
	defaultMetrics *CalculatorMetrics
)

// NewCalculatorMetrics registra los colectores en el registerer indicado.
// Con registerer nil se usa prometheus.DefaultRegisterer (una sola vez).
func NewCalculatorMetrics(registerer prometheus.Registerer) *CalculatorMetrics {
	if registerer == nil {
		defaultOnce.Do(func() {
			defaultMetrics = build(prometheus.DefaultRegisterer)
		})
		return defaultMetrics
	}
	return build(registerer)
}

func build(registerer prometheus.Registerer) *CalculatorMetrics {
	m := &CalculatorMetrics{
		recomputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vat_calculator",
			Name:      "recomputes_total",
			Help:      "Recálculos ejecutados por escenario y tipo de evento.",
		}, []string{"scenario", "event"}),
		pdfs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vat_calculator",
			Name:      "pdf_summaries_total",
			Help:      "Resúmenes PDF generados.",
		}),
	}
	registerer.MustRegister(m.recomputes, m.pdfs)
	return m
}

// ObserveRecompute implementa calculator.Recorder.
func (m *CalculatorMetrics) ObserveRecompute(scenario tax.Scenario, event calculator.Event) {
	if m == nil {
		return
	}
	m.recomputes.WithLabelValues(scenario.String(), string(event)).Inc()
}

// ObservePDF cuenta un resumen PDF generado.
func (m *CalculatorMetrics) ObservePDF() {
	if m == nil {
		return
	}
	m.pdfs.Inc()
}
