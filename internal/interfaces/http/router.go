package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jhoicas/calculadora-vat/internal/application/calculator"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CalculatorUC *calculator.UseCase
	Currency     string
	Logger       zerolog.Logger
	// Gatherer para /metrics; nil desactiva el endpoint.
	Gatherer prometheus.Gatherer
	// DefaultScenario se usa cuando la solicitud no trae escenario.
	DefaultScenario string
	// WebDir carpeta con la página de la calculadora; vacío no la sirve.
	WebDir string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	calcHandler := NewCalculatorHandler(deps.CalculatorUC, deps.Currency, deps.DefaultScenario, deps.Logger)
	api.Get("/scenarios", calcHandler.Scenarios)
	api.Post("/calculate", calcHandler.Calculate)
	api.Post("/calculate/pdf", calcHandler.SummaryPDF)

	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Página del formulario (index.html + assets)
	if deps.WebDir != "" {
		app.Static("/", deps.WebDir, fiber.Static{Index: "index.html"})
	}
}
