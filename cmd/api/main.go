package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/calculadora-vat/internal/application/calculator"
	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
	"github.com/jhoicas/calculadora-vat/internal/infrastructure/format"
	"github.com/jhoicas/calculadora-vat/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/calculadora-vat/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/calculadora-vat/internal/interfaces/http"
	"github.com/jhoicas/calculadora-vat/pkg/config"
	"github.com/jhoicas/calculadora-vat/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if _, err := tax.ParseScenario(cfg.Calculator.DefaultScenario); err != nil {
		log.Fatal().Err(err).Str("scenario", cfg.Calculator.DefaultScenario).Msg("CALC_DEFAULT_SCENARIO inválido")
	}

	pesos := format.NewPesoFormatter()

	var recorder calculator.Recorder
	var gatherer prometheus.Gatherer
	if cfg.HTTP.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.NewCalculatorMetrics(reg)
		gatherer = reg
	}

	// PDF: resumen imprimible del cálculo (no se guarda)
	pdfGenerator := infrapdf.NewMarotoSummaryGenerator(pesos)
	calculatorUC := calculator.NewUseCase(pesos, pdfGenerator, recorder, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerFile != "" {
		if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerFile,
				Path:     "docs",
				Title:    "Calculadora VAT API",
			}))
		} else {
			log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, /docs desactivado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CalculatorUC:    calculatorUC,
		Currency:        pesos.Code(),
		Logger:          log.Zerolog(),
		Gatherer:        gatherer,
		WebDir:          cfg.HTTP.WebDir,
		DefaultScenario: cfg.Calculator.DefaultScenario,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
