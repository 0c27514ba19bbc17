package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/calculadora-vat/internal/application/calculator"
	"github.com/jhoicas/calculadora-vat/internal/application/dto"
	"github.com/jhoicas/calculadora-vat/internal/domain"
	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
)

// CalculatorHandler expone el motor de cálculo por HTTP (sin estado, sin persistencia).
type CalculatorHandler struct {
	uc              *calculator.UseCase
	currency        string
	defaultScenario tax.Scenario
	log             zerolog.Logger
}

// NewCalculatorHandler construye el handler. Un defaultScenario inválido se reemplaza por tax.DefaultScenario.
func NewCalculatorHandler(uc *calculator.UseCase, currency, defaultScenario string, log zerolog.Logger) *CalculatorHandler {
	def, err := tax.ParseScenario(defaultScenario)
	if err != nil {
		def = tax.DefaultScenario
	}
	return &CalculatorHandler{uc: uc, currency: currency, defaultScenario: def, log: log}
}

// Calculate godoc
// @Summary      Calcula VAT, descuentos y total a pagar
// @Description  Recibe el escenario y los valores crudos del formulario. Nunca falla por
//               valores no numéricos: se tratan como 0 (o 1 para totalPeople).
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CalculateRequest  true  "Escenario y valores del formulario"
// @Success      200   {object}  dto.CalculateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculate [post]
func (h *CalculatorHandler) Calculate(c *fiber.Ctx) error {
	scenario, in, err := h.parse(c)
	if err != nil {
		return h.badRequest(c, err)
	}
	res := h.uc.Calculate(scenario, in)
	return c.JSON(toResponse(res, h.currency))
}

// SummaryPDF godoc
// @Summary      Resumen PDF del cálculo
// @Tags         calculator
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.CalculateRequest  true  "Escenario y valores del formulario"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/calculate/pdf [post]
func (h *CalculatorHandler) SummaryPDF(c *fiber.Ctx) error {
	scenario, in, err := h.parse(c)
	if err != nil {
		return h.badRequest(c, err)
	}
	doc, err := h.uc.SummaryPDF(c.Context(), scenario, in)
	if err != nil {
		h.log.Error().Err(err).Str("scenario", scenario.String()).Msg("generar resumen PDF")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="vat-summary.pdf"`)
	return c.Send(doc)
}

// Scenarios godoc
// @Summary      Lista los escenarios y sus campos aplicables
// @Tags         calculator
// @Produce      json
// @Success      200  {array}  dto.ScenarioResponse
// @Router       /api/scenarios [get]
func (h *CalculatorHandler) Scenarios(c *fiber.Ctx) error {
	out := make([]dto.ScenarioResponse, 0, len(tax.Scenarios()))
	for _, s := range tax.Scenarios() {
		out = append(out, dto.ScenarioResponse{
			Scenario: s.String(),
			Fields:   fieldNames(tax.VisibleFields(s)),
			Default:  s == h.defaultScenario,
		})
	}
	return c.JSON(out)
}

// parse lee el body. Un body vacío equivale al formulario vacío en el escenario por defecto.
func (h *CalculatorHandler) parse(c *fiber.Ctx) (tax.Scenario, tax.RawInputs, error) {
	var req dto.CalculateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return "", tax.RawInputs{}, domain.ErrInvalidInput
		}
	}
	scenario := h.defaultScenario
	if req.Scenario != "" {
		s, err := tax.ParseScenario(req.Scenario)
		if err != nil {
			return "", tax.RawInputs{}, err
		}
		scenario = s
	}
	in := req.Inputs
	return scenario, tax.RawInputs{
		TotalSales:     in.TotalSales,
		DiscountRate:   in.DiscountRate,
		DiscountAmount: in.DiscountAmount,
		TotalPurchase:  in.TotalPurchase,
		TotalPeople:    in.TotalPeople,
		CardHolders:    in.CardHolders,
		AddedVat:       in.AddedVat,
		WithholdingTax: in.WithholdingTax,
	}, nil
}

func (h *CalculatorHandler) badRequest(c *fiber.Ctx, err error) error {
	h.log.Warn().Err(err).Str("path", c.Path()).Msg("solicitud de cálculo rechazada")
	if errors.Is(err, domain.ErrUnknownScenario) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SCENARIO", Message: "escenario desconocido"})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func toResponse(res calculator.Result, currency string) dto.CalculateResponse {
	out := res.Outputs
	amounts := dto.CalculateAmounts{
		VatableSales:   out.VatableSales,
		Vat:            out.Vat,
		ZeroRatedSales: out.ZeroRatedSales,
		VatExemptSales: out.VatExemptSales,
		TotalSales:     out.TotalSales,
		LessVat:        out.LessVat,
		AmountNetOfVat: out.AmountNetOfVat,
		Discount:       out.Discount,
		AddedVat:       out.AddedVat,
		WithholdingTax: out.WithholdingTax,
		TotalAmountDue: out.TotalAmountDue,
	}
	if out.PerPerson.Valid {
		pp := out.PerPerson.Decimal
		amounts.PerPerson = &pp
	}

	display := make(map[string]string, len(res.View.Outputs))
	for slot, text := range res.View.Outputs {
		display[string(slot)] = text
	}

	return dto.CalculateResponse{
		Scenario:      res.Scenario.String(),
		Amounts:       amounts,
		Display:       display,
		VisibleFields: fieldNames(res.View.VisibleFields()),
		PerPerson:     res.View.PerPerson,
		Currency:      currency,
	}
}

func fieldNames(fields []tax.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, string(f))
	}
	return out
}
