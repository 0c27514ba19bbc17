package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/calculadora-vat/internal/application/calculator"
	"github.com/jhoicas/calculadora-vat/internal/domain/tax"
	"github.com/jhoicas/calculadora-vat/internal/infrastructure/format"
	"github.com/jhoicas/calculadora-vat/internal/infrastructure/pdf"
)

func TestGenerateSummaryPDF_DevuelvePDF(t *testing.T) {
	gen := pdf.NewMarotoSummaryGenerator(format.NewPesoFormatter())
	in := tax.RawInputs{TotalPurchase: "2240", TotalPeople: "2", CardHolders: "1"}

	doc, err := gen.GenerateSummaryPDF(context.Background(), calculator.Summary{
		Scenario:    tax.ScenarioPWDGroup,
		Inputs:      in,
		Outputs:     tax.Compute(tax.ScenarioPWDGroup, in),
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "el documento debe iniciar con la firma %PDF")
}
