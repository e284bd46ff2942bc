package payslip

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ProducesPDF(t *testing.T) {
	t.Parallel()

	// Setup
	doc := Document{
		EmployeeName:    "Carlos Rodríguez López",
		ExternalID:      "EMP-002",
		Position:        "Desarrollador Senior",
		BranchName:      "Sucursal Monterrey",
		PeriodID:        "2024-07-Q2",
		DisplayRange:    "16 - 31 de Julio",
		Policy:          "flat_rate_simulated",
		BaseSalary:      decimal.NewFromInt(24000),
		Earnings:        []Line{{Concept: "Bono", Amount: decimal.NewFromInt(2500)}},
		TotalEarnings:   decimal.NewFromInt(26500),
		ISR:             decimal.NewFromInt(5300),
		IMSS:            decimal.NewFromInt(1325),
		TotalDeductions: decimal.NewFromInt(6625),
		NetPay:          decimal.NewFromInt(19875),
	}

	// Act
	out, err := Render(doc)

	// Assert
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 500)
}

func TestRender_EmptyDocument(t *testing.T) {
	t.Parallel()

	out, err := Render(Document{})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestMoney(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$19875.00", money(decimal.NewFromInt(19875)))
	assert.Equal(t, "$-11750.00", money(decimal.NewFromInt(-11750)))
}
