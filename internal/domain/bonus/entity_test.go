package bonus

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTemplate_AmountFor(t *testing.T) {
	t.Parallel()

	gross := decimal.NewFromInt(48000)

	fixed := Template{Kind: CalculationFixed, Value: decimal.NewFromInt(2500)}
	assert.True(t, decimal.NewFromInt(2500).Equal(fixed.AmountFor(gross)))

	pct := Template{Kind: CalculationPercentage, Value: decimal.NewFromInt(5)}
	assert.True(t, decimal.NewFromInt(2400).Equal(pct.AmountFor(gross)))
}

func TestAssignRequest_Validate(t *testing.T) {
	t.Parallel()

	zero := decimal.Zero
	req := AssignRequest{
		TemplateID: "1",
		Targets:    []AssignTarget{{EmployeeID: "2", Amount: &zero}},
	}
	assert.Error(t, req.Validate())

	req = AssignRequest{TemplateID: "1"}
	assert.Error(t, req.Validate())

	req = AssignRequest{TemplateID: "1", Targets: []AssignTarget{{EmployeeID: "2"}}}
	assert.NoError(t, req.Validate())
}

func TestCreateTemplateRequest_Validate(t *testing.T) {
	t.Parallel()

	req := CreateTemplateRequest{Name: "Bono", Kind: string(CalculationPercentage), Value: decimal.NewFromInt(150)}
	assert.Error(t, req.Validate())

	req.Value = decimal.NewFromInt(10)
	assert.NoError(t, req.Validate())

	req.Kind = "Otro"
	assert.Error(t, req.Validate())
}
