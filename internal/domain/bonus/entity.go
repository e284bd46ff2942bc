package bonus

import (
	"time"

	"github.com/shopspring/decimal"
)

type CalculationKind string

const (
	CalculationFixed      CalculationKind = "Monto Fijo"
	CalculationPercentage CalculationKind = "Porcentaje de Salario"
)

func (k CalculationKind) IsValid() bool {
	return k == CalculationFixed || k == CalculationPercentage
}

// Template is a reusable bonus definition applied in batches.
type Template struct {
	ID          string
	Name        string
	Kind        CalculationKind
	Value       decimal.Decimal
	Description string
	CreatedAt   time.Time
}

var hundred = decimal.NewFromInt(100)

// AmountFor returns the bonus for a monthly gross salary. A percentage
// template applies to the full monthly gross, not the half.
func (t Template) AmountFor(gross decimal.Decimal) decimal.Decimal {
	if t.Kind == CalculationPercentage {
		return gross.Mul(t.Value).Div(hundred)
	}
	return t.Value
}
