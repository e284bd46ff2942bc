package incident

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindBonus     Kind = "Bono"
	KindOvertime  Kind = "Horas Extra"
	KindDeduction Kind = "Deducción"
	KindAdvance   Kind = "Anticipo"
	KindHoliday   Kind = "Festivo"
	KindAbsence   Kind = "Falta (Deducción)"
)

var Kinds = []Kind{KindBonus, KindOvertime, KindDeduction, KindAdvance, KindHoliday, KindAbsence}

func (k Kind) IsValid() bool {
	for _, v := range Kinds {
		if v == k {
			return true
		}
	}
	return false
}

// Incident is one signed earnings (> 0) or deduction (< 0) line of an
// employee in one period. It is never mutated after creation.
type Incident struct {
	ID         string
	EmployeeID string
	PeriodID   string
	Kind       Kind
	Amount     decimal.Decimal
	Comment    string
	CreatedBy  string
	CreatedAt  time.Time
}

func (i Incident) IsEarning() bool {
	return i.Amount.IsPositive()
}

func (i Incident) IsDeduction() bool {
	return i.Amount.IsNegative()
}

// ForEmployeePeriod returns the incidents of one employee in one period.
func ForEmployeePeriod(pool []Incident, employeeID, periodID string) []Incident {
	out := make([]Incident, 0)
	for _, inc := range pool {
		if inc.EmployeeID == employeeID && inc.PeriodID == periodID {
			out = append(out, inc)
		}
	}
	return out
}

// AbsenceAmount is the deduction for one missed day.
func AbsenceAmount(dailySalary decimal.Decimal) decimal.Decimal {
	return dailySalary.Abs().Neg()
}
