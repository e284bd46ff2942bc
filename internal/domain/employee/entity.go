package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaysPerMonth is the divisor for daily salary. It is fixed regardless of the
// real month or half length.
const DaysPerMonth = 30

type Status string

const (
	StatusActive   Status = "Activo"
	StatusArchived Status = "Archivado"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusArchived
}

type Employee struct {
	ID          string
	ExternalID  string
	Name        string
	Email       string
	RFC         string
	CURP        string
	NSS         string
	CLABE       string
	BranchID    string
	Position    string
	Rank        string
	GrossSalary decimal.Decimal
	DailySalary decimal.Decimal
	HireDate    time.Time
	Status      Status
	AvatarURL   *string
	ArchivedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DailySalaryFor derives the daily salary from a monthly gross salary.
func DailySalaryFor(gross decimal.Decimal) decimal.Decimal {
	return gross.Div(decimal.NewFromInt(DaysPerMonth))
}

// SetGrossSalary is the only way to change salary; it keeps DailySalary in step.
func (e *Employee) SetGrossSalary(gross decimal.Decimal) {
	e.GrossSalary = gross
	e.DailySalary = DailySalaryFor(gross)
}

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

// Archive flips an active employee to archived. There is no way back.
func (e *Employee) Archive(at time.Time) error {
	if e.Status == StatusArchived {
		return ErrEmployeeAlreadyArchived
	}
	e.Status = StatusArchived
	e.ArchivedAt = &at
	e.UpdatedAt = at
	return nil
}

// WasActiveOn reports whether the employee was on payroll at the given instant.
func (e *Employee) WasActiveOn(t time.Time) bool {
	if e.HireDate.After(t) {
		return false
	}
	if e.ArchivedAt != nil && !e.ArchivedAt.After(t) {
		return false
	}
	return true
}
