package period

import (
	"time"

	"github.com/shopspring/decimal"
)

type Half int

const (
	HalfFirst  Half = 1
	HalfSecond Half = 2
)

type Status string

const (
	StatusOpen       Status = "Abierta"
	StatusInProgress Status = "En Progreso"
	StatusClosed     Status = "Cerrada"
)

// Info describes the semi-monthly window a reference date falls in.
type Info struct {
	Year         int
	Month        time.Month
	MonthName    string
	Half         Half
	StartDay     int
	EndDay       int
	DisplayRange string
	Identifier   string
	Status       Status
}

// Record is the history entry written when a period is closed.
type Record struct {
	Identifier     string
	DisplayRange   string
	Status         Status
	EmployeesPaid  int
	TotalEarnings  decimal.Decimal
	TotalNetPay    decimal.Decimal
	ClosedAt       time.Time
	ClosedBy       string
	NextIdentifier string
}
