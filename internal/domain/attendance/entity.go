package attendance

import (
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/shopspring/decimal"
)

type DailyStatus string

const (
	DailyPresent  DailyStatus = "Presente"
	DailyFinished DailyStatus = "Jornada Finalizada"
	DailyAbsent   DailyStatus = "Ausente"
)

type DayStatus string

const (
	DayWeekend    DayStatus = "Fin de Semana"
	DayAttended   DayStatus = "Asistencia"
	DayIncomplete DayStatus = "Incompleto"
	DayMissed     DayStatus = "Falta"
)

// ClockAction tells which side of the day a clock call recorded.
type ClockAction string

const (
	ActionClockIn  ClockAction = "clock_in"
	ActionClockOut ClockAction = "clock_out"
)

// DayLog is one employee's clock record for one civil date (YYYY-MM-DD in
// period.Location).
type DayLog struct {
	EmployeeID string
	Date       string
	ClockIn    *time.Time
	ClockOut   *time.Time
	UpdatedAt  time.Time
}

// Clock records the next missing timestamp. The first call sets ClockIn, the
// second ClockOut, and any further call fails with ErrDayComplete.
func (d *DayLog) Clock(at time.Time) (ClockAction, error) {
	switch {
	case d.ClockIn == nil:
		d.ClockIn = &at
		d.UpdatedAt = at
		return ActionClockIn, nil
	case d.ClockOut == nil:
		if at.Before(*d.ClockIn) {
			return "", ErrClockOutBeforeIn
		}
		d.ClockOut = &at
		d.UpdatedAt = at
		return ActionClockOut, nil
	default:
		return "", ErrDayComplete
	}
}

func (d DayLog) Status() DailyStatus {
	switch {
	case d.ClockIn != nil && d.ClockOut == nil:
		return DailyPresent
	case d.ClockIn != nil && d.ClockOut != nil:
		return DailyFinished
	default:
		return DailyAbsent
	}
}

// HoursWorked is out minus in, or zero while the day is open.
func (d DayLog) HoursWorked() decimal.Decimal {
	if d.ClockIn == nil || d.ClockOut == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(d.ClockOut.Sub(*d.ClockIn).Hours())
}

var weekdayNames = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

// MonthDay is one row of the monthly attendance report.
type MonthDay struct {
	Date        string
	DayName     string
	ClockIn     *time.Time
	ClockOut    *time.Time
	HoursWorked decimal.Decimal
	Status      DayStatus
}

type MonthSummary struct {
	WorkedDays int
	Absences   int
	TotalHours decimal.Decimal
}

// MonthReport builds the day-by-day report of a calendar month from an
// employee's logs keyed by date.
func MonthReport(year int, month time.Month, logs map[string]DayLog) ([]MonthDay, MonthSummary) {
	days := period.DaysIn(year, month)
	rows := make([]MonthDay, 0, days)
	summary := MonthSummary{TotalHours: decimal.Zero}

	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, period.Location)
		key := date.Format(period.DateLayout)
		log := logs[key]

		row := MonthDay{
			Date:        key,
			DayName:     weekdayNames[date.Weekday()],
			ClockIn:     log.ClockIn,
			ClockOut:    log.ClockOut,
			HoursWorked: log.HoursWorked(),
		}

		switch {
		case date.Weekday() == time.Saturday || date.Weekday() == time.Sunday:
			row.Status = DayWeekend
		case log.ClockIn != nil && log.ClockOut != nil:
			row.Status = DayAttended
		case log.ClockIn != nil:
			row.Status = DayIncomplete
		default:
			row.Status = DayMissed
		}

		switch row.Status {
		case DayAttended, DayIncomplete:
			summary.WorkedDays++
		case DayMissed:
			summary.Absences++
		}
		summary.TotalHours = summary.TotalHours.Add(row.HoursWorked)

		rows = append(rows, row)
	}

	return rows, summary
}
