package vacation

import (
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
)

type Status string

const (
	StatusPending  Status = "Pendiente"
	StatusApproved Status = "Aprobada"
	StatusRejected Status = "Rechazada"
)

type Request struct {
	ID            string
	EmployeeID    string
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested int
	Status        Status
	RequestedAt   time.Time
	ReviewedBy    *string
	ReviewedAt    *time.Time
}

// Review moves a pending request to approved or rejected.
func (r *Request) Review(decision Status, reviewer string, at time.Time) error {
	if r.Status != StatusPending {
		return ErrRequestAlreadyReviewed
	}
	if decision != StatusApproved && decision != StatusRejected {
		return ErrInvalidDecision
	}
	r.Status = decision
	r.ReviewedBy = &reviewer
	r.ReviewedAt = &at
	return nil
}

// tenureRule grants Days for completed years in [MinYears, MaxYears].
type tenureRule struct {
	MinYears int
	MaxYears int
	Days     int
}

// LFT article 76 as amended in 2023.
var tenureRules = []tenureRule{
	{1, 1, 12},
	{2, 2, 14},
	{3, 3, 16},
	{4, 4, 18},
	{5, 5, 20},
	{6, 10, 22},
	{11, 15, 24},
	{16, 20, 26},
	{21, 25, 28},
	{26, 30, 30},
}

const maxAccruedDays = 32

// AccruedDays returns the yearly vacation days for completedYears of service.
func AccruedDays(completedYears int) int {
	if completedYears < 1 {
		return 0
	}
	for _, rule := range tenureRules {
		if completedYears >= rule.MinYears && completedYears <= rule.MaxYears {
			return rule.Days
		}
	}
	return maxAccruedDays
}

// YearsOfService counts full years between hire and asOf. A year completes on
// the anniversary month and day.
func YearsOfService(hire, asOf time.Time) int {
	hy, hm, hd := hire.In(period.Location).Date()
	ay, am, ad := asOf.In(period.Location).Date()

	years := ay - hy
	if am < hm || (am == hm && ad < hd) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// Weekdays counts Monday to Friday in the inclusive civil range.
func Weekdays(start, end time.Time) int {
	sy, sm, sd := start.In(period.Location).Date()
	ey, em, ed := end.In(period.Location).Date()
	day := time.Date(sy, sm, sd, 12, 0, 0, 0, period.Location)
	last := time.Date(ey, em, ed, 12, 0, 0, 0, period.Location)

	n := 0
	for !day.After(last) {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n++
		}
		day = day.AddDate(0, 0, 1)
	}
	return n
}

// Stats is an employee's vacation balance at a reference date.
type Stats struct {
	YearsOfService int
	AccruedDays    int
	TakenDays      int
	AvailableDays  int
}

func ComputeStats(hire, asOf time.Time, requests []Request) Stats {
	years := YearsOfService(hire, asOf)
	accrued := AccruedDays(years)
	taken := 0
	for _, r := range requests {
		if r.Status == StatusApproved {
			taken += r.DaysRequested
		}
	}
	return Stats{
		YearsOfService: years,
		AccruedDays:    accrued,
		TakenDays:      taken,
		AvailableDays:  accrued - taken,
	}
}
