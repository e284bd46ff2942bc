package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/shopspring/decimal"
)

// MonthRow is one month of the workforce report. The probe is mid-month.
type MonthRow struct {
	Year         int
	Month        time.Month
	Label        string
	Headcount    int
	Hires        int
	Terminations int
	Cost         decimal.Decimal
	Bonuses      decimal.Decimal
	CostByBranch map[string]decimal.Decimal
}

type KPIs struct {
	TotalCost         decimal.Decimal
	TotalBonuses      decimal.Decimal
	AverageHeadcount  decimal.Decimal
	FinalHeadcount    int
	TotalHires        int
	TotalTerminations int
}

type Workforce struct {
	Months []MonthRow
	KPIs   KPIs
}

func sameMonth(t time.Time, year int, month time.Month) bool {
	y, m, _ := t.In(period.Location).Date()
	return y == year && m == month
}

// BuildWorkforce computes the report for the months ending at (endYear,
// endMonth). employees must already be narrowed to the caller's scope.
// Incidents of employees outside that set are ignored.
func BuildWorkforce(employees []employee.Employee, incidents []incident.Incident, endYear int, endMonth time.Month, months int) Workforce {
	byEmployee := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byEmployee[e.ID] = e
	}

	first := time.Date(endYear, endMonth-time.Month(months-1), 1, 0, 0, 0, 0, period.Location)
	rows := make([]MonthRow, 0, months)
	kpis := KPIs{TotalCost: decimal.Zero, TotalBonuses: decimal.Zero, AverageHeadcount: decimal.Zero}
	headcountSum := 0

	for i := 0; i < months; i++ {
		start := first.AddDate(0, i, 0)
		year, month := start.Year(), start.Month()
		probe := time.Date(year, month, 15, 12, 0, 0, 0, period.Location)

		row := MonthRow{
			Year:         year,
			Month:        month,
			Label:        fmt.Sprintf("%s %d", period.MonthName(month), year),
			Cost:         decimal.Zero,
			Bonuses:      decimal.Zero,
			CostByBranch: map[string]decimal.Decimal{},
		}

		for _, e := range employees {
			if e.WasActiveOn(probe) {
				row.Headcount++
				row.Cost = row.Cost.Add(e.GrossSalary)
				row.CostByBranch[e.BranchID] = row.CostByBranch[e.BranchID].Add(e.GrossSalary)
			}
			if sameMonth(e.HireDate, year, month) {
				row.Hires++
			}
			if e.ArchivedAt != nil && sameMonth(*e.ArchivedAt, year, month) {
				row.Terminations++
			}
		}

		periodIDs := period.MonthIdentifiers(year, month)
		for _, inc := range incidents {
			e, ok := byEmployee[inc.EmployeeID]
			if !ok || (inc.PeriodID != periodIDs[0] && inc.PeriodID != periodIDs[1]) {
				continue
			}
			if inc.IsEarning() {
				row.Cost = row.Cost.Add(inc.Amount)
				row.CostByBranch[e.BranchID] = row.CostByBranch[e.BranchID].Add(inc.Amount)
			}
			if inc.Kind == incident.KindBonus {
				row.Bonuses = row.Bonuses.Add(inc.Amount)
			}
		}

		kpis.TotalCost = kpis.TotalCost.Add(row.Cost)
		kpis.TotalBonuses = kpis.TotalBonuses.Add(row.Bonuses)
		kpis.TotalHires += row.Hires
		kpis.TotalTerminations += row.Terminations
		headcountSum += row.Headcount
		rows = append(rows, row)
	}

	if len(rows) > 0 {
		kpis.FinalHeadcount = rows[len(rows)-1].Headcount
		kpis.AverageHeadcount = decimal.NewFromInt(int64(headcountSum)).
			Div(decimal.NewFromInt(int64(len(rows)))).
			Round(2)
	}

	return Workforce{Months: rows, KPIs: kpis}
}

// BranchHeadcount is the active/archived split of one branch.
type BranchHeadcount struct {
	BranchID string
	Active   int
	Archived int
}

// HeadcountByBranch groups employees by branch, ordered by branch ID.
func HeadcountByBranch(employees []employee.Employee) []BranchHeadcount {
	index := map[string]*BranchHeadcount{}
	for _, e := range employees {
		h, ok := index[e.BranchID]
		if !ok {
			h = &BranchHeadcount{BranchID: e.BranchID}
			index[e.BranchID] = h
		}
		if e.IsActive() {
			h.Active++
		} else {
			h.Archived++
		}
	}

	out := make([]BranchHeadcount, 0, len(index))
	for _, h := range index {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BranchID < out[j].BranchID })
	return out
}

// MonthKey formats a calendar month as YYYY-MM.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}
