package report

import (
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	DefaultMonths = 12
	MaxMonths     = 24
)

// ========================================
// WORKFORCE REPORT
// ========================================

type WorkforceRequest struct {
	Months   int    `json:"months"`
	BranchID string `json:"branch_id,omitempty"`
}

func (r *WorkforceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Months == 0 {
		r.Months = DefaultMonths
	}
	if r.Months < 1 || r.Months > MaxMonths {
		errs = append(errs, validator.ValidationError{
			Field:   "months",
			Message: "months must be between 1 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthResponse struct {
	Month        string                     `json:"month"`
	Label        string                     `json:"label"`
	Headcount    int                        `json:"headcount"`
	Hires        int                        `json:"hires"`
	Terminations int                        `json:"terminations"`
	Cost         decimal.Decimal            `json:"cost"`
	Bonuses      decimal.Decimal            `json:"bonuses"`
	CostByBranch map[string]decimal.Decimal `json:"cost_by_branch"`
}

type KPIResponse struct {
	TotalCost         decimal.Decimal `json:"total_cost"`
	TotalBonuses      decimal.Decimal `json:"total_bonuses"`
	AverageHeadcount  decimal.Decimal `json:"average_headcount"`
	FinalHeadcount    int             `json:"final_headcount"`
	TotalHires        int             `json:"total_hires"`
	TotalTerminations int             `json:"total_terminations"`
}

type WorkforceResponse struct {
	BranchID string          `json:"branch_id,omitempty"`
	Months   []MonthResponse `json:"months"`
	KPIs     KPIResponse     `json:"kpis"`
}

func ToWorkforceResponse(w Workforce, branchID string) WorkforceResponse {
	months := make([]MonthResponse, 0, len(w.Months))
	for _, m := range w.Months {
		months = append(months, MonthResponse{
			Month:        MonthKey(m.Year, m.Month),
			Label:        m.Label,
			Headcount:    m.Headcount,
			Hires:        m.Hires,
			Terminations: m.Terminations,
			Cost:         m.Cost,
			Bonuses:      m.Bonuses,
			CostByBranch: m.CostByBranch,
		})
	}
	return WorkforceResponse{
		BranchID: branchID,
		Months:   months,
		KPIs: KPIResponse{
			TotalCost:         w.KPIs.TotalCost,
			TotalBonuses:      w.KPIs.TotalBonuses,
			AverageHeadcount:  w.KPIs.AverageHeadcount,
			FinalHeadcount:    w.KPIs.FinalHeadcount,
			TotalHires:        w.KPIs.TotalHires,
			TotalTerminations: w.KPIs.TotalTerminations,
		},
	}
}

// ========================================
// HEADCOUNT BY BRANCH
// ========================================

type BranchHeadcountResponse struct {
	BranchID   string `json:"branch_id"`
	BranchName string `json:"branch_name"`
	Active     int    `json:"active"`
	Archived   int    `json:"archived"`
}

type HeadcountResponse struct {
	Branches      []BranchHeadcountResponse `json:"branches"`
	TotalActive   int                       `json:"total_active"`
	TotalArchived int                       `json:"total_archived"`
}
