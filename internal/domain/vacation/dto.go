package vacation

import (
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/validator"
)

type RequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DaysRequested int     `json:"days_requested"`
	Status        string  `json:"status"`
	RequestedAt   string  `json:"requested_at"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
}

func ToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		StartDate:     period.DayKey(r.StartDate),
		EndDate:       period.DayKey(r.EndDate),
		DaysRequested: r.DaysRequested,
		Status:        string(r.Status),
		RequestedAt:   r.RequestedAt.Format(time.RFC3339),
		ReviewedBy:    r.ReviewedBy,
	}
	if r.ReviewedAt != nil {
		s := r.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &s
	}
	return resp
}

type StatsResponse struct {
	YearsOfService int `json:"years_of_service"`
	AccruedDays    int `json:"accrued_days"`
	TakenDays      int `json:"taken_days"`
	AvailableDays  int `json:"available_days"`
}

type EmployeeVacationsResponse struct {
	EmployeeID string            `json:"employee_id"`
	Stats      StatsResponse     `json:"stats"`
	Requests   []RequestResponse `json:"requests"`
}

func ToEmployeeVacationsResponse(employeeID string, stats Stats, requests []Request) EmployeeVacationsResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, ToResponse(r))
	}
	return EmployeeVacationsResponse{
		EmployeeID: employeeID,
		Stats: StatsResponse{
			YearsOfService: stats.YearsOfService,
			AccruedDays:    stats.AccruedDays,
			TakenDays:      stats.TakenDays,
			AvailableDays:  stats.AvailableDays,
		},
		Requests: out,
	}
}

type CreateRequestRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: ErrInvalidDateRange.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewRequest struct {
	ID       string `json:"-"`
	Decision string `json:"status"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if s := Status(r.Decision); s != StatusApproved && s != StatusRejected {
		errs = append(errs, validator.ValidationError{Field: "status", Message: ErrInvalidDecision.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
