// Package fixtures loads the demo dataset that seeds the in-memory store and
// the `nominactl seed` command.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/bonus"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Dataset is a fully typed snapshot ready to be copied into a store.
type Dataset struct {
	ReferenceDate  time.Time
	Branches       []branch.Branch
	Employees      []employee.Employee
	Users          []user.User
	Incidents      []incident.Incident
	BonusTemplates []bonus.Template
	Vacations      []vacation.Request
	Attendance     []attendance.DayLog
}

// ==========================================
// YAML SHAPES
// ==========================================

type seedFile struct {
	ReferenceDate  string         `yaml:"reference_date"`
	Branches       []seedBranch   `yaml:"branches"`
	Employees      []seedEmployee `yaml:"employees"`
	Users          []seedUser     `yaml:"users"`
	Incidents      []seedIncident `yaml:"incidents"`
	BonusTemplates []seedTemplate `yaml:"bonus_templates"`
	Vacations      []seedVacation `yaml:"vacation_requests"`
	Attendance     []seedDayLog   `yaml:"attendance"`
}

type seedBranch struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

type seedEmployee struct {
	ID          string `yaml:"id"`
	ExternalID  string `yaml:"external_id"`
	Name        string `yaml:"name"`
	Email       string `yaml:"email"`
	RFC         string `yaml:"rfc"`
	CURP        string `yaml:"curp"`
	NSS         string `yaml:"nss"`
	CLABE       string `yaml:"clabe"`
	BranchID    string `yaml:"branch_id"`
	Position    string `yaml:"position"`
	Rank        string `yaml:"rank"`
	GrossSalary string `yaml:"gross_salary"`
	HireDate    string `yaml:"hire_date"`
	Status      string `yaml:"status"`
	ArchivedAt  string `yaml:"archived_at"`
	AvatarURL   string `yaml:"avatar_url"`
}

type seedUser struct {
	ID                string   `yaml:"id"`
	Name              string   `yaml:"name"`
	Email             string   `yaml:"email"`
	Password          string   `yaml:"password"`
	Role              string   `yaml:"role"`
	AvatarURL         string   `yaml:"avatar_url"`
	AssignedBranchIDs []string `yaml:"assigned_branch_ids"`
	EmployeeID        string   `yaml:"employee_id"`
}

type seedIncident struct {
	ID         string `yaml:"id"`
	EmployeeID string `yaml:"employee_id"`
	Period     string `yaml:"period"`
	Type       string `yaml:"type"`
	Amount     string `yaml:"amount"`
	Comment    string `yaml:"comment"`
}

type seedTemplate struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	CalculationType string `yaml:"calculation_type"`
	Value           string `yaml:"value"`
	Description     string `yaml:"description"`
}

type seedVacation struct {
	ID            string `yaml:"id"`
	EmployeeID    string `yaml:"employee_id"`
	StartDate     string `yaml:"start_date"`
	EndDate       string `yaml:"end_date"`
	DaysRequested int    `yaml:"days_requested"`
	Status        string `yaml:"status"`
	RequestedAt   string `yaml:"requested_at"`
	ReviewedBy    string `yaml:"reviewed_by"`
	ReviewedAt    string `yaml:"reviewed_at"`
}

type seedDayLog struct {
	EmployeeID string `yaml:"employee_id"`
	Date       string `yaml:"date"`
	ClockIn    string `yaml:"clock_in"`
	ClockOut   string `yaml:"clock_out"`
}

// ==========================================
// LOADING
// ==========================================

var (
	defaultOnce    sync.Once
	defaultDataset *Dataset
	defaultErr     error
)

// Default returns the embedded dataset. It is parsed once; callers must copy
// before mutating.
func Default() (*Dataset, error) {
	defaultOnce.Do(func() {
		defaultDataset, defaultErr = Parse(defaultSeed)
	})
	return defaultDataset, defaultErr
}

// MustDefault is Default for tests and seeding tools. It panics when the
// embedded seed does not parse.
func MustDefault() *Dataset {
	ds, err := Default()
	if err != nil {
		panic(err)
	}
	return ds
}

// Load reads a dataset from path, or the embedded one when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML into a Dataset. Plain-text passwords are bcrypt-hashed
// and daily salaries are derived from gross.
func Parse(data []byte) (*Dataset, error) {
	var raw seedFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	ds := &Dataset{}
	var err error

	if ds.ReferenceDate, err = period.ParseReferenceDate(raw.ReferenceDate); err != nil {
		return nil, fmt.Errorf("reference_date: %w", err)
	}

	for _, b := range raw.Branches {
		ds.Branches = append(ds.Branches, branch.Branch{ID: b.ID, Name: b.Name, Code: b.Code})
	}

	for _, e := range raw.Employees {
		emp, err := e.toEmployee()
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", e.ID, err)
		}
		ds.Employees = append(ds.Employees, emp)
	}

	for _, u := range raw.Users {
		usr, err := u.toUser(ds.ReferenceDate)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", u.ID, err)
		}
		ds.Users = append(ds.Users, usr)
	}

	for _, i := range raw.Incidents {
		inc, err := i.toIncident(ds.ReferenceDate)
		if err != nil {
			return nil, fmt.Errorf("incident %s: %w", i.ID, err)
		}
		ds.Incidents = append(ds.Incidents, inc)
	}

	for _, t := range raw.BonusTemplates {
		value, err := decimal.NewFromString(t.Value)
		if err != nil {
			return nil, fmt.Errorf("bonus template %s: %w", t.ID, err)
		}
		kind := bonus.CalculationKind(t.CalculationType)
		if !kind.IsValid() {
			return nil, fmt.Errorf("bonus template %s: unknown calculation type %q", t.ID, t.CalculationType)
		}
		ds.BonusTemplates = append(ds.BonusTemplates, bonus.Template{
			ID:          t.ID,
			Name:        t.Name,
			Kind:        kind,
			Value:       value,
			Description: t.Description,
			CreatedAt:   ds.ReferenceDate,
		})
	}

	for _, v := range raw.Vacations {
		req, err := v.toRequest()
		if err != nil {
			return nil, fmt.Errorf("vacation request %s: %w", v.ID, err)
		}
		ds.Vacations = append(ds.Vacations, req)
	}

	for _, a := range raw.Attendance {
		log, err := a.toDayLog()
		if err != nil {
			return nil, fmt.Errorf("attendance %s/%s: %w", a.EmployeeID, a.Date, err)
		}
		ds.Attendance = append(ds.Attendance, log)
	}

	return ds, nil
}

func (e seedEmployee) toEmployee() (employee.Employee, error) {
	gross, err := decimal.NewFromString(e.GrossSalary)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("gross_salary: %w", err)
	}
	hire, err := period.ParseReferenceDate(e.HireDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("hire_date: %w", err)
	}

	emp := employee.Employee{
		ID:         e.ID,
		ExternalID: e.ExternalID,
		Name:       e.Name,
		Email:      e.Email,
		RFC:        e.RFC,
		CURP:       e.CURP,
		NSS:        e.NSS,
		CLABE:      e.CLABE,
		BranchID:   e.BranchID,
		Position:   e.Position,
		Rank:       e.Rank,
		HireDate:   hire,
		Status:     employee.StatusActive,
		AvatarURL:  optional(e.AvatarURL),
		CreatedAt:  hire,
		UpdatedAt:  hire,
	}
	emp.SetGrossSalary(gross)

	if employee.Status(e.Status) == employee.StatusArchived {
		at := hire
		if e.ArchivedAt != "" {
			if at, err = period.ParseReferenceDate(e.ArchivedAt); err != nil {
				return employee.Employee{}, fmt.Errorf("archived_at: %w", err)
			}
		}
		if err := emp.Archive(at); err != nil {
			return employee.Employee{}, err
		}
	}
	return emp, nil
}

func (u seedUser) toUser(createdAt time.Time) (user.User, error) {
	role := user.Role(u.Role)
	if !role.IsValid() {
		return user.User{}, user.ErrInvalidRole
	}

	usr := user.User{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              role,
		AvatarURL:         optional(u.AvatarURL),
		AssignedBranchIDs: u.AssignedBranchIDs,
		EmployeeID:        optional(u.EmployeeID),
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
	if u.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, err
		}
		s := string(hash)
		usr.PasswordHash = &s
	}
	return usr, nil
}

func (i seedIncident) toIncident(createdAt time.Time) (incident.Incident, error) {
	amount, err := decimal.NewFromString(i.Amount)
	if err != nil {
		return incident.Incident{}, fmt.Errorf("amount: %w", err)
	}
	if _, err := period.ParseIdentifier(i.Period); err != nil {
		return incident.Incident{}, err
	}
	kind := incident.Kind(i.Type)
	if !kind.IsValid() {
		return incident.Incident{}, fmt.Errorf("unknown incident type %q", i.Type)
	}
	return incident.Incident{
		ID:         i.ID,
		EmployeeID: i.EmployeeID,
		PeriodID:   i.Period,
		Kind:       kind,
		Amount:     amount,
		Comment:    i.Comment,
		CreatedAt:  createdAt,
	}, nil
}

func (v seedVacation) toRequest() (vacation.Request, error) {
	start, err := period.ParseReferenceDate(v.StartDate)
	if err != nil {
		return vacation.Request{}, err
	}
	end, err := period.ParseReferenceDate(v.EndDate)
	if err != nil {
		return vacation.Request{}, err
	}
	requestedAt, err := time.Parse(time.RFC3339, v.RequestedAt)
	if err != nil {
		return vacation.Request{}, err
	}

	req := vacation.Request{
		ID:            v.ID,
		EmployeeID:    v.EmployeeID,
		StartDate:     start,
		EndDate:       end,
		DaysRequested: v.DaysRequested,
		Status:        vacation.Status(v.Status),
		RequestedAt:   requestedAt,
		ReviewedBy:    optional(v.ReviewedBy),
	}
	if v.ReviewedAt != "" {
		reviewedAt, err := time.Parse(time.RFC3339, v.ReviewedAt)
		if err != nil {
			return vacation.Request{}, err
		}
		req.ReviewedAt = &reviewedAt
	}
	return req, nil
}

func (a seedDayLog) toDayLog() (attendance.DayLog, error) {
	log := attendance.DayLog{EmployeeID: a.EmployeeID, Date: a.Date}
	if a.ClockIn != "" {
		in, err := time.Parse(time.RFC3339, a.ClockIn)
		if err != nil {
			return attendance.DayLog{}, err
		}
		log.ClockIn = &in
		log.UpdatedAt = in
	}
	if a.ClockOut != "" {
		out, err := time.Parse(time.RFC3339, a.ClockOut)
		if err != nil {
			return attendance.DayLog{}, err
		}
		log.ClockOut = &out
		log.UpdatedAt = out
	}
	return log, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
