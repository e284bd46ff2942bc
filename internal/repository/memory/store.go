// Package memory is a mutex-guarded repository backend seeded from fixtures.
// Every read returns copies, so callers never alias stored state.
package memory

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/bonus"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/incident"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
)

type Store struct {
	mu sync.RWMutex

	referenceDate time.Time
	branches      []branch.Branch
	employees     []employee.Employee
	users         []user.User
	incidents     []incident.Incident
	templates     []bonus.Template
	vacations     []vacation.Request
	// employee ID -> date -> log
	attendance map[string]map[string]attendance.DayLog
	// period ID -> employee ID
	payments   map[string]map[string]payroll.Payment
	signatures map[string]map[string]payroll.Signature
	records    []period.Record
}

// NewStore copies ds into a fresh store. A nil dataset gives an empty store
// whose reference date must be set before payroll operations.
func NewStore(ds *fixtures.Dataset) *Store {
	s := &Store{
		attendance: map[string]map[string]attendance.DayLog{},
		payments:   map[string]map[string]payroll.Payment{},
		signatures: map[string]map[string]payroll.Signature{},
	}
	if ds == nil {
		return s
	}

	s.referenceDate = ds.ReferenceDate
	s.branches = append(s.branches, ds.Branches...)
	for _, e := range ds.Employees {
		s.employees = append(s.employees, cloneEmployee(e))
	}
	for _, u := range ds.Users {
		s.users = append(s.users, cloneUser(u))
	}
	s.incidents = append(s.incidents, ds.Incidents...)
	s.templates = append(s.templates, ds.BonusTemplates...)
	s.vacations = append(s.vacations, ds.Vacations...)
	for _, log := range ds.Attendance {
		s.putDayLog(log)
	}
	return s
}

func (s *Store) putDayLog(log attendance.DayLog) {
	days, ok := s.attendance[log.EmployeeID]
	if !ok {
		days = map[string]attendance.DayLog{}
		s.attendance[log.EmployeeID] = days
	}
	days[log.Date] = log
}

func cloneEmployee(e employee.Employee) employee.Employee {
	if e.ArchivedAt != nil {
		at := *e.ArchivedAt
		e.ArchivedAt = &at
	}
	return e
}

func cloneUser(u user.User) user.User {
	if u.AssignedBranchIDs != nil {
		u.AssignedBranchIDs = append([]string(nil), u.AssignedBranchIDs...)
	}
	return u
}
