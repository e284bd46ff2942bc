package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
)

// Seed loads a fixtures dataset in one transaction. The target tables are
// expected to be empty.
func Seed(ctx context.Context, db *database.DB, ds *fixtures.Dataset) error {
	return NewTxManager(db).WithinTx(ctx, func(ctx context.Context) error {
		branches := NewBranchRepository(db)
		for _, b := range ds.Branches {
			if _, err := branches.Create(ctx, b); err != nil {
				return fmt.Errorf("seed branch %s: %w", b.ID, err)
			}
		}

		employees := NewEmployeeRepository(db)
		for _, e := range ds.Employees {
			if _, err := employees.Create(ctx, e); err != nil {
				return fmt.Errorf("seed employee %s: %w", e.ID, err)
			}
		}

		users := NewUserRepository(db)
		for _, u := range ds.Users {
			if _, err := users.Create(ctx, u); err != nil {
				return fmt.Errorf("seed user %s: %w", u.ID, err)
			}
		}

		if _, err := NewIncidentRepository(db).CreateBatch(ctx, ds.Incidents); err != nil {
			return fmt.Errorf("seed incidents: %w", err)
		}

		templates := NewTemplateRepository(db)
		for _, t := range ds.BonusTemplates {
			if _, err := templates.Create(ctx, t); err != nil {
				return fmt.Errorf("seed bonus template %s: %w", t.ID, err)
			}
		}

		vacations := NewVacationRepository(db)
		for _, v := range ds.Vacations {
			if _, err := vacations.Create(ctx, v); err != nil {
				return fmt.Errorf("seed vacation %s: %w", v.ID, err)
			}
		}

		attendance := NewAttendanceRepository(db)
		for _, log := range ds.Attendance {
			if err := attendance.SaveDay(ctx, log); err != nil {
				return fmt.Errorf("seed attendance %s/%s: %w", log.EmployeeID, log.Date, err)
			}
		}

		if err := NewPayrollRepository(db).SetReferenceDate(ctx, ds.ReferenceDate); err != nil {
			return fmt.Errorf("seed reference date: %w", err)
		}

		slog.Info("fixtures seeded",
			"branches", len(ds.Branches),
			"employees", len(ds.Employees),
			"users", len(ds.Users),
			"incidents", len(ds.Incidents),
		)
		return nil
	})
}
