package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/period"
)

type payrollRepositoryImpl struct {
	store *Store
}

func NewPayrollRepository(store *Store) payroll.PayrollRepository {
	return &payrollRepositoryImpl{store: store}
}

func (r *payrollRepositoryImpl) GetReferenceDate(ctx context.Context) (time.Time, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.referenceDate.IsZero() {
		return time.Time{}, payroll.ErrReferenceDateNotSet
	}
	return r.store.referenceDate, nil
}

func (r *payrollRepositoryImpl) SetReferenceDate(ctx context.Context, ref time.Time) error {
	if ref.IsZero() {
		return period.ErrInvalidReferenceDate
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.referenceDate = ref
	return nil
}

// MarkPaid keeps the first payment when the employee is already paid.
func (r *payrollRepositoryImpl) MarkPaid(ctx context.Context, p payroll.Payment) (payroll.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	byEmployee, ok := r.store.payments[p.PeriodID]
	if !ok {
		byEmployee = map[string]payroll.Payment{}
		r.store.payments[p.PeriodID] = byEmployee
	}
	if existing, ok := byEmployee[p.EmployeeID]; ok {
		return existing, nil
	}
	byEmployee[p.EmployeeID] = p
	return p, nil
}

func (r *payrollRepositoryImpl) ListPayments(ctx context.Context, periodID string) ([]payroll.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]payroll.Payment, 0, len(r.store.payments[periodID]))
	for _, p := range r.store.payments[periodID] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.Before(out[j].PaidAt) })
	return out, nil
}

func (r *payrollRepositoryImpl) SignPayslip(ctx context.Context, s payroll.Signature) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	byEmployee, ok := r.store.signatures[s.PeriodID]
	if !ok {
		byEmployee = map[string]payroll.Signature{}
		r.store.signatures[s.PeriodID] = byEmployee
	}
	if _, ok := byEmployee[s.EmployeeID]; ok {
		return false, nil
	}
	byEmployee[s.EmployeeID] = s
	return true, nil
}

func (r *payrollRepositoryImpl) ListSignatures(ctx context.Context, periodID string) ([]payroll.Signature, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]payroll.Signature, 0, len(r.store.signatures[periodID]))
	for _, s := range r.store.signatures[periodID] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SignedAt.Before(out[j].SignedAt) })
	return out, nil
}

func (r *payrollRepositoryImpl) CreatePeriodRecord(ctx context.Context, rec period.Record) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.records {
		if existing.Identifier == rec.Identifier {
			return payroll.ErrPeriodAlreadyClosed
		}
	}
	r.store.records = append(r.store.records, rec)
	return nil
}

func (r *payrollRepositoryImpl) ListPeriodRecords(ctx context.Context) ([]period.Record, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]period.Record{}, r.store.records...), nil
}
