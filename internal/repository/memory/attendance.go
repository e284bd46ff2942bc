package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: store}
}

func (r *attendanceRepositoryImpl) GetDay(ctx context.Context, employeeID, date string) (attendance.DayLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if log, ok := r.store.attendance[employeeID][date]; ok {
		return log, nil
	}
	return attendance.DayLog{EmployeeID: employeeID, Date: date}, nil
}

func (r *attendanceRepositoryImpl) SaveDay(ctx context.Context, log attendance.DayLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.putDayLog(log)
	return nil
}

func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date string) (map[string]attendance.DayLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := map[string]attendance.DayLog{}
	for employeeID, days := range r.store.attendance {
		if log, ok := days[date]; ok {
			out[employeeID] = log
		}
	}
	return out, nil
}

func (r *attendanceRepositoryImpl) ListByMonth(ctx context.Context, employeeID, month string) (map[string]attendance.DayLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := map[string]attendance.DayLog{}
	for date, log := range r.store.attendance[employeeID] {
		if strings.HasPrefix(date, month+"-") {
			out[date] = log
		}
	}
	return out, nil
}
