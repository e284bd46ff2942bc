package attendance

import "context"

type AttendanceRepository interface {
	// GetDay returns an empty log (not an error) when nothing was recorded.
	GetDay(ctx context.Context, employeeID, date string) (DayLog, error)
	SaveDay(ctx context.Context, log DayLog) error
	// ListByDate returns the logs of every employee for one date, keyed by employee ID.
	ListByDate(ctx context.Context, date string) (map[string]DayLog, error)
	// ListByMonth returns one employee's logs whose date starts with the YYYY-MM prefix.
	ListByMonth(ctx context.Context, employeeID, month string) (map[string]DayLog, error)
}
