package vacation

import "errors"

var (
	ErrRequestNotFound        = errors.New("vacation request not found")
	ErrRequestAlreadyReviewed = errors.New("only pending vacation requests can be reviewed")
	ErrInvalidDecision        = errors.New("decision must be Aprobada or Rechazada")
	ErrInsufficientDays       = errors.New("requested days exceed available vacation days")
	ErrNoWorkingDays          = errors.New("the requested range has no working days")
	ErrInvalidDateRange       = errors.New("end_date must not be before start_date")
	ErrSelfReviewForbidden    = errors.New("employees cannot review vacation requests")
)
