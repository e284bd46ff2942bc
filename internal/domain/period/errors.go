package period

import "errors"

var (
	ErrInvalidReferenceDate = errors.New("invalid reference date")
	ErrInvalidIdentifier    = errors.New("invalid period identifier")
)
