package branch

import "errors"

var (
	ErrBranchNotFound   = errors.New("branch not found")
	ErrBranchCodeExists = errors.New("branch code already exists")
)
