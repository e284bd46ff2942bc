package bonus

import "errors"

var (
	ErrTemplateNotFound   = errors.New("bonus template not found")
	ErrTemplateNameExists = errors.New("bonus template name already exists")
	ErrDuplicateTarget    = errors.New("employee appears more than once in the batch")
)
