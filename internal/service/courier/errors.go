package courier

import (
	"fmt"

	"dispatch/internal/apperr"
)

var (
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", apperr.Invalid)
	ErrInvalidCourierID      = fmt.Errorf("%w: invalid courier id", apperr.Invalid)
	ErrInvalidName           = fmt.Errorf("%w: invalid name", apperr.Invalid)
	ErrInvalidPhone          = fmt.Errorf("%w: invalid phone", apperr.Invalid)
	ErrInvalidLicense        = fmt.Errorf("%w: invalid license number", apperr.Invalid)
	ErrInvalidStatus         = fmt.Errorf("%w: invalid status", apperr.Invalid)
	ErrStatusNotManual       = fmt.Errorf("%w: status is managed by assignments", apperr.Invalid)
	ErrPossessionNotManual   = fmt.Errorf("%w: vehicle possession is managed by vehicle assignments", apperr.Invalid)

	ErrCourierNotFound = fmt.Errorf("%w: courier", apperr.NotFound)
	ErrConflict        = fmt.Errorf("%w: courier with this phone already exists", apperr.Conflict)
)
