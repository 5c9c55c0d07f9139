package vehicle_assignment

import (
	"fmt"

	"dispatch/internal/apperr"
)

var (
	ErrInvalidCourierID    = fmt.Errorf("%w: invalid courier id", apperr.Invalid)
	ErrInvalidVehicleID    = fmt.Errorf("%w: invalid vehicle id", apperr.Invalid)
	ErrInvalidAssignmentID = fmt.Errorf("%w: invalid assignment id", apperr.Invalid)

	ErrAssignmentNotFound = fmt.Errorf("%w: vehicle assignment", apperr.NotFound)
	ErrReferenceNotFound  = fmt.Errorf("%w: courier or vehicle", apperr.NotFound)
	ErrVehicleUnavailable = fmt.Errorf("%w: vehicle is not operational", apperr.ResourceUnavailable)
	ErrConflict           = fmt.Errorf("%w: vehicle or courier already has an active assignment", apperr.Conflict)
)
