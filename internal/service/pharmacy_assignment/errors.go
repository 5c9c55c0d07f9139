package pharmacy_assignment

import (
	"fmt"

	"dispatch/internal/apperr"
)

var (
	ErrInvalidCourierID    = fmt.Errorf("%w: invalid courier id", apperr.Invalid)
	ErrInvalidPharmacyID   = fmt.Errorf("%w: invalid pharmacy id", apperr.Invalid)
	ErrInvalidAssignmentID = fmt.Errorf("%w: invalid assignment id", apperr.Invalid)
	ErrNoteTooLong         = fmt.Errorf("%w: note is too long", apperr.Invalid)

	ErrCourierHasNoVehicle = fmt.Errorf("%w: courier has no vehicle assigned", apperr.PreconditionFailed)
	ErrCourierNotAvailable = fmt.Errorf("%w: courier is not available", apperr.PreconditionFailed)
	ErrPharmacyInactive    = fmt.Errorf("%w: pharmacy is inactive", apperr.ResourceUnavailable)

	ErrAssignmentNotFound = fmt.Errorf("%w: pharmacy assignment", apperr.NotFound)
	ErrReferenceNotFound  = fmt.Errorf("%w: courier or pharmacy", apperr.NotFound)
	ErrConflict           = fmt.Errorf("%w: courier already has an active pharmacy assignment", apperr.Conflict)
)
