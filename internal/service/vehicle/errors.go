package vehicle

import (
	"fmt"

	"dispatch/internal/apperr"
)

var (
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", apperr.Invalid)
	ErrInvalidVehicleID      = fmt.Errorf("%w: invalid vehicle id", apperr.Invalid)
	ErrInvalidPlate          = fmt.Errorf("%w: invalid plate", apperr.Invalid)
	ErrInvalidStatus         = fmt.Errorf("%w: invalid status", apperr.Invalid)
	ErrStatusNotManual       = fmt.Errorf("%w: OCCUPIED is managed by assignments", apperr.Invalid)
	ErrInvalidOwnership      = fmt.Errorf("%w: invalid ownership", apperr.Invalid)
	ErrOwnerRequired         = fmt.Errorf("%w: courier ownership requires an owner courier", apperr.Invalid)
	ErrOwnerNotAllowed       = fmt.Errorf("%w: company vehicles cannot have an owner courier", apperr.Invalid)

	ErrVehicleAssigned = fmt.Errorf("%w: vehicle has an active assignment, release it first", apperr.PreconditionFailed)
	ErrVehicleNotFound = fmt.Errorf("%w: vehicle", apperr.NotFound)
	ErrOwnerNotFound   = fmt.Errorf("%w: owner courier", apperr.NotFound)
	ErrConflict        = fmt.Errorf("%w: vehicle with this plate already exists", apperr.Conflict)
)
