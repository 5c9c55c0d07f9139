package dispatch

import (
	"fmt"

	"dispatch/internal/apperr"
)

var (
	ErrMissingRequiredFields  = fmt.Errorf("%w: missing required fields", apperr.Invalid)
	ErrInvalidDispatchID      = fmt.Errorf("%w: invalid dispatch id", apperr.Invalid)
	ErrInvalidMovement        = fmt.Errorf("%w: invalid movement", apperr.Invalid)
	ErrInvalidState           = fmt.Errorf("%w: invalid dispatch state", apperr.Invalid)
	ErrInvalidFilter          = fmt.Errorf("%w: invalid dispatch filter", apperr.Invalid)
	ErrInvalidWindow          = fmt.Errorf("%w: window start must be before its end", apperr.Invalid)
	ErrPrescriptionRequired   = fmt.Errorf("%w: prescription number and issue date are required", apperr.Invalid)
	ErrPrescriptionNotAllowed = fmt.Errorf("%w: prescription data only applies to prescription movements", apperr.Invalid)
	ErrResendReasonRequired   = fmt.Errorf("%w: resend reason is required", apperr.Invalid)
	ErrResendReasonNotAllowed = fmt.Errorf("%w: resend reason only applies to resend movements", apperr.Invalid)
	ErrMovementImmutable      = fmt.Errorf("%w: movement cannot be changed", apperr.Invalid)
	ErrReasonTooLong          = fmt.Errorf("%w: reason is too long", apperr.Invalid)

	ErrDispatchNotFound    = fmt.Errorf("%w: dispatch not found", apperr.NotFound)
	ErrReferenceNotFound   = fmt.Errorf("%w: pharmacy or courier", apperr.NotFound)
	ErrDispatchNotEditable = fmt.Errorf("%w: dispatch can only be edited before departure", apperr.PreconditionFailed)
	ErrInvalidTransition   = fmt.Errorf("%w: dispatch state change not allowed", apperr.InvalidTransition)
	ErrConflict            = fmt.Errorf("%w: dispatch with this external order id already exists", apperr.Conflict)
)
