package pharmacy

import (
	"fmt"

	"dispatch/internal/apperr"
)

var (
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", apperr.Invalid)
	ErrInvalidPharmacyID     = fmt.Errorf("%w: invalid pharmacy id", apperr.Invalid)
	ErrInvalidName           = fmt.Errorf("%w: invalid name", apperr.Invalid)
	ErrInvalidHours          = fmt.Errorf("%w: invalid operating hours", apperr.Invalid)
	ErrInvalidDays           = fmt.Errorf("%w: invalid operating days", apperr.Invalid)

	ErrPharmacyNotFound = fmt.Errorf("%w: pharmacy", apperr.NotFound)
)
