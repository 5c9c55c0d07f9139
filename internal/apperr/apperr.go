// Package apperr holds the error categories shared by every service.
// Services declare their own sentinels on top of a category:
//
//	var ErrVehicleNotOperational = fmt.Errorf("%w: vehicle is not operational", apperr.ResourceUnavailable)
//
// so callers can match either the precise error or the whole category.
package apperr

import (
	"errors"
	"net/http"

	"dispatch/pkg/tx"
)

var (
	NotFound            = errors.New("not found")
	ResourceUnavailable = errors.New("resource unavailable")
	PreconditionFailed  = errors.New("precondition failed")
	InvalidTransition   = errors.New("invalid transition")
	Forbidden           = errors.New("forbidden")
	Conflict            = errors.New("conflict")
	Invalid             = errors.New("invalid argument")
)

// IsConflict также учитывает исчерпанные повторы сериализуемой транзакции.
func IsConflict(err error) bool {
	return errors.Is(err, Conflict) || errors.Is(err, tx.ErrConflict)
}

// HTTPStatus переводит категорию ошибки в код ответа.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, Invalid):
		return http.StatusBadRequest
	case errors.Is(err, NotFound):
		return http.StatusNotFound
	case errors.Is(err, Forbidden):
		return http.StatusForbidden
	case errors.Is(err, PreconditionFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ResourceUnavailable),
		errors.Is(err, InvalidTransition),
		IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Code возвращает машинно-читаемое имя категории для тела ответа.
func Code(err error) string {
	switch {
	case errors.Is(err, Invalid):
		return "INVALID_ARGUMENT"
	case errors.Is(err, NotFound):
		return "NOT_FOUND"
	case errors.Is(err, Forbidden):
		return "FORBIDDEN"
	case errors.Is(err, PreconditionFailed):
		return "PRECONDITION_FAILED"
	case errors.Is(err, ResourceUnavailable):
		return "RESOURCE_UNAVAILABLE"
	case errors.Is(err, InvalidTransition):
		return "INVALID_TRANSITION"
	case IsConflict(err):
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}
