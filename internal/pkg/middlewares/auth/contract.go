//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"dispatch/internal/entities"
	"dispatch/internal/service/access"
	"dispatch/pkg/logger"
)

type Authorizer interface {
	Authorize(op access.Operation, role entities.Role) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
