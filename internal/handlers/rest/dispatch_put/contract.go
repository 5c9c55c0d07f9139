//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_put_test
package dispatch_put

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateDispatch(ctx context.Context, role entities.Role, dispatchModify entities.DispatchModify) (*entities.Dispatch, error)
}
