//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_status_changed_test
package dispatch_status_changed

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
	TransitionDispatch(ctx context.Context, transition entities.DispatchTransition) (*entities.Dispatch, error)
}
