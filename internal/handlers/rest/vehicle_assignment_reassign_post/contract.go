//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_assignment_reassign_post_test
package vehicle_assignment_reassign_post

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
	Reassign(ctx context.Context, assignmentID, vehicleID int64) (*entities.VehicleAssignmentResult, error)
}
