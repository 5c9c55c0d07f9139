package vehicle_assignment_post

import (
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/metrics"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var assignmentDTO dto.VehicleAssignmentCreate
	if err := respond.Decode(r, &assignmentDTO); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	result, err := h.service.Assign(r.Context(), assignmentDTO.CourierId, assignmentDTO.VehicleId)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	if len(result.Displaced) > 0 {
		h.log.With(
			logger.NewField("assignment_id", result.Assignment.ID),
			logger.NewField("displaced", len(result.Displaced)),
		).Info("vehicle assignment displaced previous holders")
	}

	metrics.AssignmentOperationsTotal.WithLabelValues(metrics.AssignmentVehicle, metrics.OperationAssign).Inc()
	metrics.AssignmentsDisplacedTotal.WithLabelValues(metrics.AssignmentVehicle).Add(float64(len(result.Displaced)))

	respond.JSON(w, h.log, http.StatusCreated, presenter.VehicleAssignmentResult(*result))
}
