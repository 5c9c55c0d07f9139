package pharmacy_assignment_reassign_post

import (
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/metrics"
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
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	var reassignDTO dto.PharmacyReassign
	if err := respond.Decode(r, &reassignDTO); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	result, err := h.service.Reassign(r.Context(), id, reassignDTO.PharmacyId)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	metrics.AssignmentOperationsTotal.WithLabelValues(metrics.AssignmentPharmacy, metrics.OperationReassign).Inc()
	metrics.AssignmentsDisplacedTotal.WithLabelValues(metrics.AssignmentPharmacy).Add(float64(len(result.Displaced)))

	respond.JSON(w, h.log, http.StatusOK, presenter.PharmacyAssignmentResult(*result))
}
