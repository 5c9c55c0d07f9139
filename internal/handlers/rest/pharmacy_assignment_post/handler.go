package pharmacy_assignment_post

import (
	"net/http"

	"github.com/AlekSi/pointer"

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
	var assignmentDTO dto.PharmacyAssignmentCreate
	if err := respond.Decode(r, &assignmentDTO); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	result, err := h.service.Assign(
		r.Context(),
		assignmentDTO.CourierId,
		assignmentDTO.PharmacyId,
		pointer.Get(assignmentDTO.Note),
	)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	metrics.AssignmentOperationsTotal.WithLabelValues(metrics.AssignmentPharmacy, metrics.OperationAssign).Inc()
	metrics.AssignmentsDisplacedTotal.WithLabelValues(metrics.AssignmentPharmacy).Add(float64(len(result.Displaced)))

	respond.JSON(w, h.log, http.StatusCreated, presenter.PharmacyAssignmentResult(*result))
}
