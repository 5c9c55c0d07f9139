package pharmacy_assignment_release_post

import (
	"net/http"

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

	released, err := h.service.Release(r.Context(), id)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	metrics.AssignmentOperationsTotal.WithLabelValues(metrics.AssignmentPharmacy, metrics.OperationRelease).Inc()

	respond.JSON(w, h.log, http.StatusOK, presenter.PharmacyAssignment(*released))
}
