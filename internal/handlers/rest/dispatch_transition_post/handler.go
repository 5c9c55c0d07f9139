package dispatch_transition_post

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/metrics"
	"dispatch/internal/pkg/middlewares/auth"
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
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	var transitionDTO dto.DispatchTransition
	if err := respond.Decode(r, &transitionDTO); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	role := auth.RoleFromContext(r.Context())
	moved, err := h.service.TransitionDispatch(r.Context(), entities.DispatchTransition{
		DispatchID:     id,
		Target:         entities.DispatchState(transitionDTO.State),
		ActorRole:      role,
		IncidentReason: transitionDTO.Reason,
	})
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	metrics.DispatchTransitionsTotal.WithLabelValues(moved.State.String(), metrics.SourceHTTP).Inc()
	h.log.With(
		logger.NewField("dispatch_id", moved.ID),
		logger.NewField("state", moved.State.String()),
		logger.NewField("actor_role", role.String()),
	).Info("dispatch state changed")

	respond.JSON(w, h.log, http.StatusOK, presenter.Dispatch(*moved))
}
