package dispatch_get

import (
	"net/http"

	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
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

	dispatch, err := h.service.GetDispatch(r.Context(), id)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Dispatch(*dispatch))
}
