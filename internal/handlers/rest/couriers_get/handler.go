package couriers_get

import (
	"net/http"
	"strings"

	"dispatch/internal/entities"
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
	var status *entities.CourierStatusType
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		s := entities.CourierStatusType(strings.ToUpper(raw))
		status = &s
	}

	couriers, err := h.service.GetCouriers(r.Context(), status)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Couriers(couriers))
}
