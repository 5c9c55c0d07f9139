package dispatches_stats_get

import (
	"fmt"
	"net/http"
	"time"

	"dispatch/internal/apperr"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
)

var ErrInvalidQuery = fmt.Errorf("%w: from and to must be RFC3339", apperr.Invalid)

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
	from, err := queryTime(r, "from")
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}
	to, err := queryTime(r, "to")
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	stats, err := h.service.Stats(r.Context(), from, to)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.DispatchStats(*stats))
}

func queryTime(r *http.Request, key string) (*time.Time, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, ErrInvalidQuery
	}
	return &t, nil
}
