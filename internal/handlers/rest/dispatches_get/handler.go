package dispatches_get

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dispatch/internal/apperr"
	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
)

var ErrInvalidQuery = fmt.Errorf("%w: malformed query parameter", apperr.Invalid)

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
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	dispatches, err := h.service.ListDispatches(r.Context(), filter)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Dispatches(dispatches))
}

func parseFilter(query url.Values) (entities.DispatchFilter, error) {
	var filter entities.DispatchFilter

	if v := query.Get("state"); v != "" {
		state := entities.DispatchState(v)
		filter.State = &state
	}
	if v := query.Get("movement"); v != "" {
		movement := entities.MovementType(v)
		filter.Movement = &movement
	}

	var err error
	if filter.PharmacyID, err = optionalID(query, "pharmacy_id"); err != nil {
		return filter, err
	}
	if filter.CourierID, err = optionalID(query, "courier_id"); err != nil {
		return filter, err
	}
	if filter.CreatedFrom, err = optionalTime(query, "created_from"); err != nil {
		return filter, err
	}
	if filter.CreatedTo, err = optionalTime(query, "created_to"); err != nil {
		return filter, err
	}
	if filter.Limit, err = optionalUint(query, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = optionalUint(query, "offset"); err != nil {
		return filter, err
	}
	return filter, nil
}

func optionalID(query url.Values, key string) (*int64, error) {
	v := query.Get(key)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, key)
	}
	return &id, nil
}

func optionalTime(query url.Values, key string) (*time.Time, error) {
	v := query.Get(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be RFC3339", ErrInvalidQuery, key)
	}
	return &t, nil
}

func optionalUint(query url.Values, key string) (uint64, error) {
	v := query.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidQuery, key)
	}
	return n, nil
}
