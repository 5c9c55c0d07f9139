package dispatch_put

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/pkg/middlewares/auth"
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
	var dispatchDTO dto.DispatchUpdate
	if err := respond.Decode(r, &dispatchDTO); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	dispatchModify := entities.DispatchModify{
		ID:                   &dispatchDTO.Id,
		ExternalOrderID:      dispatchDTO.ExternalOrderId,
		PharmacyID:           dispatchDTO.PharmacyId,
		CourierID:            dispatchDTO.CourierId,
		PickedUpAt:           dispatchDTO.PickedUpAt,
		EstimatedArrivalAt:   dispatchDTO.EstimatedArrivalAt,
		ResendReason:         dispatchDTO.ResendReason,
		PrescriptionNumber:   dispatchDTO.PrescriptionNumber,
		PrescriptionIssuedAt: dispatchDTO.PrescriptionIssuedAt,
		PrescriberName:       dispatchDTO.PrescriberName,
	}
	// тип движения неизменяем, но решение об этом за сервисом
	if dispatchDTO.Movement != nil {
		movement := entities.MovementType(*dispatchDTO.Movement)
		dispatchModify.Movement = &movement
	}

	updated, err := h.service.UpdateDispatch(r.Context(), auth.RoleFromContext(r.Context()), dispatchModify)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Dispatch(*updated))
}
