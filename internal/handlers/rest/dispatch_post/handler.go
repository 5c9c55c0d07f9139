package dispatch_post

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/presenter"
	"dispatch/internal/handlers/rest/respond"
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
	var dispatchDTO dto.DispatchCreate
	if err := respond.Decode(r, &dispatchDTO); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	movement := entities.MovementType(dispatchDTO.Movement)
	dispatchModify := entities.DispatchModify{
		ExternalOrderID:      &dispatchDTO.ExternalOrderId,
		PharmacyID:           &dispatchDTO.PharmacyId,
		CourierID:            &dispatchDTO.CourierId,
		Movement:             &movement,
		PickedUpAt:           dispatchDTO.PickedUpAt,
		EstimatedArrivalAt:   dispatchDTO.EstimatedArrivalAt,
		ResendReason:         dispatchDTO.ResendReason,
		PrescriptionNumber:   dispatchDTO.PrescriptionNumber,
		PrescriptionIssuedAt: dispatchDTO.PrescriptionIssuedAt,
		PrescriberName:       dispatchDTO.PrescriberName,
	}

	created, err := h.service.CreateDispatch(r.Context(), auth.RoleFromContext(r.Context()), dispatchModify)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("dispatch_id", created.ID),
		logger.NewField("external_order_id", created.ExternalOrderID),
		logger.NewField("state", created.State.String()),
	).Info("dispatch created")

	respond.JSON(w, h.log, http.StatusCreated, presenter.Dispatch(*created))
}
