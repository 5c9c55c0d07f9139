package courier_post

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
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
	var courierDTO dto.CourierCreate
	if err := respond.Decode(r, &courierDTO); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	courierModify := entities.CourierModify{
		Name:             &courierDTO.Name,
		Phone:            &courierDTO.Phone,
		LicenseNumber:    &courierDTO.LicenseNumber,
		LicenseValid:     courierDTO.LicenseValid,
		LicenseExpiresAt: courierDTO.LicenseExpiresAt,
	}
	// статус по умолчанию выставляет сервис
	if courierDTO.Status != nil {
		status := entities.CourierStatusType(*courierDTO.Status)
		courierModify.Status = &status
	}

	id, err := h.service.CreateCourier(r.Context(), courierModify)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.IDResponse{Id: id})
}
