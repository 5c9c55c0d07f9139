package vehicle_put

import (
	"net/http"

	"github.com/AlekSi/pointer"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
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
	var vehicleDTO dto.VehicleUpdate
	if err := respond.Decode(r, &vehicleDTO); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	vehicleModify := entities.VehicleModify{
		ID:             &vehicleDTO.Id,
		Plate:          vehicleDTO.Plate,
		Brand:          vehicleDTO.Brand,
		Model:          vehicleDTO.Model,
		OwnerCourierID: vehicleDTO.OwnerCourierId,
		ClearOwner:     pointer.Get(vehicleDTO.ClearOwner),
	}
	if vehicleDTO.Status != nil {
		status := entities.VehicleStatusType(*vehicleDTO.Status)
		vehicleModify.Status = &status
	}
	if vehicleDTO.Ownership != nil {
		ownership := entities.VehicleOwnershipType(*vehicleDTO.Ownership)
		vehicleModify.Ownership = &ownership
	}

	updated, err := h.service.UpdateVehicle(r.Context(), vehicleModify)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, presenter.Vehicle(*updated))
}
