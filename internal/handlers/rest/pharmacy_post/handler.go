package pharmacy_post

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
	var pharmacyDTO dto.PharmacyCreate
	if err := respond.Decode(r, &pharmacyDTO); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	pharmacyModify := entities.PharmacyModify{
		Name:     &pharmacyDTO.Name,
		Address:  pharmacyDTO.Address,
		Region:   pharmacyDTO.Region,
		Comune:   pharmacyDTO.Comune,
		OpensAt:  pharmacyDTO.OpensAt,
		ClosesAt: pharmacyDTO.ClosesAt,
		Active:   pharmacyDTO.Active,
	}
	if pharmacyDTO.OperatingDays != nil {
		pharmacyModify.OperatingDays = entities.WeekdaysOf(*pharmacyDTO.OperatingDays)
	}

	id, err := h.service.CreatePharmacy(r.Context(), pharmacyModify)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.IDResponse{Id: id})
}
