package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/availability"
)

const (
	msgInvalidVetID = "некорректный ID ветеринара"
	msgNotFound     = "расписание ветеринара не найдено"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vets/{vetId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vetIDStr := vars["vetId"]

	vetID, err := strconv.ParseInt(vetIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vets/{id}/availability - Invalid vet ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVetID)
		return
	}

	result, err := h.service.GetByVetID(r.Context(), vetID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("GET /vets/{id}/availability - Not found: vet_id=%d", vetID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /vets/{id}/availability - Failed to get availability: vet_id=%d, error=%v",
				vetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vets/{id}/availability - Availability retrieved successfully: vet_id=%d", vetID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
