package get_available_vets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers"
	getAvailableVets "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/usecase/get_available_vets"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingServiceID = "ID услуги обязателен"
	msgMissingDate      = "дата обязательна"
	msgMissingTime      = "время обязательно"
	msgInvalidDateTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound  = "услуга не найдена"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableVetsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableVetsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-vets
// Query params: serviceId (required), date (required, YYYY-MM-DD), time (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /available-vets - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-vets - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-vets - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /available-vets - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	useCaseReq, err := ToUseCaseRequest(serviceID, dateStr, timeStr)
	if err != nil {
		h.logger.Warn("GET /available-vets - Invalid date/time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableVets.ErrServiceNotFound):
			h.logger.Warn("GET /available-vets - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableVets.ErrInvalidInput):
			h.logger.Warn("GET /available-vets - Invalid input: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-vets - Failed to get vets: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-vets - Vets retrieved successfully: service_id=%d, date=%s, time=%s, vets_count=%d",
		serviceID, dateStr, timeStr, len(result.Vets))
	handlers.RespondJSON(w, http.StatusOK, response)
}
