package list_availability

import (
	"net/http"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /availability - Failed to get roster: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Roster retrieved successfully: count=%d", len(result.Vets))
	handlers.RespondJSON(w, http.StatusOK, result)
}
