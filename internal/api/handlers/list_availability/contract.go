package list_availability

import (
	"context"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	ListAll(ctx context.Context) (*models.AvailabilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
