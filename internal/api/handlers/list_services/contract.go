package list_services

import (
	"context"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/services/models"
)

type CatalogService interface {
	List(ctx context.Context) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
