package availability

import (
	"context"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности ветеринаров
type AvailabilityRepository interface {
	Upsert(ctx context.Context, av *domain.VetAvailability) (*domain.VetAvailability, error)
	GetByVetID(ctx context.Context, vetID int64) (*domain.VetAvailability, error)
	ListAll(ctx context.Context) ([]*domain.VetAvailability, error)
	Delete(ctx context.Context, vetID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
