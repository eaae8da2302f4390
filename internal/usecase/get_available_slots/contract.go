package get_available_slots

import (
	"context"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	// GetWithFilter получает записи клиники по фильтру
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// AvailabilityRepository интерфейс репозитория доступности ветеринаров
type AvailabilityRepository interface {
	// ListAll возвращает весь ростер доступности
	ListAll(ctx context.Context) ([]*domain.VetAvailability, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
