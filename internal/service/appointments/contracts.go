package appointments

import (
	"context"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// AvailabilityRepository интерфейс репозитория доступности ветеринаров
// Используется для проверки, является ли пользователь сотрудником клиники
type AvailabilityRepository interface {
	GetByVetID(ctx context.Context, vetID int64) (*domain.VetAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
