package get_clinic_appointments

import (
	"context"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetClinicAppointments(ctx context.Context, req *models.GetClinicAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
