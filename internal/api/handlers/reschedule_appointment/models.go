package reschedule_appointment

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	rescheduleAppointment "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/usecase/reschedule_appointment"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	Date      string `json:"date"`      // "2026-09-07"
	StartTime string `json:"startTime"` // "10:00"
	NewVetID  *int64 `json:"newVetId,omitempty"`
}

// RescheduleAppointmentResponse HTTP response model
type RescheduleAppointmentResponse struct {
	ID              int64  `json:"id"`
	RescheduledFrom int64  `json:"rescheduledFrom"`
	VetID           int64  `json:"vetId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(appointmentID, userID int64) (*rescheduleAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		UserID:        userID,
		Date:          date,
		StartTime:     startTime,
		NewVetID:      r.NewVetID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *RescheduleAppointmentResponse {
	return &RescheduleAppointmentResponse{
		ID:              resp.ID,
		RescheduledFrom: resp.RescheduledFrom,
		VetID:           resp.VetID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
