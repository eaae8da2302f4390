package create_appointment

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	createAppointment "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/usecase/create_appointment"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	VetID     int64   `json:"vetId"`
	PetID     int64   `json:"petId"`
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`      // "2026-09-07"
	StartTime string  `json:"startTime"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
	WalkIn    bool    `json:"walkIn,omitempty"` // Запись на стойке, сразу подтверждается
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	VetID           int64   `json:"vetId"`
	PetID           int64   `json:"petId"`
	ServiceID       int64   `json:"serviceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	VetName         string  `json:"vetName"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	PetName         *string `json:"petName,omitempty"`
	PetSpecies      *string `json:"petSpecies,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// clientID берётся из контекста аутентификации, а не из тела запроса
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:  clientID,
		VetID:     r.VetID,
		PetID:     r.PetID,
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: startTime,
		Notes:     r.Notes,
		WalkIn:    r.WalkIn,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		VetID:           resp.VetID,
		PetID:           resp.PetID,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		VetName:         resp.VetName,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		PetName:         resp.PetName,
		PetSpecies:      resp.PetSpecies,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
