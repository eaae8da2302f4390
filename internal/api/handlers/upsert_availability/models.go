package upsert_availability

import "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/availability/models"

// UpsertAvailabilityRequest HTTP request model
type UpsertAvailabilityRequest struct {
	VetName                    string   `json:"vetName"`
	WorkingDays                []string `json:"workingDays"`
	StartTime                  string   `json:"startTime"`
	EndTime                    string   `json:"endTime"`
	LunchStartTime             *string  `json:"lunchStartTime,omitempty"`
	LunchEndTime               *string  `json:"lunchEndTime,omitempty"`
	AppointmentDurationMinutes int      `json:"appointmentDurationMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в сервисную модель
func (r *UpsertAvailabilityRequest) ToServiceRequest(vetID, userID int64) *models.UpsertAvailabilityRequest {
	return &models.UpsertAvailabilityRequest{
		UserID:                     userID,
		VetID:                      vetID,
		VetName:                    r.VetName,
		WorkingDays:                r.WorkingDays,
		StartTime:                  r.StartTime,
		EndTime:                    r.EndTime,
		LunchStartTime:             r.LunchStartTime,
		LunchEndTime:               r.LunchEndTime,
		AppointmentDurationMinutes: r.AppointmentDurationMinutes,
	}
}
