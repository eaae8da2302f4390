package models

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// Request модели

// UpsertAvailabilityRequest запрос на создание/обновление расписания ветеринара
type UpsertAvailabilityRequest struct {
	UserID                     int64    `json:"userId"`
	VetID                      int64    `json:"vetId"`
	VetName                    string   `json:"vetName"`
	WorkingDays                []string `json:"workingDays"`              // ["Monday", "Tuesday", ...]
	StartTime                  string   `json:"startTime"`                // "09:00"
	EndTime                    string   `json:"endTime"`                  // "17:00"
	LunchStartTime             *string  `json:"lunchStartTime,omitempty"` // "12:00"
	LunchEndTime               *string  `json:"lunchEndTime,omitempty"`   // "13:00"
	AppointmentDurationMinutes int      `json:"appointmentDurationMinutes"`
}

// ToDomainAvailability конвертирует request в domain модель
func (r *UpsertAvailabilityRequest) ToDomainAvailability() *domain.VetAvailability {
	av := &domain.VetAvailability{
		VetID:                      r.VetID,
		VetName:                    r.VetName,
		WorkingDays:                r.WorkingDays,
		StartTime:                  types.TimeString(r.StartTime),
		EndTime:                    types.TimeString(r.EndTime),
		AppointmentDurationMinutes: r.AppointmentDurationMinutes,
	}

	if r.LunchStartTime != nil {
		lunchStart := types.TimeString(*r.LunchStartTime)
		av.LunchStartTime = &lunchStart
	}
	if r.LunchEndTime != nil {
		lunchEnd := types.TimeString(*r.LunchEndTime)
		av.LunchEndTime = &lunchEnd
	}

	return av
}

// Response модели

// AvailabilityResponse ответ с данными расписания ветеринара
type AvailabilityResponse struct {
	ID                         int64    `json:"id"`
	VetID                      int64    `json:"vetId"`
	VetName                    string   `json:"vetName"`
	WorkingDays                []string `json:"workingDays"`
	StartTime                  string   `json:"startTime"`
	EndTime                    string   `json:"endTime"`
	LunchStartTime             *string  `json:"lunchStartTime,omitempty"`
	LunchEndTime               *string  `json:"lunchEndTime,omitempty"`
	AppointmentDurationMinutes int      `json:"appointmentDurationMinutes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AvailabilityListResponse ответ со списком расписаний (ростер клиники)
type AvailabilityListResponse struct {
	Vets []AvailabilityResponse `json:"vets"`
}

// Методы конвертации

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(av *domain.VetAvailability) *AvailabilityResponse {
	if av == nil {
		return nil
	}

	resp := &AvailabilityResponse{
		ID:                         av.ID,
		VetID:                      av.VetID,
		VetName:                    av.VetName,
		WorkingDays:                av.WorkingDays,
		StartTime:                  av.StartTime.String(),
		EndTime:                    av.EndTime.String(),
		AppointmentDurationMinutes: av.AppointmentDurationMinutes,
		CreatedAt:                  av.CreatedAt,
		UpdatedAt:                  av.UpdatedAt,
	}

	if av.LunchStartTime != nil {
		lunchStart := av.LunchStartTime.String()
		resp.LunchStartTime = &lunchStart
	}
	if av.LunchEndTime != nil {
		lunchEnd := av.LunchEndTime.String()
		resp.LunchEndTime = &lunchEnd
	}

	return resp
}

// FromDomainAvailabilityList конвертирует список domain моделей в DTO
func FromDomainAvailabilityList(list []*domain.VetAvailability) *AvailabilityListResponse {
	if list == nil {
		return &AvailabilityListResponse{
			Vets: []AvailabilityResponse{},
		}
	}

	resp := &AvailabilityListResponse{
		Vets: make([]AvailabilityResponse, len(list)),
	}

	for i, av := range list {
		if avResp := FromDomainAvailability(av); avResp != nil {
			resp.Vets[i] = *avResp
		}
	}

	return resp
}
