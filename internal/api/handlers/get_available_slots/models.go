package get_available_slots

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	getAvailableSlots "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	AvailableVets   int    `json:"availableVets"`
	TotalVets       int    `json:"totalVets"`
}

// SlotsResponse HTTP модель ответа со списком слотов
type SlotsResponse struct {
	Date            string         `json:"date"` // "2026-09-07"
	ServiceID       int64          `json:"serviceId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
	DefaultGrid     bool           `json:"defaultGrid"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			AvailableVets:   slot.AvailableVets,
			TotalVets:       slot.TotalVets,
		}
	}

	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
		DefaultGrid:     resp.DefaultGrid,
	}
}
