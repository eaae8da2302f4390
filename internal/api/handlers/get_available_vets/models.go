package get_available_vets

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	getAvailableVets "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/usecase/get_available_vets"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// VetResponse HTTP модель свободного ветеринара
type VetResponse struct {
	VetID   int64  `json:"vetId"`
	VetName string `json:"vetName"`
}

// VetsResponse HTTP модель ответа со списком свободных ветеринаров
type VetsResponse struct {
	Date            string        `json:"date"`      // "2026-09-07"
	StartTime       string        `json:"startTime"` // "10:00"
	ServiceID       int64         `json:"serviceId"`
	DurationMinutes int           `json:"durationMinutes"`
	Vets            []VetResponse `json:"vets"`
	FullyBooked     bool          `json:"fullyBooked"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(serviceID int64, dateStr, timeStr string) (*getAvailableVets.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableVets.Request{
		ServiceID: serviceID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableVets.Response) *VetsResponse {
	vets := make([]VetResponse, len(resp.Vets))
	for i, vet := range resp.Vets {
		vets[i] = VetResponse{
			VetID:   vet.VetID,
			VetName: vet.VetName,
		}
	}

	return &VetsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Vets:            vets,
		FullyBooked:     resp.FullyBooked,
	}
}
