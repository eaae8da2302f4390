package get_clinic_appointments

import (
	"strconv"
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/appointments/models"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/ptr"
)

// ParseQuery собирает сервисный request из query параметров
// vetId, startDate, endDate и status опциональны
func ParseQuery(userID int64, query map[string][]string) (*models.GetClinicAppointmentsRequest, error) {
	req := &models.GetClinicAppointmentsRequest{
		UserID: userID,
	}

	getParam := func(name string) string {
		if values, ok := query[name]; ok && len(values) > 0 {
			return values[0]
		}
		return ""
	}

	if vetIDStr := getParam("vetId"); vetIDStr != "" {
		vetID, err := strconv.ParseInt(vetIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.VetID = ptr.Ptr(vetID)
	}

	if startDateStr := getParam("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = ptr.Ptr(startDate)
	}

	if endDateStr := getParam("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = ptr.Ptr(endDate)
	}

	if statusStr := getParam("status"); statusStr != "" {
		req.Status = ptr.Ptr(statusStr)
	}

	return req, nil
}
