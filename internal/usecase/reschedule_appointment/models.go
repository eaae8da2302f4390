package reschedule_appointment

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64            // ID исходной записи
	UserID        int64            // Кто переносит (владелец или сотрудник)
	Date          time.Time        // Новая дата
	StartTime     types.TimeString // Новое время начала
	NewVetID      *int64           // Другой ветеринар (опционально, nil - тот же)
}

// Response модель ответа с новой записью
type Response struct {
	ID              int64            // ID новой записи
	RescheduledFrom int64            // ID исходной записи
	VetID           int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	CreatedAt       time.Time
}
