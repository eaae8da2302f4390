package get_available_vets

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// Request модель запроса на получение свободных ветеринаров для слота
type Request struct {
	ServiceID int64            // ID услуги (фиксирует длительность)
	Date      time.Time        // Дата слота (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
}

// AvailableVet свободный для слота ветеринар
type AvailableVet struct {
	VetID   int64
	VetName string
}

// Response модель ответа со списком свободных ветеринаров
type Response struct {
	Date            time.Time
	StartTime       types.TimeString
	ServiceID       int64
	DurationMinutes int

	// Vets отсортирован по имени для стабильной выдачи
	Vets []AvailableVet

	// FullyBooked - на это время есть занимающая слот запись и ни один
	// ветеринар не свободен. Презентационный признак "слот полностью занят":
	// само по себе наличие записи слот не закрывает
	FullyBooked bool
}
