package create_appointment

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// Request модель запроса на создание записи на приём
type Request struct {
	ClientID  int64            // ID клиента
	VetID     int64            // ID ветеринара
	PetID     int64            // ID питомца
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	Notes     *string          // Дополнительные заметки (опционально)

	// WalkIn - запись оформлена на стойке регистрации и сразу подтверждена
	WalkIn bool
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ClientID        int64
	VetID           int64
	PetID           int64
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	// Денормализованные данные
	VetName      string
	ServiceName  string
	ServicePrice float64
	PetName      *string
	PetSpecies   *string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
