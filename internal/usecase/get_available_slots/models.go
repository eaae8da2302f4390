package get_available_slots

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги (фиксирует длительность)
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time              // Дата, на которую запрашивались слоты
	ServiceID       int64                  // ID услуги
	DurationMinutes int                    // Длительность услуги
	Slots           []domain.AvailableSlot // Слоты хотя бы с одним свободным ветеринаром, по возрастанию времени
	DefaultGrid     bool                   // true, если ростер пуст и выдана сетка по умолчанию
}
