package get_available_vets

import (
	"sort"
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// availableVetsForSlot возвращает ветеринаров, свободных для услуги
// длительностью durationMinutes в слоте date+start
// Результат отсортирован по имени (при совпадении имён - по id):
// порядок не влияет на корректность, но выдача должна быть детерминированной
func availableVetsForSlot(
	date time.Time,
	start types.TimeString,
	durationMinutes int,
	roster []*domain.VetAvailability,
	dayAppointments []*domain.Appointment,
) []AvailableVet {
	vets := make([]AvailableVet, 0)

	for _, av := range roster {
		if av.CanTake(date, start, durationMinutes, dayAppointments) {
			vets = append(vets, AvailableVet{
				VetID:   av.VetID,
				VetName: av.VetName,
			})
		}
	}

	sort.Slice(vets, func(i, j int) bool {
		if vets[i].VetName != vets[j].VetName {
			return vets[i].VetName < vets[j].VetName
		}
		return vets[i].VetID < vets[j].VetID
	})

	return vets
}

// isSlotFullyBooked реализует презентационный предикат "слот занят":
// на это же время существует занимающая слот запись И ни один ветеринар
// не свободен. Одна лишь запись слот не закрывает - у другого ветеринара
// может оставаться окно
func isSlotFullyBooked(
	date time.Time,
	start types.TimeString,
	availableCount int,
	dayAppointments []*domain.Appointment,
) bool {
	if availableCount > 0 {
		return false
	}

	for _, apt := range dayAppointments {
		if !apt.IsBlocking() {
			continue
		}
		if !domain.SameDate(apt.Date, date) {
			continue
		}
		if apt.StartTime == start {
			return true
		}
	}

	return false
}
