package get_available_slots

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// rosterGridBounds возвращает границы сетки слотов: самое раннее время начала
// и самое позднее время окончания работы по всему ростеру.
// Сетка общая для всех ветеринаров, чтобы слоты выглядели одинаково
// независимо от того, кто в итоге примет пациента.
// ok=false, если в ростере нет ни одной корректной записи.
func rosterGridBounds(roster []*domain.VetAvailability) (types.TimeString, types.TimeString, bool) {
	var start, end types.TimeString
	found := false

	for _, av := range roster {
		if av.StartTime.Validate() != nil || av.EndTime.Validate() != nil {
			continue
		}
		if !found {
			start, end = av.StartTime, av.EndTime
			found = true
			continue
		}
		if av.StartTime.IsBefore(start) {
			start = av.StartTime
		}
		if av.EndTime.IsAfter(end) {
			end = av.EndTime
		}
	}

	return start, end, found
}

// generateGrid генерирует точки сетки с фиксированным шагом от start до end
// Точка включается, пока она строго раньше end; влезает ли услуга целиком,
// решает уже проверка доступности конкретного ветеринара
func generateGrid(start, end types.TimeString) []types.TimeString {
	grid := make([]types.TimeString, 0)

	current := start
	for current.IsBefore(end) {
		grid = append(grid, current)

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return grid
}

// defaultGrid возвращает сетку по умолчанию (08:00-17:30 с шагом 30 минут)
// Используется при пустом ростере: отсутствие конфигурации открывает
// календарь целиком, а не блокирует запись. Это осознанное продуктовое
// решение, противоположное правилу "ветеринар без записи недоступен".
func defaultGrid() []types.TimeString {
	return generateGrid(domain.DefaultGridStart, domain.DefaultGridEnd)
}

// countAvailableVets подсчитывает ветеринаров, свободных для услуги
// длительностью durationMinutes, начинающейся в start на date
func countAvailableVets(
	date time.Time,
	start types.TimeString,
	durationMinutes int,
	roster []*domain.VetAvailability,
	dayAppointments []*domain.Appointment,
) int {
	count := 0
	for _, av := range roster {
		if av.CanTake(date, start, durationMinutes, dayAppointments) {
			count++
		}
	}
	return count
}

// buildSlots собирает итоговый список слотов: точки сетки, в которых свободен
// хотя бы один ветеринар. Сетка генерируется по возрастанию, порядок сохраняется
func buildSlots(
	date time.Time,
	grid []types.TimeString,
	durationMinutes int,
	roster []*domain.VetAvailability,
	dayAppointments []*domain.Appointment,
) []domain.AvailableSlot {
	slots := make([]domain.AvailableSlot, 0, len(grid))

	for _, start := range grid {
		available := countAvailableVets(date, start, durationMinutes, roster, dayAppointments)
		if available == 0 {
			continue
		}

		slots = append(slots, domain.AvailableSlot{
			StartTime:       start,
			DurationMinutes: durationMinutes,
			AvailableVets:   available,
			TotalVets:       len(roster),
		})
	}

	return slots
}

// buildDefaultSlots оборачивает сетку по умолчанию в слоты
// AvailableVets/TotalVets равны нулю: вызывающая сторона по ним отличает
// fallback от настоящей доступности
func buildDefaultSlots(durationMinutes int) []domain.AvailableSlot {
	grid := defaultGrid()
	slots := make([]domain.AvailableSlot, 0, len(grid))

	for _, start := range grid {
		slots = append(slots, domain.AvailableSlot{
			StartTime:       start,
			DurationMinutes: durationMinutes,
		})
	}

	return slots
}
