package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// 2026-09-07 - понедельник, 2026-09-06 - воскресенье
var (
	monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	sunday = time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local)
)

func weekdayVet() *VetAvailability {
	lunchStart := types.TimeString("12:00")
	lunchEnd := types.TimeString("13:00")
	return &VetAvailability{
		ID:                         1,
		VetID:                      10,
		VetName:                    "Dr. Alice",
		WorkingDays:                []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		StartTime:                  "09:00",
		EndTime:                    "17:00",
		LunchStartTime:             &lunchStart,
		LunchEndTime:               &lunchEnd,
		AppointmentDurationMinutes: 30,
	}
}

func blockingAppointment(vetID int64, date time.Time, start types.TimeString, duration int) *Appointment {
	return &Appointment{
		ID:              100,
		VetID:           vetID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          StatusApproved,
	}
}

func TestCanTake_WorkingDay(t *testing.T) {
	vet := weekdayVet()

	assert.True(t, vet.CanTake(monday, "10:00", 30, nil))
	// Воскресенья нет в working_days
	assert.False(t, vet.CanTake(sunday, "10:00", 30, nil))
}

func TestCanTake_WorkingHoursContainment(t *testing.T) {
	vet := weekdayVet()

	// Начало до открытия
	assert.False(t, vet.CanTake(monday, "08:30", 30, nil))

	// Приём должен целиком уместиться до закрытия
	assert.False(t, vet.CanTake(monday, "16:30", 60, nil))
	// Окончание ровно в закрытие допустимо
	assert.True(t, vet.CanTake(monday, "16:00", 60, nil))
	assert.True(t, vet.CanTake(monday, "16:30", 30, nil))
}

func TestCanTake_LunchOverlap(t *testing.T) {
	vet := weekdayVet()

	// Частичное пересечение с обедом запрещено
	assert.False(t, vet.CanTake(monday, "11:45", 30, nil))
	// Целиком внутри обеда
	assert.False(t, vet.CanTake(monday, "12:00", 30, nil))
	// Окончание ровно в начало обеда допустимо
	assert.True(t, vet.CanTake(monday, "11:30", 30, nil))
	// Начало ровно в конец обеда допустимо
	assert.True(t, vet.CanTake(monday, "13:00", 30, nil))
}

func TestCanTake_NoLunchBreak(t *testing.T) {
	vet := weekdayVet()
	vet.LunchStartTime = nil
	vet.LunchEndTime = nil

	// Без обеда слот посреди дня свободен
	assert.True(t, vet.CanTake(monday, "12:00", 30, nil))
}

func TestCanTake_Conflicts(t *testing.T) {
	vet := weekdayVet()
	appointments := []*Appointment{
		blockingAppointment(vet.VetID, monday, "10:00", 30),
	}

	// Пересечение с существующей записью
	assert.False(t, vet.CanTake(monday, "10:00", 30, appointments))
	assert.False(t, vet.CanTake(monday, "10:15", 30, appointments))
	assert.False(t, vet.CanTake(monday, "09:45", 30, appointments))

	// Стык интервалов конфликтом не считается
	assert.True(t, vet.CanTake(monday, "10:30", 30, appointments))
	assert.True(t, vet.CanTake(monday, "09:30", 30, appointments))
}

func TestCanTake_NonBlockingStatusesNeverBlock(t *testing.T) {
	vet := weekdayVet()

	for _, status := range NonBlockingStatuses {
		apt := blockingAppointment(vet.VetID, monday, "10:00", 30)
		apt.Status = status
		assert.True(t, vet.CanTake(monday, "10:00", 30, []*Appointment{apt}),
			"status %s must not block", status)
	}

	for _, status := range BlockingStatuses {
		apt := blockingAppointment(vet.VetID, monday, "10:00", 30)
		apt.Status = status
		assert.False(t, vet.CanTake(monday, "10:00", 30, []*Appointment{apt}),
			"status %s must block", status)
	}
}

func TestCanTake_IgnoresOtherVetsAndDates(t *testing.T) {
	vet := weekdayVet()

	otherVet := blockingAppointment(999, monday, "10:00", 30)
	assert.True(t, vet.CanTake(monday, "10:00", 30, []*Appointment{otherVet}))

	otherMonday := monday.AddDate(0, 0, 7)
	otherDate := blockingAppointment(vet.VetID, otherMonday, "10:00", 30)
	assert.True(t, vet.CanTake(monday, "10:00", 30, []*Appointment{otherDate}))
}

func TestCanTake_DefaultsAndDegradation(t *testing.T) {
	vet := weekdayVet()

	// Неположительная длительность заменяется дефолтной (30 минут)
	assert.True(t, vet.CanTake(monday, "16:30", 0, nil))
	assert.False(t, vet.CanTake(monday, "16:45", 0, nil))

	// Некорректное время начала деградирует в false, не в панику
	assert.False(t, vet.CanTake(monday, "25:99", 30, nil))
	assert.False(t, vet.CanTake(monday, "", 30, nil))

	// Некорректные рабочие часы закрывают весь день
	broken := weekdayVet()
	broken.StartTime = "garbage"
	assert.False(t, broken.CanTake(monday, "10:00", 30, nil))

	// Запись с некорректным временем пропускается при поиске конфликтов
	badApt := blockingAppointment(vet.VetID, monday, "bad", 30)
	assert.True(t, vet.CanTake(monday, "10:00", 30, []*Appointment{badApt}))
}

func TestAppointment_BlockingDuration(t *testing.T) {
	apt := &Appointment{DurationMinutes: 45}
	assert.Equal(t, 45, apt.BlockingDuration())

	apt.DurationMinutes = 0
	assert.Equal(t, DefaultServiceDurationMinutes, apt.BlockingDuration())

	apt.DurationMinutes = -10
	assert.Equal(t, DefaultServiceDurationMinutes, apt.BlockingDuration())
}
