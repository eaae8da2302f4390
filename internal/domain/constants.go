package domain

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// Default configuration values
const (
	// DefaultServiceDurationMinutes applies when a service has no duration of its own
	DefaultServiceDurationMinutes = 30

	// SlotStepMinutes is the fixed granularity of the booking grid
	SlotStepMinutes = 30
)

// Default booking-grid bounds, used when no vet has declared availability.
// An unconfigured clinic keeps an open calendar rather than a closed one.
const (
	DefaultGridStart = types.TimeString("08:00")
	DefaultGridEnd   = types.TimeString("18:00")
)

// Business validation constants
const (
	MinAppointmentDurationMinutes = 5
	MaxAppointmentDurationMinutes = 480 // 8 hours
	MaxNotesLength                = 500
	MaxCancellationReasonLength   = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// WeekdayNames канонические названия дней недели для working_days
var WeekdayNames = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// BlockingStatuses список статусов, занимающих слот
// Используется при подсчёте конфликтов и доступных слотов
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
}

// NonBlockingStatuses список статусов, не занимающих слот
var NonBlockingStatuses = []AppointmentStatus{
	StatusRejected,
	StatusCancelled,
	StatusRescheduled,
}

// IsValidWeekday проверяет, что строка является каноническим названием дня недели
func IsValidWeekday(name string) bool {
	for _, d := range WeekdayNames {
		if d == name {
			return true
		}
	}
	return false
}

// WeekdayName возвращает название дня недели даты в её локальном календаре.
// Дата не конвертируется в UTC: запись на "2025-10-15" означает этот день
// в часовом поясе клиники, и сдвиг через UTC мог бы выбрать соседний день.
func WeekdayName(date time.Time) string {
	return date.Weekday().String()
}

// DateKey возвращает каноническую строку даты "YYYY-MM-DD" в локальном календаре
func DateKey(date time.Time) string {
	return date.Format(DateFormat)
}

// SameDate проверяет, что две даты относятся к одному календарному дню
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
