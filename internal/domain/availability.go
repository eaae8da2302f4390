package domain

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// VetAvailability represents one veterinarian's declared working schedule.
// A vet without a record is never offered as available.
type VetAvailability struct {
	ID      int64
	VetID   int64
	VetName string

	WorkingDays []string // weekday names, e.g. "Monday"
	StartTime   types.TimeString
	EndTime     types.TimeString

	// Lunch window is all-or-nothing: either both fields are set or neither
	LunchStartTime *types.TimeString
	LunchEndTime   *types.TimeString

	// Default slot length for this vet, used when a service has no duration
	AppointmentDurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWorkingDay returns true if the vet works on the weekday of date
func (v *VetAvailability) IsWorkingDay(date time.Time) bool {
	weekday := WeekdayName(date)
	for _, d := range v.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// HasLunchBreak returns true if the vet has a declared lunch window
func (v *VetAvailability) HasLunchBreak() bool {
	return v.LunchStartTime != nil && v.LunchEndTime != nil
}

// CanTake reports whether the vet is free for an appointment of
// durationMinutes starting at start on date, given the day's appointments.
//
// All intervals are half-open [start, start+duration): two intervals
// conflict only when they genuinely overlap, touching endpoints do not.
// Any malformed input degrades to false: a slot we cannot reason about is
// treated as unavailable, never double-booked.
func (v *VetAvailability) CanTake(
	date time.Time,
	start types.TimeString,
	durationMinutes int,
	appointments []*Appointment,
) bool {
	if !v.IsWorkingDay(date) {
		return false
	}

	if durationMinutes <= 0 {
		durationMinutes = DefaultServiceDurationMinutes
	}

	if start.Validate() != nil || v.StartTime.Validate() != nil || v.EndTime.Validate() != nil {
		return false
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	// The entire appointment must fit inside working hours, not just its start
	if start.IsBefore(v.StartTime) || end.IsAfter(v.EndTime) {
		return false
	}

	// Any overlap with the lunch window disqualifies the slot, partial included
	if v.HasLunchBreak() {
		if start.IsBefore(*v.LunchEndTime) && end.IsAfter(*v.LunchStartTime) {
			return false
		}
	}

	for _, apt := range appointments {
		if apt.VetID != v.VetID {
			continue
		}
		if !apt.IsBlocking() {
			continue
		}
		if !SameDate(apt.Date, date) {
			continue
		}

		aptEnd, err := apt.StartTime.AddMinutes(apt.BlockingDuration())
		if err != nil {
			continue
		}

		// Strict comparisons: back-to-back appointments are not a conflict
		if apt.StartTime.IsBefore(end) && aptEnd.IsAfter(start) {
			return false
		}
	}

	return true
}
