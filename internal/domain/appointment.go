package domain

import (
	"time"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "pending"
	StatusApproved    AppointmentStatus = "approved"
	StatusRejected    AppointmentStatus = "rejected"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusRescheduled AppointmentStatus = "rescheduled"
)

// Appointment represents a booked visit to a veterinarian
type Appointment struct {
	ID        int64
	ClientID  int64
	VetID     int64
	PetID     int64
	ServiceID int64

	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	VetName      string
	ServiceName  string
	ServicePrice float64
	PetName      *string
	PetSpecies   *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time
	RescheduledTo      *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the appointment occupies its time slot.
// Only pending and approved appointments block new bookings; rejected,
// cancelled and rescheduled ones never do.
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// CanBeRescheduled returns true if the appointment can be moved to another slot
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// CanBeApproved returns true if the appointment is awaiting a staff decision
func (a *Appointment) CanBeApproved() bool {
	return a.Status == StatusPending
}

// IsFinal returns true if the appointment reached a terminal status
func (a *Appointment) IsFinal() bool {
	return a.Status == StatusRejected || a.Status == StatusCancelled || a.Status == StatusRescheduled
}

// BlockingDuration returns the slot length this appointment occupies.
// Rows written before duration snapshots existed may carry a non-positive
// value; those count as the default service duration.
func (a *Appointment) BlockingDuration() int {
	if a.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return a.DurationMinutes
}

// AppointmentsFilter фильтр для выборки записей клиники
type AppointmentsFilter struct {
	VetID        *int64             // Фильтр по ветеринару (опционально)
	ClientID     *int64             // Фильтр по клиенту (опционально)
	Date         *time.Time         // Конкретная дата (опционально)
	StartDate    *time.Time         // Начало периода (опционально)
	EndDate      *time.Time         // Конец периода (опционально)
	Status       *AppointmentStatus // Фильтр по статусу (опционально)
	BlockingOnly bool               // Только записи, занимающие слот (pending/approved)
}
