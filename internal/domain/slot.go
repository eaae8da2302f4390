package domain

import "github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"

// AvailableSlot represents a time slot on the booking grid
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	AvailableVets   int // Vets free to take the slot
	TotalVets       int // Roster size (0 when the default grid is in effect)
}

// HasCapacity returns true if at least one vet can take the slot
func (s *AvailableSlot) HasCapacity() bool {
	return s.AvailableVets > 0
}

// IsDefaultGrid returns true if the slot comes from the unconfigured-roster
// fallback grid rather than from declared availability
func (s *AvailableSlot) IsDefaultGrid() bool {
	return s.TotalVets == 0
}
