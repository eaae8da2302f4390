package domain

import "time"

// Service represents an entry in the clinic's service catalog
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes *int // nil = use the default duration

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the service duration, falling back to the default
// when the catalog entry does not declare one
func (s *Service) Duration() int {
	if s == nil || s.DurationMinutes == nil || *s.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return *s.DurationMinutes
}
