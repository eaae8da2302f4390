package get_available_vets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	serviceRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/service"
)

// 2026-09-07 - понедельник
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (s *stubAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

type stubAvailabilityRepo struct {
	roster []*domain.VetAvailability
}

func (s *stubAvailabilityRepo) ListAll(_ context.Context) ([]*domain.VetAvailability, error) {
	return s.roster, nil
}

type stubServiceRepo struct {
	service *domain.Service
	err     error
}

func (s *stubServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.service, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(
	roster []*domain.VetAvailability,
	appointments []*domain.Appointment,
	service *domain.Service,
) *UseCase {
	return NewUseCase(
		&stubAppointmentRepo{appointments: appointments},
		&stubAvailabilityRepo{roster: roster},
		&stubServiceRepo{service: service},
		noopLogger{},
	)
}

func thirtyMinuteService() *domain.Service {
	duration := 30
	return &domain.Service{ID: 1, Name: "Checkup", Price: 50, DurationMinutes: &duration}
}

func mondayVet(vetID int64, name string) *domain.VetAvailability {
	return &domain.VetAvailability{
		ID:          vetID,
		VetID:       vetID,
		VetName:     name,
		WorkingDays: []string{"Monday"},
		StartTime:   "09:00",
		EndTime:     "17:00",
	}
}

func TestExecute_SortedByName(t *testing.T) {
	roster := []*domain.VetAvailability{
		mondayVet(30, "Dr. Zoe"),
		mondayVet(10, "Dr. Alice"),
		mondayVet(20, "Dr. Bob"),
	}

	uc := newTestUseCase(roster, nil, thirtyMinuteService())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday, StartTime: "10:00"})
	require.NoError(t, err)

	assert.Equal(t, []AvailableVet{
		{VetID: 10, VetName: "Dr. Alice"},
		{VetID: 20, VetName: "Dr. Bob"},
		{VetID: 30, VetName: "Dr. Zoe"},
	}, resp.Vets)
	assert.False(t, resp.FullyBooked)
}

func TestExecute_BusyVetExcluded(t *testing.T) {
	roster := []*domain.VetAvailability{
		mondayVet(10, "Dr. Alice"),
		mondayVet(20, "Dr. Bob"),
	}
	appointments := []*domain.Appointment{
		{
			ID:              1,
			VetID:           10,
			Date:            monday,
			StartTime:       "10:00",
			DurationMinutes: 30,
			Status:          domain.StatusApproved,
		},
	}

	uc := newTestUseCase(roster, appointments, thirtyMinuteService())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday, StartTime: "10:00"})
	require.NoError(t, err)

	assert.Equal(t, []AvailableVet{{VetID: 20, VetName: "Dr. Bob"}}, resp.Vets)
	assert.False(t, resp.FullyBooked)
}

func TestExecute_FullyBooked(t *testing.T) {
	roster := []*domain.VetAvailability{
		mondayVet(10, "Dr. Alice"),
	}
	appointments := []*domain.Appointment{
		{
			ID:              1,
			VetID:           10,
			Date:            monday,
			StartTime:       "10:00",
			DurationMinutes: 30,
			Status:          domain.StatusPending,
		},
	}

	uc := newTestUseCase(roster, appointments, thirtyMinuteService())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday, StartTime: "10:00"})
	require.NoError(t, err)

	assert.Empty(t, resp.Vets)
	assert.True(t, resp.FullyBooked)
}

func TestExecute_NobodyWorksButNotFullyBooked(t *testing.T) {
	// Никто не работает в воскресенье, но записей на это время нет:
	// слот пуст, а не занят
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local)
	roster := []*domain.VetAvailability{
		mondayVet(10, "Dr. Alice"),
	}

	uc := newTestUseCase(roster, nil, thirtyMinuteService())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: sunday, StartTime: "10:00"})
	require.NoError(t, err)

	assert.Empty(t, resp.Vets)
	assert.False(t, resp.FullyBooked)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&stubAppointmentRepo{},
		&stubAvailabilityRepo{},
		&stubServiceRepo{err: serviceRepo.ErrServiceNotFound},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 42, Date: monday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, nil, thirtyMinuteService())

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: monday, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1, StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday, StartTime: "25:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
