package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	serviceRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/service"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
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

func morningVet() *domain.VetAvailability {
	return &domain.VetAvailability{
		ID:          1,
		VetID:       10,
		VetName:     "Dr. Alice",
		WorkingDays: []string{"Monday"},
		StartTime:   "09:00",
		EndTime:     "12:00",
	}
}

func slotTimes(slots []domain.AvailableSlot) []types.TimeString {
	times := make([]types.TimeString, len(slots))
	for i, s := range slots {
		times[i] = s.StartTime
	}
	return times
}

func TestExecute_SingleVetMorning(t *testing.T) {
	uc := newTestUseCase([]*domain.VetAvailability{morningVet()}, nil, thirtyMinuteService())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)
	require.False(t, resp.DefaultGrid)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		slotTimes(resp.Slots))
	for _, slot := range resp.Slots {
		assert.Equal(t, 1, slot.AvailableVets)
		assert.Equal(t, 1, slot.TotalVets)
		assert.Equal(t, 30, slot.DurationMinutes)
	}
}

func TestExecute_BookedSlotDisappears(t *testing.T) {
	booked := &domain.Appointment{
		ID:              1,
		VetID:           10,
		Date:            monday,
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusApproved,
	}

	uc := newTestUseCase([]*domain.VetAvailability{morningVet()},
		[]*domain.Appointment{booked}, thirtyMinuteService())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)

	// 10:00 занят единственным ветеринаром, соседние слоты не затронуты
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:30", "11:00", "11:30"},
		slotTimes(resp.Slots))
}

func TestExecute_SecondVetKeepsSlotOpen(t *testing.T) {
	second := &domain.VetAvailability{
		ID:          2,
		VetID:       20,
		VetName:     "Dr. Bob",
		WorkingDays: []string{"Monday"},
		StartTime:   "09:00",
		EndTime:     "12:00",
	}
	booked := &domain.Appointment{
		ID:              1,
		VetID:           10,
		Date:            monday,
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusPending,
	}

	uc := newTestUseCase([]*domain.VetAvailability{morningVet(), second},
		[]*domain.Appointment{booked}, thirtyMinuteService())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)

	// Слот 10:00 остаётся: второй ветеринар свободен
	times := slotTimes(resp.Slots)
	assert.Contains(t, times, types.TimeString("10:00"))

	for _, slot := range resp.Slots {
		if slot.StartTime == "10:00" {
			assert.Equal(t, 1, slot.AvailableVets)
			assert.Equal(t, 2, slot.TotalVets)
		}
	}
}

func TestExecute_EmptyRosterFallsBackToDefaultGrid(t *testing.T) {
	uc := newTestUseCase(nil, nil, thirtyMinuteService())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)
	require.True(t, resp.DefaultGrid)

	times := slotTimes(resp.Slots)
	require.Len(t, times, 20)
	assert.Equal(t, types.TimeString("08:00"), times[0])
	assert.Equal(t, types.TimeString("17:30"), times[len(times)-1])

	// Fallback-слоты не несут данных о доступности
	for _, slot := range resp.Slots {
		assert.Equal(t, 0, slot.AvailableVets)
		assert.Equal(t, 0, slot.TotalVets)
	}
}

func TestExecute_GridSpansRoster(t *testing.T) {
	early := morningVet()
	late := &domain.VetAvailability{
		ID:          2,
		VetID:       20,
		VetName:     "Dr. Bob",
		WorkingDays: []string{"Monday"},
		StartTime:   "14:00",
		EndTime:     "16:00",
	}

	uc := newTestUseCase([]*domain.VetAvailability{early, late}, nil, thirtyMinuteService())

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)

	times := slotTimes(resp.Slots)
	// Промежуток 12:00-14:00 в сетке есть, но никто не свободен
	assert.NotContains(t, times, types.TimeString("12:00"))
	assert.NotContains(t, times, types.TimeString("13:30"))
	assert.Contains(t, times, types.TimeString("09:00"))
	assert.Contains(t, times, types.TimeString("14:00"))
	assert.Contains(t, times, types.TimeString("15:30"))
	assert.NotContains(t, times, types.TimeString("16:00"))
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&stubAppointmentRepo{},
		&stubAvailabilityRepo{},
		&stubServiceRepo{err: serviceRepo.ErrServiceNotFound},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 42, Date: monday})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, nil, thirtyMinuteService())

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Idempotent(t *testing.T) {
	uc := newTestUseCase([]*domain.VetAvailability{morningVet()}, nil, thirtyMinuteService())

	first, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}
