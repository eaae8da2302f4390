package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	availabilityRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/availability"
	serviceRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/service"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/integrations/petregistry"
)

// 2026-09-07 - понедельник
var (
	monday  = time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
)

type stubAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
}

func (s *stubAppointmentRepo) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	stored := *apt
	stored.ID = 777
	stored.CreatedAt = testNow
	stored.UpdatedAt = testNow
	s.created = &stored
	return &stored, nil
}

func (s *stubAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return s.existing, nil
}

type stubAvailabilityRepo struct {
	availability *domain.VetAvailability
	err          error
}

func (s *stubAvailabilityRepo) GetByVetID(_ context.Context, _ int64) (*domain.VetAvailability, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.availability, nil
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

type stubPetRegistry struct {
	pet *petregistry.Pet
	err error
}

func (s *stubPetRegistry) GetPetWithGracefulDegradation(_ context.Context, _, _ int64) (*petregistry.Pet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pet, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func thirtyMinuteService() *domain.Service {
	duration := 30
	return &domain.Service{ID: 3, Name: "Checkup", Price: 50, DurationMinutes: &duration}
}

func mondayVet() *domain.VetAvailability {
	return &domain.VetAvailability{
		ID:          1,
		VetID:       10,
		VetName:     "Dr. Alice",
		WorkingDays: []string{"Monday"},
		StartTime:   "09:00",
		EndTime:     "17:00",
	}
}

func testPet() *petregistry.Pet {
	return &petregistry.Pet{ID: 5, Name: "Барсик", Species: "cat"}
}

func newTestUseCase(
	aptRepo *stubAppointmentRepo,
	avRepo *stubAvailabilityRepo,
	svcRepo *stubServiceRepo,
	pets *stubPetRegistry,
) *UseCase {
	uc := NewUseCase(aptRepo, avRepo, svcRepo, pets, stubTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientID:  100,
		VetID:     10,
		PetID:     5,
		ServiceID: 3,
		Date:      monday,
		StartTime: "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	aptRepo := &stubAppointmentRepo{}
	uc := newTestUseCase(
		aptRepo,
		&stubAvailabilityRepo{availability: mondayVet()},
		&stubServiceRepo{service: thirtyMinuteService()},
		&stubPetRegistry{pet: testPet()},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(777), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 30, resp.DurationMinutes)

	// Денормализованный снимок
	assert.Equal(t, "Dr. Alice", resp.VetName)
	assert.Equal(t, "Checkup", resp.ServiceName)
	assert.Equal(t, 50.0, resp.ServicePrice)
	require.NotNil(t, resp.PetName)
	assert.Equal(t, "Барсик", *resp.PetName)
	require.NotNil(t, resp.PetSpecies)
	assert.Equal(t, "cat", *resp.PetSpecies)

	require.NotNil(t, aptRepo.created)
	assert.Equal(t, domain.StatusPending, aptRepo.created.Status)
}

func TestExecute_WalkInApprovedImmediately(t *testing.T) {
	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubAvailabilityRepo{availability: mondayVet()},
		&stubServiceRepo{service: thirtyMinuteService()},
		&stubPetRegistry{pet: testPet()},
	)

	req := validRequest()
	req.WalkIn = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
}

func TestExecute_SlotConflict(t *testing.T) {
	busy := &domain.Appointment{
		ID:              1,
		VetID:           10,
		Date:            monday,
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusApproved,
	}

	uc := newTestUseCase(
		&stubAppointmentRepo{existing: []*domain.Appointment{busy}},
		&stubAvailabilityRepo{availability: mondayVet()},
		&stubServiceRepo{service: thirtyMinuteService()},
		&stubPetRegistry{pet: testPet()},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	busy := &domain.Appointment{
		ID:              1,
		VetID:           10,
		Date:            monday,
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusApproved,
	}

	uc := newTestUseCase(
		&stubAppointmentRepo{existing: []*domain.Appointment{busy}},
		&stubAvailabilityRepo{availability: mondayVet()},
		&stubServiceRepo{service: thirtyMinuteService()},
		&stubPetRegistry{pet: testPet()},
	)

	// Стык интервалов конфликтом не считается
	req := validRequest()
	req.StartTime = "10:30"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_VetWithoutAvailability(t *testing.T) {
	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubAvailabilityRepo{err: availabilityRepo.ErrAvailabilityNotFound},
		&stubServiceRepo{service: thirtyMinuteService()},
		&stubPetRegistry{pet: testPet()},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVetNotAvailable)
}

func TestExecute_PetRegistryDegraded(t *testing.T) {
	aptRepo := &stubAppointmentRepo{}
	uc := newTestUseCase(
		aptRepo,
		&stubAvailabilityRepo{availability: mondayVet()},
		&stubServiceRepo{service: thirtyMinuteService()},
		&stubPetRegistry{err: petregistry.ErrServiceDegraded},
	)

	// Недоступность реестра не мешает записи, снимок питомца пуст
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Nil(t, resp.PetName)
	assert.Nil(t, resp.PetSpecies)
}

func TestExecute_PetNotFound(t *testing.T) {
	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubAvailabilityRepo{availability: mondayVet()},
		&stubServiceRepo{service: thirtyMinuteService()},
		&stubPetRegistry{err: petregistry.ErrPetNotFound},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubAvailabilityRepo{availability: mondayVet()},
		&stubServiceRepo{err: serviceRepo.ErrServiceNotFound},
		&stubPetRegistry{pet: testPet()},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubAvailabilityRepo{availability: mondayVet()},
		&stubServiceRepo{service: thirtyMinuteService()},
		&stubPetRegistry{pet: testPet()},
	)

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(
		&stubAppointmentRepo{},
		&stubAvailabilityRepo{availability: mondayVet()},
		&stubServiceRepo{service: thirtyMinuteService()},
		&stubPetRegistry{pet: testPet()},
	)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero client", func(r *Request) { r.ClientID = 0 }},
		{"zero vet", func(r *Request) { r.VetID = 0 }},
		{"zero pet", func(r *Request) { r.PetID = 0 }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
