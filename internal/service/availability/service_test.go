package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	availabilityRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/availability"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/availability/models"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/ptr"
)

type stubRepo struct {
	stored *domain.VetAvailability
	err    error
}

func (s *stubRepo) Upsert(_ context.Context, av *domain.VetAvailability) (*domain.VetAvailability, error) {
	if s.err != nil {
		return nil, s.err
	}
	saved := *av
	saved.ID = 1
	s.stored = &saved
	return &saved, nil
}

func (s *stubRepo) GetByVetID(_ context.Context, _ int64) (*domain.VetAvailability, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stored, nil
}

func (s *stubRepo) ListAll(_ context.Context) ([]*domain.VetAvailability, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.stored == nil {
		return nil, nil
	}
	return []*domain.VetAvailability{s.stored}, nil
}

func (s *stubRepo) Delete(_ context.Context, _ int64) error {
	return s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validUpsertRequest() *models.UpsertAvailabilityRequest {
	return &models.UpsertAvailabilityRequest{
		UserID:                     10,
		VetID:                      10,
		VetName:                    "Dr. Alice",
		WorkingDays:                []string{"Monday", "Tuesday", "Wednesday"},
		StartTime:                  "09:00",
		EndTime:                    "17:00",
		LunchStartTime:             ptr.Ptr("12:00"),
		LunchEndTime:               ptr.Ptr("13:00"),
		AppointmentDurationMinutes: 30,
	}
}

func TestUpsert_Success(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Upsert(context.Background(), validUpsertRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(10), resp.VetID)
	assert.Equal(t, "Dr. Alice", resp.VetName)
	assert.Equal(t, "09:00", resp.StartTime)
	require.NotNil(t, resp.LunchStartTime)
	assert.Equal(t, "12:00", *resp.LunchStartTime)
}

func TestUpsert_OnlyOwnSchedule(t *testing.T) {
	svc := NewService(&stubRepo{}, noopLogger{})

	req := validUpsertRequest()
	req.UserID = 99

	_, err := svc.Upsert(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpsert_Validation(t *testing.T) {
	svc := NewService(&stubRepo{}, noopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.UpsertAvailabilityRequest)
	}{
		{"empty vet name", func(r *models.UpsertAvailabilityRequest) { r.VetName = "" }},
		{"no working days", func(r *models.UpsertAvailabilityRequest) { r.WorkingDays = nil }},
		{"unknown weekday", func(r *models.UpsertAvailabilityRequest) { r.WorkingDays = []string{"Funday"} }},
		{"lowercase weekday", func(r *models.UpsertAvailabilityRequest) { r.WorkingDays = []string{"monday"} }},
		{"duplicate weekday", func(r *models.UpsertAvailabilityRequest) {
			r.WorkingDays = []string{"Monday", "Monday"}
		}},
		{"malformed start time", func(r *models.UpsertAvailabilityRequest) { r.StartTime = "9am" }},
		{"start after end", func(r *models.UpsertAvailabilityRequest) {
			r.StartTime = "17:00"
			r.EndTime = "09:00"
		}},
		{"start equals end", func(r *models.UpsertAvailabilityRequest) {
			r.StartTime = "09:00"
			r.EndTime = "09:00"
		}},
		{"lunch start without end", func(r *models.UpsertAvailabilityRequest) { r.LunchEndTime = nil }},
		{"lunch end without start", func(r *models.UpsertAvailabilityRequest) { r.LunchStartTime = nil }},
		{"lunch start after lunch end", func(r *models.UpsertAvailabilityRequest) {
			r.LunchStartTime = ptr.Ptr("14:00")
			r.LunchEndTime = ptr.Ptr("13:00")
		}},
		{"lunch outside working hours", func(r *models.UpsertAvailabilityRequest) {
			r.LunchStartTime = ptr.Ptr("08:00")
			r.LunchEndTime = ptr.Ptr("09:30")
		}},
		{"duration too short", func(r *models.UpsertAvailabilityRequest) { r.AppointmentDurationMinutes = 1 }},
		{"duration too long", func(r *models.UpsertAvailabilityRequest) { r.AppointmentDurationMinutes = 600 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpsertRequest()
			tt.mutate(req)

			_, err := svc.Upsert(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpsert_NoLunchBreakAllowed(t *testing.T) {
	svc := NewService(&stubRepo{}, noopLogger{})

	req := validUpsertRequest()
	req.LunchStartTime = nil
	req.LunchEndTime = nil

	resp, err := svc.Upsert(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.LunchStartTime)
	assert.Nil(t, resp.LunchEndTime)
}

func TestGetByVetID_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{err: availabilityRepo.ErrAvailabilityNotFound}, noopLogger{})

	_, err := svc.GetByVetID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}

func TestListAll_EmptyRoster(t *testing.T) {
	svc := NewService(&stubRepo{}, noopLogger{})

	resp, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Vets)
}
