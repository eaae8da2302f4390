package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	appointmentRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/availability"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/appointments/models"
)

const (
	clientID = int64(100)
	staffID  = int64(10)
	otherID  = int64(999)
)

type stubAppointmentRepo struct {
	byID     map[int64]*domain.Appointment
	filtered []*domain.Appointment

	cancelledID     int64
	cancelReason    string
	updatedID       int64
	updatedToStatus domain.AppointmentStatus
}

func (s *stubAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	apt, ok := s.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return apt, nil
}

func (s *stubAppointmentRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return s.filtered, nil
}

func (s *stubAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	s.updatedID = id
	s.updatedToStatus = status
	return nil
}

func (s *stubAppointmentRepo) Cancel(_ context.Context, id int64, reason string) error {
	s.cancelledID = id
	s.cancelReason = reason
	return nil
}

// Сотрудником считается пользователь с расписанием в ростере
type stubAvailabilityRepo struct {
	staffIDs map[int64]bool
}

func (s *stubAvailabilityRepo) GetByVetID(_ context.Context, vetID int64) (*domain.VetAvailability, error) {
	if !s.staffIDs[vetID] {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return &domain.VetAvailability{VetID: vetID, VetName: "Dr. Alice"}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              1,
		ClientID:        clientID,
		VetID:           staffID,
		PetID:           5,
		ServiceID:       3,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusPending,
	}
}

func newTestService(aptRepo *stubAppointmentRepo) *Service {
	return NewService(aptRepo, &stubAvailabilityRepo{staffIDs: map[int64]bool{staffID: true}}, noopLogger{})
}

func TestGetByID_Access(t *testing.T) {
	apt := pendingAppointment()
	svc := newTestService(&stubAppointmentRepo{byID: map[int64]*domain.Appointment{apt.ID: apt}})

	// Владелец видит свою запись
	resp, err := svc.GetByID(context.Background(), apt.ID, clientID)
	require.NoError(t, err)
	assert.Equal(t, apt.ID, resp.ID)

	// Сотрудник видит любую
	_, err = svc.GetByID(context.Background(), apt.ID, staffID)
	require.NoError(t, err)

	// Посторонний - нет
	_, err = svc.GetByID(context.Background(), apt.ID, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&stubAppointmentRepo{byID: map[int64]*domain.Appointment{}})

	_, err := svc.GetByID(context.Background(), 42, clientID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetClientAppointments_Access(t *testing.T) {
	svc := newTestService(&stubAppointmentRepo{filtered: []*domain.Appointment{pendingAppointment()}})

	// Клиент смотрит свою историю
	resp, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		UserID:   clientID,
		ClientID: clientID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	// Сотрудник смотрит историю любого клиента
	_, err = svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		UserID:   staffID,
		ClientID: clientID,
	})
	require.NoError(t, err)

	// Чужая история постороннему недоступна
	_, err = svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		UserID:   otherID,
		ClientID: clientID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetClientAppointments_InvalidStatus(t *testing.T) {
	svc := newTestService(&stubAppointmentRepo{})

	badStatus := "confirmed"
	_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		UserID:   clientID,
		ClientID: clientID,
		Status:   &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetClinicAppointments_StaffOnly(t *testing.T) {
	svc := newTestService(&stubAppointmentRepo{filtered: []*domain.Appointment{pendingAppointment()}})

	resp, err := svc.GetClinicAppointments(context.Background(), &models.GetClinicAppointmentsRequest{
		UserID: staffID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	_, err = svc.GetClinicAppointments(context.Background(), &models.GetClinicAppointmentsRequest{
		UserID: clientID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel(t *testing.T) {
	apt := pendingAppointment()
	repo := &stubAppointmentRepo{byID: map[int64]*domain.Appointment{apt.ID: apt}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), apt.ID, &models.CancelAppointmentRequest{
		UserID:             clientID,
		CancellationReason: "не сможем приехать",
	})
	require.NoError(t, err)
	assert.Equal(t, apt.ID, repo.cancelledID)
	assert.Equal(t, "не сможем приехать", repo.cancelReason)
}

func TestCancel_AccessDenied(t *testing.T) {
	apt := pendingAppointment()
	svc := newTestService(&stubAppointmentRepo{byID: map[int64]*domain.Appointment{apt.ID: apt}})

	err := svc.Cancel(context.Background(), apt.ID, &models.CancelAppointmentRequest{
		UserID: otherID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_TerminalStatus(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusCancelled,
		domain.StatusRejected,
		domain.StatusRescheduled,
	} {
		apt := pendingAppointment()
		apt.Status = status
		svc := newTestService(&stubAppointmentRepo{byID: map[int64]*domain.Appointment{apt.ID: apt}})

		err := svc.Cancel(context.Background(), apt.ID, &models.CancelAppointmentRequest{UserID: clientID})
		assert.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
	}
}

func TestUpdateStatus_Approve(t *testing.T) {
	apt := pendingAppointment()
	repo := &stubAppointmentRepo{byID: map[int64]*domain.Appointment{apt.ID: apt}}
	svc := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), apt.ID, &models.UpdateStatusRequest{
		UserID: staffID,
		Status: "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, apt.ID, repo.updatedID)
	assert.Equal(t, domain.StatusApproved, repo.updatedToStatus)
}

func TestUpdateStatus_StaffOnly(t *testing.T) {
	apt := pendingAppointment()
	svc := newTestService(&stubAppointmentRepo{byID: map[int64]*domain.Appointment{apt.ID: apt}})

	err := svc.UpdateStatus(context.Background(), apt.ID, &models.UpdateStatusRequest{
		UserID: clientID,
		Status: "approved",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_OnlyApproveOrReject(t *testing.T) {
	apt := pendingAppointment()
	svc := newTestService(&stubAppointmentRepo{byID: map[int64]*domain.Appointment{apt.ID: apt}})

	// Терминальные статусы через этот метод не выставляются
	err := svc.UpdateStatus(context.Background(), apt.ID, &models.UpdateStatusRequest{
		UserID: staffID,
		Status: "cancelled",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = svc.UpdateStatus(context.Background(), apt.ID, &models.UpdateStatusRequest{
		UserID: staffID,
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_AlreadyDecided(t *testing.T) {
	apt := pendingAppointment()
	apt.Status = domain.StatusApproved
	svc := newTestService(&stubAppointmentRepo{byID: map[int64]*domain.Appointment{apt.ID: apt}})

	err := svc.UpdateStatus(context.Background(), apt.ID, &models.UpdateStatusRequest{
		UserID: staffID,
		Status: "rejected",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
