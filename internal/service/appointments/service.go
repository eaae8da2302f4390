package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	appointmentRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/availability"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями на приём
type Service struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// GetByID получает запись на приём по ID
// Проверяет права доступа - клиент может видеть только свою запись,
// сотрудник клиники видит любую
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, apt, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(apt), nil
}

// GetClientAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d, user=%d, status=%v",
		req.ClientID, req.UserID, req.Status)

	// Чужую историю видит только сотрудник клиники
	if req.ClientID != req.UserID {
		if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
			s.logger.Warn("GetClientAppointments: access denied for user=%d to client=%d history",
				req.UserID, req.ClientID)
			return nil, err
		}
	}

	filter := domain.AppointmentsFilter{
		ClientID: &req.ClientID,
	}

	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%d",
		len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetClinicAppointments получает записи клиники с гибкой фильтрацией
// Поддерживает фильтрацию по ветеринару, периоду и статусу
// Доступно только сотрудникам клиники
func (s *Service) GetClinicAppointments(ctx context.Context, req *models.GetClinicAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("GetClinicAppointments: fetching appointments for user=%d", req.UserID)
	if req.VetID != nil {
		logMsg += fmt.Sprintf(", vet=%d", *req.VetID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа сотрудника
	if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetClinicAppointments: invalid filter for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetClinicAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetClinicAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClinicAppointments: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись на приём
// Клиент может отменить только свою запись, сотрудник клиники - любую
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	apt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить запись
	if !apt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, apt.Status)
		return ErrCannotCancel
	}

	// Клиент отменяет своё, сотрудник - любое
	if apt.ClientID != req.UserID {
		if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel appointment id=%d",
				req.UserID, appointmentID)
			return ErrAccessDenied
		}
	}

	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// UpdateStatus подтверждает или отклоняет запись на приём
// Доступно только сотрудникам клиники, и только для записей в статусе pending
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	apt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только сотрудник клиники)
	if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
		return err
	}

	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	// Через этот метод запись только подтверждают или отклоняют
	if newStatus != domain.StatusApproved && newStatus != domain.StatusRejected {
		s.logger.Warn("UpdateStatus: status=%s is not allowed for appointment id=%d", newStatus, appointmentID)
		return ErrInvalidTransition
	}

	if !apt.CanBeApproved() {
		s.logger.Warn("UpdateStatus: appointment id=%d in status=%s cannot transition to %s",
			appointmentID, apt.Status, newStatus)
		return ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к записи
// Клиент видит свою запись, сотрудник клиники - любую
func (s *Service) checkUserAccess(ctx context.Context, apt *domain.Appointment, userID int64) error {
	if apt.ClientID == userID {
		return nil
	}

	if err := s.checkStaffAccess(ctx, userID); err != nil {
		// Ошибка уже залогирована в checkStaffAccess
		return ErrAccessDenied
	}

	return nil
}

// checkStaffAccess проверяет, что пользователь является сотрудником клиники
// Сотрудником считается ветеринар с объявленным расписанием в ростере
func (s *Service) checkStaffAccess(ctx context.Context, userID int64) error {
	_, err := s.availabilityRepo.GetByVetID(ctx, userID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("checkStaffAccess: user=%d is not a clinic staff member", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkStaffAccess: failed to check staff status for user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to check staff status: %v", ErrInternal, err)
	}

	s.logger.Info("checkStaffAccess: user=%d is a clinic staff member", userID)
	return nil
}
