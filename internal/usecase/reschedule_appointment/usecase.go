package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	appointmentRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/availability"
)

// UseCase use case для переноса записи на другой слот
// Перенос не двигает исходную строку: создаётся новая запись, а старая
// помечается статусом rescheduled и перестаёт занимать слот
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case переноса записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%d, date=%s, time=%s",
		req.AppointmentID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("RescheduleAppointment: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment
	var oldID int64

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Исходная запись
		old, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// Перенести запись может её владелец или сотрудник клиники
		if old.ClientID != req.UserID {
			if _, err := uc.availabilityRepo.GetByVetID(txCtx, req.UserID); err != nil {
				if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
					uc.logger.Warn("RescheduleAppointment: user=%d has no access to appointment id=%d",
						req.UserID, old.ID)
					return ErrAccessDenied
				}
				uc.logger.Error("RescheduleAppointment: failed to check staff status for user=%d: %v",
					req.UserID, err)
				return fmt.Errorf("%w: failed to check staff status: %v", ErrInternal, err)
			}
		}

		if !old.CanBeRescheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d in status %s cannot be rescheduled",
				old.ID, old.Status)
			return ErrCannotReschedule
		}
		oldID = old.ID

		vetID := old.VetID
		if req.NewVetID != nil {
			vetID = *req.NewVetID
		}

		// 2. Доступность принимающего ветеринара
		availability, err := uc.availabilityRepo.GetByVetID(txCtx, vetID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				uc.logger.Warn("RescheduleAppointment: vet id=%d has no availability record", vetID)
				return ErrVetNotAvailable
			}
			uc.logger.Error("RescheduleAppointment: failed to get availability for vet id=%d: %v", vetID, err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		// 3. Занимающие слот записи ветеринара на новую дату, с блокировкой
		filter := domain.AppointmentsFilter{
			VetID:        &vetID,
			Date:         &req.Date,
			BlockingOnly: true,
		}

		dayAppointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// Исходная запись не конфликтует сама с собой при переносе в тот же день
		conflicts := make([]*domain.Appointment, 0, len(dayAppointments))
		for _, apt := range dayAppointments {
			if apt.ID == old.ID {
				continue
			}
			conflicts = append(conflicts, apt)
		}

		// 4. Проверяем новый слот
		if !availability.CanTake(req.Date, req.StartTime, old.BlockingDuration(), conflicts) {
			uc.logger.Warn("RescheduleAppointment: slot %s %s not available for vet id=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, vetID)
			return ErrSlotNotAvailable
		}

		// 5. Создаем новую запись, перенося снимок данных
		// Перенесённая запись ждёт повторного подтверждения персоналом
		replacement := &domain.Appointment{
			ClientID:        old.ClientID,
			VetID:           vetID,
			PetID:           old.PetID,
			ServiceID:       old.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: old.BlockingDuration(),
			Status:          domain.StatusPending,
			VetName:         availability.VetName,
			ServiceName:     old.ServiceName,
			ServicePrice:    old.ServicePrice,
			PetName:         old.PetName,
			PetSpecies:      old.PetSpecies,
			Notes:           old.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, replacement)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to create replacement: %v", err)
			return fmt.Errorf("%w: failed to create replacement: %v", ErrInternal, err)
		}

		// 6. Старая запись освобождает слот
		if err := uc.appointmentRepo.MarkRescheduled(txCtx, old.ID, created.ID); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to mark appointment id=%d rescheduled: %v", old.ID, err)
			return fmt.Errorf("%w: failed to mark rescheduled: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: appointment id=%d rescheduled to id=%d", oldID, result.ID)

	return &Response{
		ID:              result.ID,
		RescheduledFrom: oldID,
		VetID:           result.VetID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
	}, nil
}
