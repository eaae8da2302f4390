package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	availabilityRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/availability"
	serviceRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/service"
	petClient "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/integrations/petregistry"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	serviceRepo      ServiceRepository
	petRegistry      PetRegistryClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	serviceRepo ServiceRepository,
	petRegistry PetRegistryClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		petRegistry:      petRegistry,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Доступность ветеринара перепроверяется внутри serializable транзакции
// с блокировкой записей дня (FOR UPDATE) - защита от двойного бронирования
// между чтением слотов в UI и подтверждением
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, vet=%d, pet=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.VetID, req.PetID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем услугу (фиксирует длительность и цену)
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	duration := svc.Duration()

	// 4. Получаем снимок данных питомца
	// При недоступности реестра запись создаётся без снимка
	var petName, petSpecies *string
	pet, err := uc.petRegistry.GetPetWithGracefulDegradation(ctx, req.ClientID, req.PetID)
	switch {
	case err == nil:
		petName = &pet.Name
		petSpecies = &pet.Species
	case errors.Is(err, petClient.ErrPetNotFound):
		uc.logger.Warn("CreateAppointment: pet id=%d not found for client id=%d", req.PetID, req.ClientID)
		return nil, ErrPetNotFound
	case errors.Is(err, petClient.ErrServiceDegraded):
		uc.logger.Warn("CreateAppointment: pet registry degraded, booking without pet snapshot")
	default:
		uc.logger.Error("CreateAppointment: failed to get pet id=%d: %v", req.PetID, err)
		return nil, fmt.Errorf("%w: failed to get pet: %v", ErrInternal, err)
	}

	status := domain.StatusPending
	if req.WalkIn {
		status = domain.StatusApproved
	}

	var result *domain.Appointment

	// 5. Проверка доступности и вставка в одной serializable транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Запись о доступности ветеринара; её отсутствие закрывает запись
		availability, err := uc.availabilityRepo.GetByVetID(txCtx, req.VetID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				uc.logger.Warn("CreateAppointment: vet id=%d has no availability record", req.VetID)
				return ErrVetNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to get availability for vet id=%d: %v", req.VetID, err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		// 5.2. Занимающие слот записи ветеринара на эту дату, с блокировкой
		filter := domain.AppointmentsFilter{
			VetID:        &req.VetID,
			Date:         &req.Date,
			BlockingOnly: true,
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.3. Перепроверяем доступность на момент записи
		if !availability.CanTake(req.Date, req.StartTime, duration, appointments) {
			uc.logger.Warn("CreateAppointment: slot %s %s not available for vet id=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, req.VetID)
			return ErrSlotNotAvailable
		}

		// 5.4. Создаем запись с денормализацией данных
		apt := &domain.Appointment{
			ClientID:        req.ClientID,
			VetID:           req.VetID,
			PetID:           req.PetID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          status,
			VetName:         availability.VetName,
			ServiceName:     svc.Name,
			ServicePrice:    svc.Price,
			PetName:         petName,
			PetSpecies:      petSpecies,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, apt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d status=%s", result.ID, result.Status)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		VetID:           result.VetID,
		PetID:           result.PetID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		VetName:         result.VetName,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		PetName:         result.PetName,
		PetSpecies:      result.PetSpecies,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
