package get_available_vets

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	serviceRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/service"
)

// UseCase use case для получения свободных ветеринаров на конкретный слот
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	serviceRepo      ServiceRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения свободных ветеринаров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableVets: service=%d, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableVets: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableVets: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableVets: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	duration := svc.Duration()

	// 3. Получаем ростер доступности
	roster, err := uc.availabilityRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableVets: failed to list availability roster: %v", err)
		return nil, fmt.Errorf("%w: failed to list availability roster: %v", ErrInternal, err)
	}

	// 4. Получаем занимающие слот записи на эту дату
	filter := domain.AppointmentsFilter{
		Date:         &req.Date,
		BlockingOnly: true,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableVets: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Отбираем свободных ветеринаров
	vets := availableVetsForSlot(req.Date, req.StartTime, duration, roster, appointments)

	uc.logger.Info("GetAvailableVets: %d vets available for service=%d on %s %s",
		len(vets), req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		Date:            req.Date,
		StartTime:       req.StartTime,
		ServiceID:       req.ServiceID,
		DurationMinutes: duration,
		Vets:            vets,
		FullyBooked:     isSlotFullyBooked(req.Date, req.StartTime, len(vets), appointments),
	}, nil
}
