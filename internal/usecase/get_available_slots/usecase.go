package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	serviceRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов на дату
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу (она фиксирует длительность слота)
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	duration := svc.Duration()

	// 3. Получаем весь ростер доступности
	roster, err := uc.availabilityRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list availability roster: %v", err)
		return nil, fmt.Errorf("%w: failed to list availability roster: %v", ErrInternal, err)
	}

	// 4. Пустой ростер - выдаём сетку по умолчанию, календарь остаётся открытым
	if len(roster) == 0 {
		uc.logger.Warn("GetAvailableSlots: empty availability roster, falling back to default grid")
		return &Response{
			Date:            req.Date,
			ServiceID:       req.ServiceID,
			DurationMinutes: duration,
			Slots:           buildDefaultSlots(duration),
			DefaultGrid:     true,
		}, nil
	}

	// 5. Границы сетки по всему ростеру
	gridStart, gridEnd, ok := rosterGridBounds(roster)
	if !ok {
		// Все записи ростера с некорректным временем - считаем ростер пустым
		uc.logger.Warn("GetAvailableSlots: no valid availability records, falling back to default grid")
		return &Response{
			Date:            req.Date,
			ServiceID:       req.ServiceID,
			DurationMinutes: duration,
			Slots:           buildDefaultSlots(duration),
			DefaultGrid:     true,
		}, nil
	}

	// 6. Получаем занимающие слот записи на эту дату
	filter := domain.AppointmentsFilter{
		Date:         &req.Date,
		BlockingOnly: true,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Для каждой точки сетки оставляем те, где свободен хотя бы один ветеринар
	slots := buildSlots(req.Date, generateGrid(gridStart, gridEnd), duration, roster, appointments)

	uc.logger.Info("GetAvailableSlots: %d slots available for service=%d on %s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
