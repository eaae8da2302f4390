package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	availabilityRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/availability"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/availability/models"
)

// Service сервис для работы с расписаниями ветеринаров
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Upsert создает или обновляет расписание ветеринара
// Ветеринар может редактировать только своё расписание
func (s *Service) Upsert(ctx context.Context, req *models.UpsertAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Upsert: upserting availability for vet=%d by user=%d", req.VetID, req.UserID)

	// 1. Ветеринар редактирует только собственное расписание
	if req.UserID != req.VetID {
		s.logger.Warn("Upsert: user=%d cannot edit schedule of vet=%d", req.UserID, req.VetID)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем расписание
	av := req.ToDomainAvailability()
	if err := s.validateAvailability(av); err != nil {
		s.logger.Warn("Upsert: validation failed for vet=%d: %v", req.VetID, err)
		return nil, err
	}

	// 3. Сохраняем
	saved, err := s.availabilityRepo.Upsert(ctx, av)
	if err != nil {
		s.logger.Error("Upsert: repository error for vet=%d: %v", req.VetID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully upserted availability id=%d for vet=%d", saved.ID, saved.VetID)
	return models.FromDomainAvailability(saved), nil
}

// GetByVetID получает расписание ветеринара
// Публичный метод - доступен всем
func (s *Service) GetByVetID(ctx context.Context, vetID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetByVetID: fetching availability for vet=%d", vetID)

	av, err := s.availabilityRepo.GetByVetID(ctx, vetID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("GetByVetID: availability for vet=%d not found", vetID)
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("GetByVetID: repository error for vet=%d: %v", vetID, err)
		return nil, fmt.Errorf("%w: GetByVetID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByVetID: successfully fetched availability for vet=%d", vetID)
	return models.FromDomainAvailability(av), nil
}

// ListAll получает весь ростер клиники
// Публичный метод - доступен всем
func (s *Service) ListAll(ctx context.Context) (*models.AvailabilityListResponse, error) {
	s.logger.Info("ListAll: fetching clinic roster")

	list, err := s.availabilityRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d roster entries", len(list))
	return models.FromDomainAvailabilityList(list), nil
}

// Вспомогательные методы

// validateAvailability валидирует расписание ветеринара
func (s *Service) validateAvailability(av *domain.VetAvailability) error {
	if av.VetID <= 0 {
		return fmt.Errorf("%w: vetId must be positive", ErrInvalidInput)
	}

	if av.VetName == "" {
		return fmt.Errorf("%w: vetName is required", ErrInvalidInput)
	}

	if len(av.WorkingDays) == 0 {
		return fmt.Errorf("%w: workingDays must not be empty", ErrInvalidInput)
	}

	// Дни недели: только канонические названия, без дубликатов
	seen := make(map[string]bool, len(av.WorkingDays))
	for _, day := range av.WorkingDays {
		if !domain.IsValidWeekday(day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}
		if seen[day] {
			return fmt.Errorf("%w: duplicate weekday %q", ErrInvalidInput, day)
		}
		seen[day] = true
	}

	if err := av.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := av.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !av.StartTime.IsBefore(av.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	// Обед: либо оба поля, либо ни одного
	if (av.LunchStartTime == nil) != (av.LunchEndTime == nil) {
		return fmt.Errorf("%w: lunchStartTime and lunchEndTime must be set together", ErrInvalidInput)
	}

	if av.HasLunchBreak() {
		if err := av.LunchStartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid lunchStartTime: %v", ErrInvalidInput, err)
		}
		if err := av.LunchEndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid lunchEndTime: %v", ErrInvalidInput, err)
		}
		if !av.LunchStartTime.IsBefore(*av.LunchEndTime) {
			return fmt.Errorf("%w: lunchStartTime must be before lunchEndTime", ErrInvalidInput)
		}
		// Обед целиком внутри рабочего дня
		if av.LunchStartTime.IsBefore(av.StartTime) || av.LunchEndTime.IsAfter(av.EndTime) {
			return fmt.Errorf("%w: lunch break must be within working hours", ErrInvalidInput)
		}
	}

	if av.AppointmentDurationMinutes < domain.MinAppointmentDurationMinutes ||
		av.AppointmentDurationMinutes > domain.MaxAppointmentDurationMinutes {
		return fmt.Errorf("%w: appointmentDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinAppointmentDurationMinutes, domain.MaxAppointmentDurationMinutes)
	}

	return nil
}
