package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/domain"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/dbmetrics"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/psqlbuilder"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/types"
)

var availabilityColumns = []string{
	"id",
	"vet_id",
	"vet_name",
	"working_days",
	"start_time",
	"end_time",
	"lunch_start_time",
	"lunch_end_time",
	"appointment_duration_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с доступностью ветеринаров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет запись о доступности ветеринара
// Запись уникальна по vet_id: повторное сохранение из формы профиля
// перезаписывает расписание целиком
func (r *Repository) Upsert(ctx context.Context, av *domain.VetAvailability) (*domain.VetAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vet_availability").
		Columns(
			"vet_id",
			"vet_name",
			"working_days",
			"start_time",
			"end_time",
			"lunch_start_time",
			"lunch_end_time",
			"appointment_duration_minutes",
		).
		Values(
			av.VetID,
			av.VetName,
			pq.Array(av.WorkingDays),
			av.StartTime,
			av.EndTime,
			av.LunchStartTime,
			av.LunchEndTime,
			av.AppointmentDurationMinutes,
		).
		Suffix(`ON CONFLICT (vet_id) DO UPDATE SET
			vet_name = EXCLUDED.vet_name,
			working_days = EXCLUDED.working_days,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			lunch_start_time = EXCLUDED.lunch_start_time,
			lunch_end_time = EXCLUDED.lunch_end_time,
			appointment_duration_minutes = EXCLUDED.appointment_duration_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&av.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	return av, nil
}

// GetByVetID получает запись о доступности ветеринара
func (r *Repository) GetByVetID(ctx context.Context, vetID int64) (*domain.VetAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("vet_availability").
		Where(squirrel.Eq{"vet_id": vetID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVetID - build select query: %v", ErrBuildQuery, err)
	}

	av, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVetID - scan availability: %v", ErrScanRow, err)
	}

	return av, nil
}

// ListAll возвращает весь ростер доступности, отсортированный по имени ветеринара
// Детерминированный порядок важен для стабильной выдачи слотов
func (r *Repository) ListAll(ctx context.Context) ([]*domain.VetAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("vet_availability").
		OrderBy("vet_name ASC, vet_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	roster := make([]*domain.VetAvailability, 0)

	for rows.Next() {
		av, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		roster = append(roster, av)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return roster, nil
}

// Delete удаляет запись о доступности ветеринара
// Отсутствие записи означает, что ветеринар больше не предлагается для записи
func (r *Repository) Delete(ctx context.Context, vetID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("vet_availability").
		Where(squirrel.Eq{"vet_id": vetID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAvailability(row rowScanner) (*domain.VetAvailability, error) {
	var av domain.VetAvailability
	var workingDays pq.StringArray
	var lunchStart, lunchEnd types.TimeString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&av.ID,
		&av.VetID,
		&av.VetName,
		&workingDays,
		&av.StartTime,
		&av.EndTime,
		&lunchStart,
		&lunchEnd,
		&av.AppointmentDurationMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	av.WorkingDays = []string(workingDays)
	if !lunchStart.IsZero() {
		av.LunchStartTime = &lunchStart
	}
	if !lunchEnd.IsZero() {
		av.LunchEndTime = &lunchEnd
	}
	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	return &av, nil
}
