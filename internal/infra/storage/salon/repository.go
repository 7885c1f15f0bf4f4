package salon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/pkg/dbmetrics"
	"github.com/salonbook/salon-booking-service/pkg/psqlbuilder"
	"github.com/salonbook/salon-booking-service/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var selectColumns = []string{
	"id",
	"owner_id",
	"name",
	"address",
	"city",
	"state",
	"zip",
	"min_service_price",
	"max_service_price",
	"offer_status",
	"is_active",
	"location_lat",
	"location_lng",
	"working_days",
	"start_time",
	"end_time",
	"break_start_time",
	"break_end_time",
	"slot_duration_minutes",
	"max_bookings_per_slot",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения салонов и замены расписания
// CRUD самих салонов живёт во внешнем сервисе; ядру бронирования нужны
// только чтение записи и атомарная замена конфигурации расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает салон вместе с конфигурацией расписания
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s          domain.Salon
		lat, lng   sql.NullFloat64
		breakStart sql.Null[types.TimeString]
		breakEnd   sql.Null[types.TimeString]
		days       []string
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.OwnerID,
		&s.Name,
		&s.Address,
		&s.City,
		&s.State,
		&s.Zip,
		&s.MinServicePrice,
		&s.MaxServicePrice,
		&s.OfferStatus,
		&s.IsActive,
		&lat,
		&lng,
		pq.Array(&days),
		&s.Schedule.StartTime,
		&s.Schedule.EndTime,
		&breakStart,
		&breakEnd,
		&s.Schedule.SlotDurationMinutes,
		&s.Schedule.MaxBookingsPerSlot,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %w", ErrScanRow, err)
	}

	s.Schedule.WorkingDays = days
	if lat.Valid && lng.Valid {
		s.Location = &domain.GeoPoint{Lat: lat.Float64, Lng: lng.Float64}
	}
	if breakStart.Valid {
		v := breakStart.V
		s.Schedule.BreakStartTime = &v
	}
	if breakEnd.Valid {
		v := breakEnd.V
		s.Schedule.BreakEndTime = &v
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// ReplaceScheduleConfig атомарно заменяет конфигурацию расписания салона
// целиком (одним UPDATE, без частичных обновлений полей)
func (r *Repository) ReplaceScheduleConfig(ctx context.Context, salonID int64, cfg *domain.ScheduleConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("salons").
		Set("working_days", pq.Array(cfg.WorkingDays)).
		Set("start_time", cfg.StartTime).
		Set("end_time", cfg.EndTime).
		Set("break_start_time", cfg.BreakStartTime).
		Set("break_end_time", cfg.BreakEndTime).
		Set("slot_duration_minutes", cfg.SlotDurationMinutes).
		Set("max_bookings_per_slot", cfg.MaxBookingsPerSlot).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": salonID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceScheduleConfig - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReplaceScheduleConfig - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReplaceScheduleConfig - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSalonNotFound
	}

	return nil
}
