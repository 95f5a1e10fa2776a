package postgres

import (
	"context"
	"database/sql"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"
)

type scheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `id, zone, day_of_week, time_slot, waste_type, collector_id`

func (r *scheduleRepository) ListByZone(ctx context.Context, zone string) ([]domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE zone = $1 ORDER BY day_of_week, time_slot`
	return r.list(ctx, query, zone)
}

func (r *scheduleRepository) ListByDay(ctx context.Context, dayOfWeek int32) ([]domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE day_of_week = $1 ORDER BY zone, time_slot`
	return r.list(ctx, query, dayOfWeek)
}

func (r *scheduleRepository) list(ctx context.Context, query string, args ...any) ([]domain.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []domain.Schedule
	for rows.Next() {
		var s domain.Schedule
		if err := rows.Scan(&s.ID, &s.Zone, &s.DayOfWeek, &s.TimeSlot, &s.WasteType, &s.CollectorID); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}
