package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"
)

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetRollup(ctx context.Context, date, zone string) (*domain.AnalyticsRollup, error) {
	var a domain.AnalyticsRollup
	query := `SELECT date, zone, total_collections, completed_collections, recycling_weight, general_waste_weight, co2_saved
	          FROM analytics WHERE date = $1 AND zone = $2`
	err := r.db.QueryRowContext(ctx, query, date, zone).
		Scan(&a.Date, &a.Zone, &a.TotalCollections, &a.CompletedCollections, &a.RecyclingWeight, &a.GeneralWasteWeight, &a.CO2Saved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *analyticsRepository) SumCO2Saved(ctx context.Context, zone string) (float64, error) {
	query := `SELECT COALESCE(SUM(co2_saved), 0) FROM analytics`
	args := []any{}
	if zone != "" {
		query += ` WHERE zone = $1`
		args = append(args, zone)
	}
	var total float64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&total)
	return total, err
}
