package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"
)

type rewardRepository struct {
	db *sql.DB
}

func NewRewardRepository(db *sql.DB) repository.RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) GetByID(ctx context.Context, id int32) (*domain.Reward, error) {
	var rw domain.Reward
	query := `SELECT id, name, COALESCE(description, ''), points_cost, category, is_active FROM rewards WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rw.ID, &rw.Name, &rw.Description, &rw.PointsCost, &rw.Category, &rw.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrRewardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *rewardRepository) ListActive(ctx context.Context, category string) ([]domain.Reward, error) {
	query := `SELECT id, name, COALESCE(description, ''), points_cost, category, is_active
	          FROM rewards WHERE is_active = TRUE`
	args := []any{}
	if category != "" {
		query += ` AND category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY points_cost ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var rw domain.Reward
		if err := rows.Scan(&rw.ID, &rw.Name, &rw.Description, &rw.PointsCost, &rw.Category, &rw.IsActive); err != nil {
			return nil, err
		}
		rewards = append(rewards, rw)
	}
	return rewards, rows.Err()
}

func (r *rewardRepository) ListRedemptionsByUser(ctx context.Context, userID int32) ([]domain.Redemption, error) {
	query := `SELECT id, user_id, reward_id, points_spent, code, created_at
	          FROM redemptions WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var redemptions []domain.Redemption
	for rows.Next() {
		var rd domain.Redemption
		if err := rows.Scan(&rd.ID, &rd.UserID, &rd.RewardID, &rd.PointsSpent, &rd.Code, &rd.CreatedAt); err != nil {
			return nil, err
		}
		redemptions = append(redemptions, rd)
	}
	return redemptions, rows.Err()
}
