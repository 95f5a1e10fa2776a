package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"

	"github.com/lib/pq"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

// Atomic runs fn inside a single database transaction. Every write fn makes
// through the LedgerTx commits together or not at all.
func (r *ledgerRepository) Atomic(ctx context.Context, fn func(tx repository.LedgerTx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&ledgerTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type ledgerTx struct {
	tx *sql.Tx
}

// PointsForUpdate locks the user's row so concurrent check-then-decrement
// sequences serialize instead of racing.
func (t *ledgerTx) PointsForUpdate(ctx context.Context, userID int32) (int32, error) {
	var points int32
	err := t.tx.QueryRowContext(ctx, `SELECT points FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&points)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, repository.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to lock user row: %w", err)
	}
	return points, nil
}

func (t *ledgerTx) AddPoints(ctx context.Context, userID, delta int32) error {
	result, err := t.tx.ExecContext(ctx, `UPDATE users SET points = points + $1 WHERE id = $2`, delta, userID)
	if err != nil {
		return fmt.Errorf("failed to update points: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

// InsertPointEvent is the idempotency guard. The point_events table carries a
// unique constraint on (source_type, source_id, kind); a second insert for the
// same source maps to ErrDuplicateAward.
func (t *ledgerTx) InsertPointEvent(ctx context.Context, ev *domain.PointEvent) error {
	query := `INSERT INTO point_events (user_id, points, kind, source_type, source_id, reason, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW()) RETURNING id, created_at`
	err := t.tx.QueryRowContext(ctx, query,
		ev.UserID, ev.Points, ev.Kind, ev.SourceType, ev.SourceID, ev.Reason).
		Scan(&ev.ID, &ev.CreatedAt)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return repository.ErrDuplicateAward
	}
	return err
}

func (t *ledgerTx) InsertRedemption(ctx context.Context, rd *domain.Redemption) error {
	query := `INSERT INTO redemptions (user_id, reward_id, points_spent, code, created_at)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id, created_at`
	err := t.tx.QueryRowContext(ctx, query, rd.UserID, rd.RewardID, rd.PointsSpent, rd.Code).
		Scan(&rd.ID, &rd.CreatedAt)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return repository.ErrCodeTaken
	}
	return err
}

func (t *ledgerTx) InsertNotification(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, type, title, message, link, is_read, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW()) RETURNING id, created_at`
	return t.tx.QueryRowContext(ctx, query, n.UserID, n.Type, n.Title, n.Message, n.Link, n.IsRead).
		Scan(&n.ID, &n.CreatedAt)
}

// UpsertCompletionRollup accumulates one completed collection into the
// (date, zone) analytics row, creating it on first touch.
func (t *ledgerTx) UpsertCompletionRollup(ctx context.Context, date, zone string, recyclingKg, generalKg, co2Saved float64) error {
	query := `INSERT INTO analytics (date, zone, total_collections, completed_collections, recycling_weight, general_waste_weight, co2_saved)
	          VALUES ($1, $2, 1, 1, $3, $4, $5)
	          ON CONFLICT (date, zone) DO UPDATE SET
	            completed_collections = analytics.completed_collections + 1,
	            recycling_weight = analytics.recycling_weight + EXCLUDED.recycling_weight,
	            general_waste_weight = analytics.general_waste_weight + EXCLUDED.general_waste_weight,
	            co2_saved = analytics.co2_saved + EXCLUDED.co2_saved`
	_, err := t.tx.ExecContext(ctx, query, date, zone, recyclingKg, generalKg, co2Saved)
	if err != nil {
		return fmt.Errorf("failed to upsert analytics rollup: %w", err)
	}
	return nil
}

func (t *ledgerTx) CollectionForUpdate(ctx context.Context, id int32) (*domain.Collection, error) {
	row := t.tx.QueryRowContext(ctx,
		`SELECT `+collectionColumns+` FROM collections WHERE id = $1 FOR UPDATE`, id)
	return scanCollection(row.Scan)
}

func (t *ledgerTx) UpdateCollectionStatus(ctx context.Context, c *domain.Collection) error {
	query := `UPDATE collections SET status = $1, collector_id = $2, completed_at = $3 WHERE id = $4`
	_, err := t.tx.ExecContext(ctx, query, c.Status, c.CollectorID, c.CompletedAt, c.ID)
	return err
}

func (t *ledgerTx) ReportForUpdate(ctx context.Context, id int32) (*domain.Report, error) {
	row := t.tx.QueryRowContext(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE id = $1 FOR UPDATE`, id)
	return scanReport(row.Scan)
}

func (t *ledgerTx) UpdateReportStatus(ctx context.Context, r *domain.Report) error {
	query := `UPDATE reports SET status = $1, resolved_by = $2, resolution_notes = $3, resolved_at = $4 WHERE id = $5`
	_, err := t.tx.ExecContext(ctx, query, r.Status, r.ResolvedBy, r.ResolutionNotes, r.ResolvedAt, r.ID)
	return err
}

func (t *ledgerTx) ActiveReward(ctx context.Context, id int32) (*domain.Reward, error) {
	var rw domain.Reward
	query := `SELECT id, name, COALESCE(description, ''), points_cost, category, is_active FROM rewards WHERE id = $1`
	err := t.tx.QueryRowContext(ctx, query, id).
		Scan(&rw.ID, &rw.Name, &rw.Description, &rw.PointsCost, &rw.Category, &rw.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrRewardNotFound
	}
	if err != nil {
		return nil, err
	}
	if !rw.IsActive {
		return nil, repository.ErrRewardNotFound
	}
	return &rw, nil
}
