package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"
)

type collectionRepository struct {
	db *sql.DB
}

func NewCollectionRepository(db *sql.DB) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

const collectionColumns = `id, user_id, waste_type, zone, address, priority, status, COALESCE(notes, ''), scheduled_date, collector_id, completed_at, created_at`

func (r *collectionRepository) Create(ctx context.Context, c *domain.Collection) error {
	query := `INSERT INTO collections (user_id, waste_type, zone, address, priority, status, notes, scheduled_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW()) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		c.UserID, c.WasteType, c.Zone, c.Address, c.Priority, c.Status, c.Notes, c.ScheduledDate).
		Scan(&c.ID, &c.CreatedAt)
}

func scanCollection(scan func(dest ...any) error) (*domain.Collection, error) {
	var c domain.Collection
	err := scan(&c.ID, &c.UserID, &c.WasteType, &c.Zone, &c.Address, &c.Priority, &c.Status,
		&c.Notes, &c.ScheduledDate, &c.CollectorID, &c.CompletedAt, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrCollectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *collectionRepository) GetByID(ctx context.Context, id int32) (*domain.Collection, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+collectionColumns+` FROM collections WHERE id = $1`, id)
	return scanCollection(row.Scan)
}

func (r *collectionRepository) List(ctx context.Context, f repository.CollectionFilter) ([]domain.Collection, int32, error) {
	where := "TRUE"
	args := []any{}
	if f.UserID != 0 {
		args = append(args, f.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Zone != "" {
		args = append(args, f.Zone)
		where += fmt.Sprintf(" AND zone = $%d", len(args))
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM collections WHERE `+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	page, pageSize := f.Page, f.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`SELECT %s FROM collections WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		collectionColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var collections []domain.Collection
	for rows.Next() {
		c, err := scanCollection(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		collections = append(collections, *c)
	}
	return collections, count, rows.Err()
}

func (r *collectionRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrCollectionNotFound
	}
	return nil
}

func (r *collectionRepository) CountByStatus(ctx context.Context, userID int32) (map[domain.CollectionStatus]int32, error) {
	query := `SELECT status, count(*) FROM collections GROUP BY status`
	args := []any{}
	if userID != 0 {
		query = `SELECT status, count(*) FROM collections WHERE user_id = $1 GROUP BY status`
		args = append(args, userID)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.CollectionStatus]int32)
	for rows.Next() {
		var status domain.CollectionStatus
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *collectionRepository) CountCompletedRecycling(ctx context.Context, userID int32) (int32, error) {
	query := `SELECT count(*) FROM collections WHERE waste_type = $1 AND status = $2`
	args := []any{domain.WasteTypeRecycling, domain.CollectionStatusCompleted}
	if userID != 0 {
		query += ` AND user_id = $3`
		args = append(args, userID)
	}
	var count int32
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *collectionRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections
	          WHERE status = $1 AND scheduled_date >= $2 AND scheduled_date < $3`
	rows, err := r.db.QueryContext(ctx, query, domain.CollectionStatusScheduled, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []domain.Collection
	for rows.Next() {
		c, err := scanCollection(rows.Scan)
		if err != nil {
			return nil, err
		}
		collections = append(collections, *c)
	}
	return collections, rows.Err()
}

func (r *collectionRepository) MarkMissedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE collections SET status = $1
	          WHERE status IN ($2, $3) AND scheduled_date IS NOT NULL AND scheduled_date < $4`
	result, err := r.db.ExecContext(ctx, query,
		domain.CollectionStatusMissed, domain.CollectionStatusPending, domain.CollectionStatusScheduled, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
