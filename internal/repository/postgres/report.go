package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

const reportColumns = `id, user_id, type, title, description, location, priority, status, resolved_by, COALESCE(resolution_notes, ''), resolved_at, created_at`

func (r *reportRepository) Create(ctx context.Context, rep *domain.Report) error {
	query := `INSERT INTO reports (user_id, type, title, description, location, priority, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, NOW()) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		rep.UserID, rep.Type, rep.Title, rep.Description, rep.Location, rep.Priority, rep.Status).
		Scan(&rep.ID, &rep.CreatedAt)
}

func scanReport(scan func(dest ...any) error) (*domain.Report, error) {
	var rep domain.Report
	err := scan(&rep.ID, &rep.UserID, &rep.Type, &rep.Title, &rep.Description, &rep.Location,
		&rep.Priority, &rep.Status, &rep.ResolvedBy, &rep.ResolutionNotes, &rep.ResolvedAt, &rep.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *reportRepository) GetByID(ctx context.Context, id int32) (*domain.Report, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
	return scanReport(row.Scan)
}

func (r *reportRepository) List(ctx context.Context, f repository.ReportFilter) ([]domain.Report, int32, error) {
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

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM reports WHERE `+where, args...).Scan(&count); err != nil {
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
	query := fmt.Sprintf(`SELECT %s FROM reports WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		reportColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		rep, err := scanReport(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, *rep)
	}
	return reports, count, rows.Err()
}
