package service

import (
	"context"
	"fmt"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/logger"
	"ecowaste-backend/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	noteRepo   repository.NotificationRepository
	awardSvc   AwardService
}

func NewReportService(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	awardSvc AwardService,
) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		noteRepo:   noteRepo,
		awardSvc:   awardSvc,
	}
}

func (s *reportService) FileReport(ctx context.Context, rep *domain.Report) error {
	if !rep.Type.Valid() {
		return fmt.Errorf("%w: unknown report type %q", ErrInvalidInput, rep.Type)
	}
	if rep.Title == "" || rep.Description == "" || rep.Location == "" {
		return fmt.Errorf("%w: title, description and location are required", ErrInvalidInput)
	}
	if rep.Priority == "" {
		rep.Priority = domain.PriorityNormal
	}
	rep.Status = domain.ReportStatusPending

	if err := s.reportRepo.Create(ctx, rep); err != nil {
		return err
	}

	if err := s.awardSvc.AwardForFiledReport(ctx, rep.ID); err != nil {
		return fmt.Errorf("failed to award points for report %d: %w", rep.ID, err)
	}

	author, err := s.userRepo.GetByID(ctx, rep.UserID)
	if err != nil {
		logger.Error("Failed to load report author", "report_id", rep.ID, "error", err)
		return nil
	}
	admins, err := s.userRepo.ListAdmins(ctx)
	if err != nil {
		logger.Error("Failed to list admins for report notification", "report_id", rep.ID, "error", err)
		return nil
	}
	for _, admin := range admins {
		note := &domain.Notification{
			UserID:  admin.ID,
			Type:    domain.NotificationIssueReport,
			Title:   "New Issue Reported",
			Message: fmt.Sprintf("%s reported: %s", author.Name, rep.Title),
			Link:    fmt.Sprintf("/reports/%d", rep.ID),
		}
		if err := s.noteRepo.Create(ctx, note); err != nil {
			logger.Error("Failed to notify admin of new report", "report_id", rep.ID, "admin_id", admin.ID, "error", err)
		}
	}
	return nil
}

func (s *reportService) GetReport(ctx context.Context, userID int32, role domain.Role, id int32) (*domain.Report, error) {
	rep, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !role.IsStaff() && rep.UserID != userID {
		return nil, ErrForbidden
	}
	return rep, nil
}

func (s *reportService) ListReports(ctx context.Context, userID int32, role domain.Role, filter repository.ReportFilter) ([]domain.Report, int32, error) {
	if !role.IsStaff() {
		filter.UserID = userID
	}
	return s.reportRepo.List(ctx, filter)
}
