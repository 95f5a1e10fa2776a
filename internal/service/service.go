package service

import (
	"context"
	"errors"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidStatus      = errors.New("invalid status")
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password, zone, address, phone string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	GetDashboardStats(ctx context.Context, userID int32, role domain.Role) (*DashboardStats, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ChangeRole(ctx context.Context, userID int32, role domain.Role) error
}

type CollectionService interface {
	RequestCollection(ctx context.Context, c *domain.Collection) error
	GetCollection(ctx context.Context, userID int32, role domain.Role, id int32) (*domain.Collection, error)
	ListCollections(ctx context.Context, userID int32, role domain.Role, filter repository.CollectionFilter) ([]domain.Collection, int32, error)
	DeleteCollection(ctx context.Context, userID int32, role domain.Role, id int32) error
}

type ReportService interface {
	FileReport(ctx context.Context, rep *domain.Report) error
	GetReport(ctx context.Context, userID int32, role domain.Role, id int32) (*domain.Report, error)
	ListReports(ctx context.Context, userID int32, role domain.Role, filter repository.ReportFilter) ([]domain.Report, int32, error)
}

// AwardService increments balances for points-worthy actions. Calls are
// idempotent per source entity: repeating one is a safe no-op.
type AwardService interface {
	AwardForCompletedCollection(ctx context.Context, collectionID int32) error
	AwardForFiledReport(ctx context.Context, reportID int32) error
}

type RewardService interface {
	ListRewards(ctx context.Context, category string) ([]domain.Reward, error)
	Redeem(ctx context.Context, userID, rewardID int32) (string, error)
	ListRedemptions(ctx context.Context, userID int32) ([]domain.Redemption, error)
}

// TransitionService applies status changes and fires the one-time completion
// and resolution side effects inside a single unit of work.
type TransitionService interface {
	TransitionCollection(ctx context.Context, actorID, collectionID int32, newStatus domain.CollectionStatus) (*domain.Collection, error)
	TransitionReport(ctx context.Context, actorID, reportID int32, newStatus domain.ReportStatus, resolutionNotes string) (*domain.Report, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	UnreadCount(ctx context.Context, userID int32) (int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
	MarkAllAsRead(ctx context.Context, userID int32) error
}

type ScheduleService interface {
	GetZoneSchedule(ctx context.Context, zone string) ([]domain.Schedule, error)
}
