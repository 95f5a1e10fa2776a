package repository

import (
	"context"
	"time"

	"ecowaste-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListAdmins(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int32, role domain.Role) error
	GetPoints(ctx context.Context, id int32) (int32, error)
}

// CollectionFilter narrows List queries. UserID 0 means all users (staff view).
type CollectionFilter struct {
	UserID   int32
	Status   domain.CollectionStatus
	Zone     string
	Page     int32
	PageSize int32
}

type CollectionRepository interface {
	Create(ctx context.Context, c *domain.Collection) error
	GetByID(ctx context.Context, id int32) (*domain.Collection, error)
	List(ctx context.Context, filter CollectionFilter) ([]domain.Collection, int32, error)
	Delete(ctx context.Context, id int32) error
	CountByStatus(ctx context.Context, userID int32) (map[domain.CollectionStatus]int32, error)
	CountCompletedRecycling(ctx context.Context, userID int32) (int32, error)
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Collection, error)
	MarkMissedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type ReportFilter struct {
	UserID   int32
	Status   domain.ReportStatus
	Page     int32
	PageSize int32
}

type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) error
	GetByID(ctx context.Context, id int32) (*domain.Report, error)
	List(ctx context.Context, filter ReportFilter) ([]domain.Report, int32, error)
}

type RewardRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Reward, error)
	ListActive(ctx context.Context, category string) ([]domain.Reward, error)
	ListRedemptionsByUser(ctx context.Context, userID int32) ([]domain.Redemption, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	UnreadCount(ctx context.Context, userID int32) (int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
	MarkAllAsRead(ctx context.Context, userID int32) error
}

type AnalyticsRepository interface {
	GetRollup(ctx context.Context, date, zone string) (*domain.AnalyticsRollup, error)
	SumCO2Saved(ctx context.Context, zone string) (float64, error)
}

type ScheduleRepository interface {
	ListByZone(ctx context.Context, zone string) ([]domain.Schedule, error)
	ListByDay(ctx context.Context, dayOfWeek int32) ([]domain.Schedule, error)
}

// LedgerRepository is the transactional boundary for every side-effecting
// points operation. Atomic runs fn inside a single database transaction;
// if fn returns an error nothing it did is visible.
type LedgerRepository interface {
	Atomic(ctx context.Context, fn func(tx LedgerTx) error) error
}

// LedgerTx exposes the composable writes available inside one unit of work.
// PointsForUpdate takes a row lock on the user's balance, so a
// check-then-decrement sequence is safe against concurrent redemptions.
type LedgerTx interface {
	PointsForUpdate(ctx context.Context, userID int32) (int32, error)
	AddPoints(ctx context.Context, userID, delta int32) error
	InsertPointEvent(ctx context.Context, ev *domain.PointEvent) error
	InsertRedemption(ctx context.Context, rd *domain.Redemption) error
	InsertNotification(ctx context.Context, n *domain.Notification) error
	UpsertCompletionRollup(ctx context.Context, date, zone string, recyclingKg, generalKg, co2Saved float64) error
	CollectionForUpdate(ctx context.Context, id int32) (*domain.Collection, error)
	UpdateCollectionStatus(ctx context.Context, c *domain.Collection) error
	ReportForUpdate(ctx context.Context, id int32) (*domain.Report, error)
	UpdateReportStatus(ctx context.Context, r *domain.Report) error
	ActiveReward(ctx context.Context, id int32) (*domain.Reward, error)
}
