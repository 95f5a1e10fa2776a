package service

import (
	"context"
	"time"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"
	"ecowaste-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockLedgerTx
type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) PointsForUpdate(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockLedgerTx) AddPoints(ctx context.Context, userID, delta int32) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}
func (m *MockLedgerTx) InsertPointEvent(ctx context.Context, ev *domain.PointEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}
func (m *MockLedgerTx) InsertRedemption(ctx context.Context, rd *domain.Redemption) error {
	args := m.Called(ctx, rd)
	return args.Error(0)
}
func (m *MockLedgerTx) InsertNotification(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockLedgerTx) UpsertCompletionRollup(ctx context.Context, date, zone string, recyclingKg, generalKg, co2Saved float64) error {
	args := m.Called(ctx, date, zone, recyclingKg, generalKg, co2Saved)
	return args.Error(0)
}
func (m *MockLedgerTx) CollectionForUpdate(ctx context.Context, id int32) (*domain.Collection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collection), args.Error(1)
}
func (m *MockLedgerTx) UpdateCollectionStatus(ctx context.Context, c *domain.Collection) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockLedgerTx) ReportForUpdate(ctx context.Context, id int32) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}
func (m *MockLedgerTx) UpdateReportStatus(ctx context.Context, r *domain.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockLedgerTx) ActiveReward(ctx context.Context, id int32) (*domain.Reward, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reward), args.Error(1)
}

// MockLedgerRepo runs the unit-of-work callback against its Tx mock, the way
// the real repository runs it against a live transaction.
type MockLedgerRepo struct {
	mock.Mock
	Tx *MockLedgerTx
}

func NewMockLedgerRepo() *MockLedgerRepo {
	return &MockLedgerRepo{Tx: new(MockLedgerTx)}
}

func (m *MockLedgerRepo) Atomic(ctx context.Context, fn func(tx repository.LedgerTx) error) error {
	return fn(m.Tx)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateRole(ctx context.Context, id int32, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}
func (m *MockUserRepo) GetPoints(ctx context.Context, id int32) (int32, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int32), args.Error(1)
}

// MockCollectionRepo
type MockCollectionRepo struct {
	mock.Mock
}

func (m *MockCollectionRepo) Create(ctx context.Context, c *domain.Collection) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCollectionRepo) GetByID(ctx context.Context, id int32) (*domain.Collection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collection), args.Error(1)
}
func (m *MockCollectionRepo) List(ctx context.Context, filter repository.CollectionFilter) ([]domain.Collection, int32, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Collection), args.Get(1).(int32), args.Error(2)
}
func (m *MockCollectionRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCollectionRepo) CountByStatus(ctx context.Context, userID int32) (map[domain.CollectionStatus]int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(map[domain.CollectionStatus]int32), args.Error(1)
}
func (m *MockCollectionRepo) CountCompletedRecycling(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockCollectionRepo) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Collection, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Collection), args.Error(1)
}
func (m *MockCollectionRepo) MarkMissedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Create(ctx context.Context, r *domain.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReportRepo) GetByID(ctx context.Context, id int32) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}
func (m *MockReportRepo) List(ctx context.Context, filter repository.ReportFilter) ([]domain.Report, int32, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Report), args.Get(1).(int32), args.Error(2)
}

// MockRewardRepo
type MockRewardRepo struct {
	mock.Mock
}

func (m *MockRewardRepo) GetByID(ctx context.Context, id int32) (*domain.Reward, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reward), args.Error(1)
}
func (m *MockRewardRepo) ListActive(ctx context.Context, category string) ([]domain.Reward, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Reward), args.Error(1)
}
func (m *MockRewardRepo) ListRedemptionsByUser(ctx context.Context, userID int32) ([]domain.Redemption, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Redemption), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) UnreadCount(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
func (m *MockNotificationRepo) MarkAllAsRead(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockAnalyticsRepo
type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) GetRollup(ctx context.Context, date, zone string) (*domain.AnalyticsRollup, error) {
	args := m.Called(ctx, date, zone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsRollup), args.Error(1)
}
func (m *MockAnalyticsRepo) SumCO2Saved(ctx context.Context, zone string) (float64, error) {
	args := m.Called(ctx, zone)
	return args.Get(0).(float64), args.Error(1)
}

// MockScheduleRepo
type MockScheduleRepo struct {
	mock.Mock
}

func (m *MockScheduleRepo) ListByZone(ctx context.Context, zone string) ([]domain.Schedule, error) {
	args := m.Called(ctx, zone)
	return args.Get(0).([]domain.Schedule), args.Error(1)
}
func (m *MockScheduleRepo) ListByDay(ctx context.Context, dayOfWeek int32) ([]domain.Schedule, error) {
	args := m.Called(ctx, dayOfWeek)
	return args.Get(0).([]domain.Schedule), args.Error(1)
}

// MockAwardService
type MockAwardService struct {
	mock.Mock
}

func (m *MockAwardService) AwardForCompletedCollection(ctx context.Context, collectionID int32) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}
func (m *MockAwardService) AwardForFiledReport(ctx context.Context, reportID int32) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
