package service

import (
	"context"
	"math"
	"time"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"
)

// DashboardStats aggregates a user's (or, for staff, the system's)
// collection activity and environmental impact.
type DashboardStats struct {
	TotalCollections     int32   `json:"total_collections"`
	CompletedCollections int32   `json:"completed_collections"`
	PendingCollections   int32   `json:"pending_collections"`
	Points               int32   `json:"points"`
	RecyclingRate        int32   `json:"recycling_rate"` // percent
	CO2Saved             float64 `json:"co2_saved"`

	// TodayRollup is the resident zone's analytics row for today, nil when
	// nothing has completed yet (or for staff, whose view is system-wide).
	TodayRollup *domain.AnalyticsRollup `json:"today_rollup,omitempty"`
}

type userService struct {
	userRepo       repository.UserRepository
	collectionRepo repository.CollectionRepository
	analyticsRepo  repository.AnalyticsRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	collectionRepo repository.CollectionRepository,
	analyticsRepo repository.AnalyticsRepository,
) UserService {
	return &userService{
		userRepo:       userRepo,
		collectionRepo: collectionRepo,
		analyticsRepo:  analyticsRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) GetDashboardStats(ctx context.Context, userID int32, role domain.Role) (*DashboardStats, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Staff see system-wide numbers, residents only their own.
	scope := userID
	zone := user.Zone
	if role.IsStaff() {
		scope = 0
		zone = ""
	}

	counts, err := s.collectionRepo.CountByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}
	recycling, err := s.collectionRepo.CountCompletedRecycling(ctx, scope)
	if err != nil {
		return nil, err
	}
	co2, err := s.analyticsRepo.SumCO2Saved(ctx, zone)
	if err != nil {
		return nil, err
	}

	var today *domain.AnalyticsRollup
	if zone != "" {
		today, err = s.analyticsRepo.GetRollup(ctx, time.Now().Format("2006-01-02"), zone)
		if err != nil {
			return nil, err
		}
	}

	var total int32
	for _, n := range counts {
		total += n
	}
	completed := counts[domain.CollectionStatusCompleted]

	var rate int32
	if completed > 0 {
		rate = int32(math.Round(float64(recycling) / float64(completed) * 100))
	}

	return &DashboardStats{
		TotalCollections:     total,
		CompletedCollections: completed,
		PendingCollections:   counts[domain.CollectionStatusPending],
		Points:               user.Points,
		RecyclingRate:        rate,
		CO2Saved:             co2,
		TodayRollup:          today,
	}, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) ChangeRole(ctx context.Context, userID int32, role domain.Role) error {
	switch role {
	case domain.RoleUser, domain.RoleCollector, domain.RoleAdmin:
	default:
		return ErrInvalidInput
	}
	return s.userRepo.UpdateRole(ctx, userID, role)
}
