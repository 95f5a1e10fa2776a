package postgres

import (
	"database/sql"

	"ecowaste-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CollectionRepository
	repository.ReportRepository
	repository.RewardRepository
	repository.NotificationRepository
	repository.AnalyticsRepository
	repository.ScheduleRepository
	repository.LedgerRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		CollectionRepository:   NewCollectionRepository(db),
		ReportRepository:       NewReportRepository(db),
		RewardRepository:       NewRewardRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		AnalyticsRepository:    NewAnalyticsRepository(db),
		ScheduleRepository:     NewScheduleRepository(db),
		LedgerRepository:       NewLedgerRepository(db),
	}
}
