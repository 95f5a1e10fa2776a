package service

import (
	"context"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"
)

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

func (s *scheduleService) GetZoneSchedule(ctx context.Context, zone string) ([]domain.Schedule, error) {
	return s.scheduleRepo.ListByZone(ctx, zone)
}
