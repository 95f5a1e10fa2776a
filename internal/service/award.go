package service

import (
	"context"
	"errors"
	"fmt"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/logger"
	"ecowaste-backend/internal/repository"
)

type awardService struct {
	ledger         repository.LedgerRepository
	collectionRepo repository.CollectionRepository
	reportRepo     repository.ReportRepository
}

func NewAwardService(
	ledger repository.LedgerRepository,
	collectionRepo repository.CollectionRepository,
	reportRepo repository.ReportRepository,
) AwardService {
	return &awardService{
		ledger:         ledger,
		collectionRepo: collectionRepo,
		reportRepo:     reportRepo,
	}
}

// applyAward performs the award bundle inside an open unit of work: the point
// event insert (which doubles as the idempotency guard), the balance
// increment, and the award notification. Returns the points credited.
// ErrDuplicateAward passes through untouched so callers can decide whether to
// absorb it.
func applyAward(ctx context.Context, tx repository.LedgerTx, userID int32, kind domain.ActionKind,
	wasteType domain.WasteType, sourceType domain.SourceType, sourceID int32, reason string) (int32, error) {

	points := PointsForAction(kind, wasteType)
	ev := &domain.PointEvent{
		UserID:     userID,
		Points:     points,
		Kind:       kind,
		SourceType: sourceType,
		SourceID:   sourceID,
		Reason:     reason,
	}
	if err := tx.InsertPointEvent(ctx, ev); err != nil {
		return 0, err
	}
	if err := tx.AddPoints(ctx, userID, points); err != nil {
		return 0, err
	}
	note := &domain.Notification{
		UserID:  userID,
		Type:    domain.NotificationRewardEarned,
		Title:   "Points Earned!",
		Message: fmt.Sprintf("You earned %d points for %s", points, reason),
	}
	if err := tx.InsertNotification(ctx, note); err != nil {
		return 0, err
	}
	return points, nil
}

func (s *awardService) AwardForCompletedCollection(ctx context.Context, collectionID int32) error {
	c, err := s.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}
	err = s.ledger.Atomic(ctx, func(tx repository.LedgerTx) error {
		_, err := applyAward(ctx, tx, c.UserID, domain.ActionCollectionCompleted, c.WasteType,
			domain.SourceCollection, c.ID, fmt.Sprintf("completing a %s collection", c.WasteType))
		return err
	})
	if errors.Is(err, repository.ErrDuplicateAward) {
		logger.Debug("Points already awarded for collection", "collection_id", collectionID)
		return nil
	}
	return err
}

func (s *awardService) AwardForFiledReport(ctx context.Context, reportID int32) error {
	rep, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return err
	}
	err = s.ledger.Atomic(ctx, func(tx repository.LedgerTx) error {
		_, err := applyAward(ctx, tx, rep.UserID, domain.ActionReportFiled, "",
			domain.SourceReport, rep.ID, "reporting an issue")
		return err
	})
	if errors.Is(err, repository.ErrDuplicateAward) {
		logger.Debug("Points already awarded for report", "report_id", reportID)
		return nil
	}
	return err
}
