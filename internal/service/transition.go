package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/logger"
	"ecowaste-backend/internal/repository"
)

type transitionService struct {
	ledger repository.LedgerRepository
}

func NewTransitionService(ledger repository.LedgerRepository) TransitionService {
	return &transitionService{ledger: ledger}
}

// TransitionCollection applies newStatus to a collection. Any status may be
// set from any other; the only transition that carries side effects is the
// first one into completed, which awards the owner's points, accumulates the
// analytics rollup, and notifies the owner - all in the same transaction as
// the status write. The previous persisted status (read under a row lock)
// gates the side effects, and the point event's uniqueness guard backs that
// up across re-opens, so a completion is never counted twice.
func (s *transitionService) TransitionCollection(ctx context.Context, actorID, collectionID int32, newStatus domain.CollectionStatus) (*domain.Collection, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	var updated *domain.Collection
	err := s.ledger.Atomic(ctx, func(tx repository.LedgerTx) error {
		c, err := tx.CollectionForUpdate(ctx, collectionID)
		if err != nil {
			return err
		}
		prev := c.Status
		c.Status = newStatus

		firstCompletion := newStatus == domain.CollectionStatusCompleted && prev != domain.CollectionStatusCompleted
		if firstCompletion {
			now := time.Now()
			c.CompletedAt = &now
			c.CollectorID = &actorID
		}
		if err := tx.UpdateCollectionStatus(ctx, c); err != nil {
			return err
		}

		if firstCompletion {
			if err := s.applyCompletion(ctx, tx, c); err != nil {
				if errors.Is(err, repository.ErrDuplicateAward) {
					// Completed once before (re-opened and re-completed):
					// the status write stands, the side effects do not repeat.
					logger.Info("Collection completed previously, skipping side effects", "collection_id", c.ID)
					updated = c
					return nil
				}
				return err
			}
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// applyCompletion fires the one-time completion bundle: owner award,
// analytics accumulation, completion notification.
func (s *transitionService) applyCompletion(ctx context.Context, tx repository.LedgerTx, c *domain.Collection) error {
	points, err := applyAward(ctx, tx, c.UserID, domain.ActionCollectionCompleted, c.WasteType,
		domain.SourceCollection, c.ID, fmt.Sprintf("completing a %s collection", c.WasteType))
	if err != nil {
		return err
	}

	co2 := CO2SavedKg(c.WasteType, DefaultCollectionWeightKg)
	var recyclingKg, generalKg float64
	if c.WasteType == domain.WasteTypeRecycling {
		recyclingKg = DefaultCollectionWeightKg
	} else {
		generalKg = DefaultCollectionWeightKg
	}
	date := time.Now().Format("2006-01-02")
	if err := tx.UpsertCompletionRollup(ctx, date, c.Zone, recyclingKg, generalKg, co2); err != nil {
		return err
	}

	note := &domain.Notification{
		UserID: c.UserID,
		Type:   domain.NotificationCollectionCompleted,
		Title:  "Collection Completed",
		Message: fmt.Sprintf("Your %s collection has been completed. You earned %d points and saved %.1f kg CO2!",
			c.WasteType, points, co2),
		Link: fmt.Sprintf("/collections/%d", c.ID),
	}
	return tx.InsertNotification(ctx, note)
}

// TransitionReport applies newStatus to a report. The first transition into
// resolved stamps the resolution fields and notifies the author; no points
// are involved (those were awarded when the report was filed).
func (s *transitionService) TransitionReport(ctx context.Context, actorID, reportID int32, newStatus domain.ReportStatus, resolutionNotes string) (*domain.Report, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	var updated *domain.Report
	err := s.ledger.Atomic(ctx, func(tx repository.LedgerTx) error {
		rep, err := tx.ReportForUpdate(ctx, reportID)
		if err != nil {
			return err
		}
		prev := rep.Status
		rep.Status = newStatus
		if resolutionNotes != "" {
			rep.ResolutionNotes = resolutionNotes
		}

		firstResolution := newStatus == domain.ReportStatusResolved && prev != domain.ReportStatusResolved
		if firstResolution {
			now := time.Now()
			rep.ResolvedAt = &now
			rep.ResolvedBy = &actorID
		}
		if err := tx.UpdateReportStatus(ctx, rep); err != nil {
			return err
		}

		if firstResolution {
			note := &domain.Notification{
				UserID:  rep.UserID,
				Type:    domain.NotificationIssueReport,
				Title:   "Issue Resolved",
				Message: fmt.Sprintf("Your report %q has been resolved.", rep.Title),
				Link:    fmt.Sprintf("/reports/%d", rep.ID),
			}
			if err := tx.InsertNotification(ctx, note); err != nil {
				return err
			}
		}
		updated = rep
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
