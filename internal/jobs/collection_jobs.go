package jobs

import (
	"context"
	"fmt"
	"time"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/logger"
)

// SendCollectionReminders notifies residents about pickups scheduled for the
// next day.
func (jr *JobRunner) SendCollectionReminders() {
	jr.runWithRecovery("SendCollectionReminders", func() {
		ctx := context.Background()

		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Truncate(24 * time.Hour)
		collections, err := jr.store.CollectionRepository.ListScheduledBetween(ctx, tomorrow, tomorrow.AddDate(0, 0, 1))
		if err != nil {
			logger.Error("Failed to load scheduled collections", "error", err)
			return
		}

		count := 0
		for _, c := range collections {
			note := &domain.Notification{
				UserID:  c.UserID,
				Type:    domain.NotificationCollectionReminder,
				Title:   "Collection Reminder",
				Message: fmt.Sprintf("Your %s collection is scheduled for tomorrow at %s.", c.WasteType, c.Address),
				Link:    fmt.Sprintf("/collections/%d", c.ID),
			}
			if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
				logger.Error("Failed to create reminder notification",
					"collection_id", c.ID, "user_id", c.UserID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Sent collection reminders", "count", count)
	})
}

// MarkMissedCollections flags scheduled collections that were never picked up
// once the grace period after their scheduled date has passed.
func (jr *JobRunner) MarkMissedCollections() {
	jr.runWithRecovery("MarkMissedCollections", func() {
		ctx := context.Background()

		grace := time.Duration(jr.config.Scheduler.MissedGraceHours) * time.Hour
		cutoff := time.Now().UTC().Add(-grace)

		count, err := jr.store.CollectionRepository.MarkMissedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to mark missed collections", "error", err)
			return
		}

		logger.Info("Marked collections as missed", "count", count, "cutoff", cutoff.Format(time.RFC3339))
	})
}
