package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/logger"
	"ecowaste-backend/internal/repository"

	"github.com/google/uuid"
)

// ErrRedemptionConflict is returned when a unique redemption code could not
// be issued after bounded retries. Nothing is committed, so the caller may
// safely retry the whole redemption.
var ErrRedemptionConflict = errors.New("could not issue a unique redemption code")

const redemptionCodeAttempts = 3

// InsufficientPointsError carries the numbers the caller needs to tell the
// user how far short they are.
type InsufficientPointsError struct {
	Balance  int32
	Required int32
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: have %d, need %d", e.Balance, e.Required)
}

type rewardService struct {
	ledger     repository.LedgerRepository
	rewardRepo repository.RewardRepository
}

func NewRewardService(ledger repository.LedgerRepository, rewardRepo repository.RewardRepository) RewardService {
	return &rewardService{ledger: ledger, rewardRepo: rewardRepo}
}

func (s *rewardService) ListRewards(ctx context.Context, category string) ([]domain.Reward, error) {
	return s.rewardRepo.ListActive(ctx, category)
}

func (s *rewardService) ListRedemptions(ctx context.Context, userID int32) ([]domain.Redemption, error) {
	return s.rewardRepo.ListRedemptionsByUser(ctx, userID)
}

// Redeem exchanges points for a reward. The balance check, the decrement, the
// redemption row, and the notification commit as one transaction; the user
// row is locked for the duration so concurrent redemptions cannot overspend.
// A code collision aborts the transaction and retries with a fresh code.
func (s *rewardService) Redeem(ctx context.Context, userID, rewardID int32) (string, error) {
	for attempt := 0; attempt < redemptionCodeAttempts; attempt++ {
		code := newRedemptionCode()
		err := s.ledger.Atomic(ctx, func(tx repository.LedgerTx) error {
			reward, err := tx.ActiveReward(ctx, rewardID)
			if err != nil {
				return err
			}
			points, err := tx.PointsForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			if points < reward.PointsCost {
				return &InsufficientPointsError{Balance: points, Required: reward.PointsCost}
			}
			if err := tx.AddPoints(ctx, userID, -reward.PointsCost); err != nil {
				return err
			}
			rd := &domain.Redemption{
				UserID:      userID,
				RewardID:    reward.ID,
				PointsSpent: reward.PointsCost,
				Code:        code,
			}
			if err := tx.InsertRedemption(ctx, rd); err != nil {
				return err
			}
			note := &domain.Notification{
				UserID:  userID,
				Type:    domain.NotificationRewardEarned,
				Title:   "Reward Redeemed!",
				Message: fmt.Sprintf("You've redeemed %s. Your code: %s", reward.Name, code),
				Link:    "/profile/rewards",
			}
			return tx.InsertNotification(ctx, note)
		})
		if errors.Is(err, repository.ErrCodeTaken) {
			logger.Warn("Redemption code collision, retrying", "attempt", attempt+1, "user_id", userID)
			continue
		}
		if err != nil {
			return "", err
		}
		return code, nil
	}
	return "", ErrRedemptionConflict
}

// newRedemptionCode builds an opaque code from a base36 timestamp plus a
// random suffix. Uniqueness is still enforced by the redemptions table.
func newRedemptionCode() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return "RWD" + ts + suffix
}
