package domain

import "time"

type RewardCategory string

const (
	RewardCategoryVoucher  RewardCategory = "voucher"
	RewardCategoryDiscount RewardCategory = "discount"
	RewardCategoryService  RewardCategory = "service"
)

type Reward struct {
	ID          int32          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	PointsCost  int32          `json:"points_cost"`
	Category    RewardCategory `json:"category"`
	IsActive    bool           `json:"is_active"`
}

// Redemption is the append-only record of a completed exchange. PointsSpent
// snapshots the reward's cost at redemption time so later catalog price
// changes do not rewrite history.
type Redemption struct {
	ID          int32     `json:"id"`
	UserID      int32     `json:"user_id"`
	RewardID    int32     `json:"reward_id"`
	PointsSpent int32     `json:"points_spent"`
	Code        string    `json:"code"`
	CreatedAt   time.Time `json:"created_at"`
}
