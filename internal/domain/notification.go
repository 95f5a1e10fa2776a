package domain

import "time"

type NotificationType string

const (
	NotificationRewardEarned        NotificationType = "reward_earned"
	NotificationCollectionReminder  NotificationType = "collection_reminder"
	NotificationCollectionCompleted NotificationType = "collection_completed"
	NotificationIssueReport         NotificationType = "issue_report"
)

type Notification struct {
	ID        int32            `json:"id"`
	UserID    int32            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Link      string           `json:"link,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
