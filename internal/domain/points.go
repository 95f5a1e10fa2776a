package domain

import "time"

type ActionKind string

const (
	ActionCollectionCompleted ActionKind = "collection_completed"
	ActionReportFiled         ActionKind = "report_filed"
)

type SourceType string

const (
	SourceCollection SourceType = "collection"
	SourceReport     SourceType = "report"
)

// PointEvent records a single balance change. At most one event exists per
// (source_type, source_id, kind), which is what makes awards idempotent.
type PointEvent struct {
	ID         int32      `json:"id"`
	UserID     int32      `json:"user_id"`
	Points     int32      `json:"points"`
	Kind       ActionKind `json:"kind"`
	SourceType SourceType `json:"source_type"`
	SourceID   int32      `json:"source_id"`
	Reason     string     `json:"reason"`
	CreatedAt  time.Time  `json:"created_at"`
}
