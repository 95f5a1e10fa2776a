package domain

import "time"

type CollectionStatus string

const (
	CollectionStatusPending    CollectionStatus = "pending"
	CollectionStatusScheduled  CollectionStatus = "scheduled"
	CollectionStatusInProgress CollectionStatus = "in_progress"
	CollectionStatusCompleted  CollectionStatus = "completed"
	CollectionStatusCancelled  CollectionStatus = "cancelled"
	CollectionStatusMissed     CollectionStatus = "missed"
)

func (s CollectionStatus) Valid() bool {
	switch s {
	case CollectionStatusPending, CollectionStatusScheduled, CollectionStatusInProgress,
		CollectionStatusCompleted, CollectionStatusCancelled, CollectionStatusMissed:
		return true
	}
	return false
}

// Terminal reports whether no further side-effect-bearing transition is
// expected from this status.
func (s CollectionStatus) Terminal() bool {
	switch s {
	case CollectionStatusCompleted, CollectionStatusCancelled, CollectionStatusMissed:
		return true
	}
	return false
}

type WasteType string

const (
	WasteTypeGeneral    WasteType = "general"
	WasteTypeRecycling  WasteType = "recycling"
	WasteTypeOrganic    WasteType = "organic"
	WasteTypeHazardous  WasteType = "hazardous"
	WasteTypeElectronic WasteType = "electronic"
	WasteTypeBulk       WasteType = "bulk"
)

func (w WasteType) Valid() bool {
	switch w {
	case WasteTypeGeneral, WasteTypeRecycling, WasteTypeOrganic,
		WasteTypeHazardous, WasteTypeElectronic, WasteTypeBulk:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Collection struct {
	ID            int32            `json:"id"`
	UserID        int32            `json:"user_id"`
	WasteType     WasteType        `json:"waste_type"`
	Zone          string           `json:"zone"`
	Address       string           `json:"address"`
	Priority      Priority         `json:"priority"`
	Status        CollectionStatus `json:"status"`
	Notes         string           `json:"notes,omitempty"`
	ScheduledDate *time.Time       `json:"scheduled_date,omitempty"`
	CollectorID   *int32           `json:"collector_id,omitempty"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}
