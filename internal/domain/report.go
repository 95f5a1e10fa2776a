package domain

import "time"

type ReportStatus string

const (
	ReportStatusPending       ReportStatus = "pending"
	ReportStatusInvestigating ReportStatus = "investigating"
	ReportStatusResolved      ReportStatus = "resolved"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusInvestigating, ReportStatusResolved:
		return true
	}
	return false
}

func (s ReportStatus) Terminal() bool {
	return s == ReportStatusResolved
}

type ReportType string

const (
	ReportTypeMissedCollection ReportType = "missed_collection"
	ReportTypeDamagedBin       ReportType = "damaged_bin"
	ReportTypeIllegalDumping   ReportType = "illegal_dumping"
	ReportTypeOther            ReportType = "other"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportTypeMissedCollection, ReportTypeDamagedBin, ReportTypeIllegalDumping, ReportTypeOther:
		return true
	}
	return false
}

type Report struct {
	ID              int32        `json:"id"`
	UserID          int32        `json:"user_id"`
	Type            ReportType   `json:"type"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Location        string       `json:"location"`
	Priority        Priority     `json:"priority"`
	Status          ReportStatus `json:"status"`
	ResolvedBy      *int32       `json:"resolved_by,omitempty"`
	ResolutionNotes string       `json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time   `json:"resolved_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}
