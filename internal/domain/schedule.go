package domain

// Schedule is a recurring weekly pickup slot for a zone.
type Schedule struct {
	ID          int32     `json:"id"`
	Zone        string    `json:"zone"`
	DayOfWeek   int32     `json:"day_of_week"` // 0 = Sunday
	TimeSlot    string    `json:"time_slot"`   // e.g. "08:00-12:00"
	WasteType   WasteType `json:"waste_type"`
	CollectorID *int32    `json:"collector_id,omitempty"`
}
