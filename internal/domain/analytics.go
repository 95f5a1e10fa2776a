package domain

// AnalyticsRollup is one accumulator row per (date, zone). It is only ever
// incremented; replay protection is the transition coordinator's job.
type AnalyticsRollup struct {
	Date                 string  `json:"date"` // YYYY-MM-DD
	Zone                 string  `json:"zone"`
	TotalCollections     int32   `json:"total_collections"`
	CompletedCollections int32   `json:"completed_collections"`
	RecyclingWeight      float64 `json:"recycling_weight"`
	GeneralWasteWeight   float64 `json:"general_waste_weight"`
	CO2Saved             float64 `json:"co2_saved"`
}
