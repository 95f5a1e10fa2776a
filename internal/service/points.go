package service

import "ecowaste-backend/internal/domain"

// Point values and CO2 factors per action. Unknown waste types deliberately
// fall through to the lowest bucket so the award flow can never fail on input.
const (
	pointsPerRecycling  = 20
	pointsPerOrganic    = 15
	pointsPerCollection = 10
	pointsPerReport     = 5
)

// DefaultCollectionWeightKg is the assumed weight of a collection when none
// is recorded. It also feeds the analytics weight accumulators.
const DefaultCollectionWeightKg = 5.0

// PointsForAction returns the points earned for an action. Pure and total.
func PointsForAction(kind domain.ActionKind, wasteType domain.WasteType) int32 {
	switch kind {
	case domain.ActionReportFiled:
		return pointsPerReport
	case domain.ActionCollectionCompleted:
		switch wasteType {
		case domain.WasteTypeRecycling:
			return pointsPerRecycling
		case domain.WasteTypeOrganic:
			return pointsPerOrganic
		default:
			return pointsPerCollection
		}
	}
	return 0
}

// CO2SavedKg estimates kilograms of CO2 saved by handling weightKg of waste.
func CO2SavedKg(wasteType domain.WasteType, weightKg float64) float64 {
	switch wasteType {
	case domain.WasteTypeRecycling:
		return weightKg * 0.8
	case domain.WasteTypeOrganic:
		return weightKg * 0.3
	default:
		return weightKg * 0.1
	}
}
