package utils

// EstimateCalories is the fallback estimate used when a logged exercise
// carries no explicit calorie value.
func EstimateCalories(reps, sets int, weight float64) float64 {
	return float64(reps) * float64(sets) * weight * 0.1
}
