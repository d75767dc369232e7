package models

// Dietary goals the meal planner understands.
const (
	GoalBulking = "bulking"
	GoalCutting = "cutting"
)

// ValidGoal reports whether goal is one of the supported dietary goals.
func ValidGoal(goal string) bool {
	return goal == GoalBulking || goal == GoalCutting
}

// Meal is one entry of a generated plan.
type Meal struct {
	Name        string  `bson:"name" json:"name"`
	Calories    float64 `bson:"calories" json:"calories"`
	Protein     float64 `bson:"protein" json:"protein"`
	Carbs       float64 `bson:"carbs" json:"carbs"`
	Fats        float64 `bson:"fats" json:"fats"`
	Description string  `bson:"description" json:"description"`
}

// MealPlan is the fixed 5-meal schema the generator must produce.
type MealPlan struct {
	PreWorkout  Meal `bson:"pre_workout" json:"pre_workout"`
	PostWorkout Meal `bson:"post_workout" json:"post_workout"`
	Breakfast   Meal `bson:"breakfast" json:"breakfast"`
	Lunch       Meal `bson:"lunch" json:"lunch"`
	Dinner      Meal `bson:"dinner" json:"dinner"`
}

// CachedMealPlan is a plan stored on the user document together with the
// calendar day it was generated on.
type CachedMealPlan struct {
	Plan MealPlan `bson:"plan" json:"plan"`
	Date string   `bson:"date" json:"date"` // YYYY-MM-DD
}
