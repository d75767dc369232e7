package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the single document per account. Workouts are embedded so every
// mutation is one atomic document update.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Height    float64            `bson:"height,omitempty" json:"height,omitempty"` // cm
	Weight    float64            `bson:"weight,omitempty" json:"weight,omitempty"` // kg
	Age       int                `bson:"age,omitempty" json:"age,omitempty"`
	Sex       string             `bson:"sex,omitempty" json:"sex,omitempty"`
	BMI       float64            `bson:"bmi,omitempty" json:"bmi,omitempty"`
	BMIStatus string             `bson:"bmi_status,omitempty" json:"bmi_status,omitempty"`
	Workouts  []Workout          `bson:"workouts" json:"workouts"`

	// Cached AI meal plans, one per goal, refreshed at most once per day.
	MealPlans map[string]CachedMealPlan `bson:"meal_plans,omitempty" json:"-"`
}
