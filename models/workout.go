package models

// Workout is one dated training session embedded in the user document.
// TotalCalories is the sum of the exercise calories at last write; listing
// never recomputes it.
type Workout struct {
	ID            string     `bson:"id,omitempty" json:"id"`
	Date          string     `bson:"date" json:"date"` // YYYY-MM-DD
	Name          string     `bson:"name" json:"name"`
	Exercises     []Exercise `bson:"exercises" json:"exercises"`
	TotalCalories float64    `bson:"total_calories" json:"total_calories"`
}

// Exercise is a single logged performance inside a workout. Entries carry no
// id of their own; within one workout they are addressed by name.
type Exercise struct {
	ExerciseName string  `bson:"exercise_name" json:"exercise_name"`
	Reps         int     `bson:"reps" json:"reps"`
	Sets         int     `bson:"sets" json:"sets"`
	Weight       float64 `bson:"weight" json:"weight"`
	Calories     float64 `bson:"calories" json:"calories"`
	ImageURL     string  `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// Empty reports whether the workout has no exercises left. Empty workouts
// are invalid and get pruned by the delete-exercise cleanup.
func (w Workout) Empty() bool {
	return len(w.Exercises) == 0
}

// SumCalories adds up the calories of all entries.
func SumCalories(exercises []Exercise) float64 {
	var total float64
	for _, ex := range exercises {
		total += ex.Calories
	}
	return total
}
