package services

import (
	"context"

	"github.com/adityakumar003/TrainX/models"
)

// UserStore is the persistence boundary for user documents. Workouts are
// embedded in the user, so every operation is one atomic document update;
// that atomicity is the only serialization between concurrent requests.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (string, error)

	// SetFields applies a flat $set of top-level (or dotted) fields.
	SetFields(ctx context.Context, id string, fields map[string]any) error

	PushWorkout(ctx context.Context, id string, workout models.Workout) error
	ReplaceWorkouts(ctx context.Context, id string, workouts []models.Workout) error

	// UpdateExerciseByDate overwrites reps/weight/calories of every exercise
	// whose name matches inside every workout on the given date.
	UpdateExerciseByDate(ctx context.Context, id, date, exerciseName string, reps int, weight, calories float64) error

	// PullExercise removes the named exercise from one specific workout.
	PullExercise(ctx context.Context, id, workoutID, exerciseName string) error

	// PruneEmptyWorkouts drops every workout of the user that has no
	// exercises left.
	PruneEmptyWorkouts(ctx context.Context, id string) error
}
