package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakumar003/TrainX/models"
)

func newTestUser(t *testing.T, store *MemoryUserStore, workouts ...models.Workout) string {
	t.Helper()
	id, err := store.Insert(context.Background(), &models.User{
		Email:    "lifter@example.com",
		Name:     "Lifter",
		Workouts: workouts,
	})
	require.NoError(t, err)
	return id
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestBuildWorkoutFromExerciseList(t *testing.T) {
	now := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)
	req := AddWorkoutRequest{
		Name: "Push day",
		Exercises: []ExercisePayload{
			{ExerciseName: "bench press", Reps: 10, Sets: 3, Weight: 60, Calories: floatPtr(200)},
			{ExerciseName: "dips", Reps: 12, Sets: 3, Weight: 10}, // estimated: 12*3*10*0.1 = 36
		},
	}

	w := BuildWorkout(req, now)

	assert.NotEmpty(t, w.ID)
	assert.Equal(t, "2026-08-31", w.Date)
	assert.Equal(t, "Push day", w.Name)
	require.Len(t, w.Exercises, 2)
	assert.Equal(t, 200.0, w.Exercises[0].Calories)
	assert.Equal(t, 36.0, w.Exercises[1].Calories)
	assert.Equal(t, 236.0, w.TotalCalories)
}

func TestBuildWorkoutFlatFallback(t *testing.T) {
	now := time.Now()
	req := AddWorkoutRequest{
		ExerciseName: "squat",
		Reps:         intPtr(5),
		Sets:         intPtr(5),
		Weight:       floatPtr(100),
	}

	w := BuildWorkout(req, now)

	require.Len(t, w.Exercises, 1)
	assert.Equal(t, "squat", w.Name) // name defaults to the first exercise
	assert.Equal(t, 250.0, w.Exercises[0].Calories)
	assert.Equal(t, 250.0, w.TotalCalories)
}

func TestBuildWorkoutEmptyGetsPlaceholderName(t *testing.T) {
	w := BuildWorkout(AddWorkoutRequest{}, time.Now())
	assert.Equal(t, "Workout", w.Name)
	assert.Empty(t, w.Exercises)
	assert.Equal(t, 0.0, w.TotalCalories)
}

func TestAddWorkoutPersists(t *testing.T) {
	store := NewMemoryUserStore()
	svc := NewWorkoutService(store)
	userID := newTestUser(t, store)

	_, err := svc.AddWorkout(context.Background(), userID, AddWorkoutRequest{
		Exercises: []ExercisePayload{{ExerciseName: "row", Reps: 8, Sets: 4, Weight: 40}},
	})
	require.NoError(t, err)

	workouts, err := svc.ListWorkouts(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "row", workouts[0].Name)
	assert.Equal(t, models.SumCalories(workouts[0].Exercises), workouts[0].TotalCalories)
}

func TestListWorkoutsBackfillsMissingIDs(t *testing.T) {
	store := NewMemoryUserStore()
	svc := NewWorkoutService(store)
	legacy := models.Workout{ // predates id support
		Date:      "2020-01-01",
		Name:      "old session",
		Exercises: []models.Exercise{{ExerciseName: "curl", Reps: 10, Sets: 3, Weight: 12, Calories: 36}},
	}
	withID := models.Workout{
		ID:        "existing-id",
		Date:      "2020-01-02",
		Name:      "newer session",
		Exercises: []models.Exercise{{ExerciseName: "press", Reps: 8, Sets: 3, Weight: 30, Calories: 72}},
	}
	userID := newTestUser(t, store, legacy, withID)

	first, err := svc.ListWorkouts(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.NotEmpty(t, first[0].ID)
	assert.Equal(t, "existing-id", first[1].ID)

	// Idempotent: the second read sees the same ids, now persisted.
	second, err := svc.ListWorkouts(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)
}

func TestListWorkoutsUnknownUserIsEmpty(t *testing.T) {
	svc := NewWorkoutService(NewMemoryUserStore())
	workouts, err := svc.ListWorkouts(context.Background(), "507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestUpdateExerciseMatchesByDateAndName(t *testing.T) {
	store := NewMemoryUserStore()
	svc := NewWorkoutService(store)
	// Two workouts share the date and exercise name: both entries match.
	userID := newTestUser(t, store,
		models.Workout{
			ID: "w1", Date: "2026-08-30", Name: "am",
			Exercises: []models.Exercise{
				{ExerciseName: "squat", Reps: 5, Sets: 5, Weight: 100, Calories: 250},
				{ExerciseName: "lunge", Reps: 10, Sets: 3, Weight: 20, Calories: 60},
			},
			TotalCalories: 310,
		},
		models.Workout{
			ID: "w2", Date: "2026-08-30", Name: "pm",
			Exercises:     []models.Exercise{{ExerciseName: "squat", Reps: 3, Sets: 3, Weight: 120, Calories: 108}},
			TotalCalories: 108,
		},
	)

	err := svc.UpdateExercise(context.Background(), userID, UpdateExerciseRequest{
		Date:         "2026-08-30",
		ExerciseName: "squat",
		Reps:         8,
		Weight:       90,
		Calories:     216,
	})
	require.NoError(t, err)

	workouts, err := svc.ListWorkouts(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, workouts, 2)

	assert.Equal(t, 8, workouts[0].Exercises[0].Reps)
	assert.Equal(t, 216.0, workouts[0].Exercises[0].Calories)
	assert.Equal(t, 60.0, workouts[0].Exercises[1].Calories) // untouched
	assert.Equal(t, 8, workouts[1].Exercises[0].Reps)

	// Totals refreshed after the mutation.
	for _, w := range workouts {
		assert.Equal(t, models.SumCalories(w.Exercises), w.TotalCalories)
	}
}

func TestUpdateExerciseRequiresParameters(t *testing.T) {
	svc := NewWorkoutService(NewMemoryUserStore())
	err := svc.UpdateExercise(context.Background(), "any", UpdateExerciseRequest{Date: "2026-08-30"})
	assert.ErrorIs(t, err, ErrMissingParameters)
}

func TestDeleteExerciseRemovesEntry(t *testing.T) {
	store := NewMemoryUserStore()
	svc := NewWorkoutService(store)
	userID := newTestUser(t, store, models.Workout{
		ID: "w1", Date: "2026-08-30", Name: "legs",
		Exercises: []models.Exercise{
			{ExerciseName: "squat", Reps: 5, Sets: 5, Weight: 100, Calories: 250},
			{ExerciseName: "lunge", Reps: 10, Sets: 3, Weight: 20, Calories: 60},
		},
		TotalCalories: 310,
	})

	require.NoError(t, svc.DeleteExercise(context.Background(), userID, "w1", "lunge"))

	workouts, err := svc.ListWorkouts(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	require.Len(t, workouts[0].Exercises, 1)
	assert.Equal(t, "squat", workouts[0].Exercises[0].ExerciseName)
	assert.Equal(t, 250.0, workouts[0].TotalCalories)
}

func TestDeleteLastExerciseRemovesWorkout(t *testing.T) {
	store := NewMemoryUserStore()
	svc := NewWorkoutService(store)
	userID := newTestUser(t, store, models.Workout{
		ID: "w1", Date: "2026-08-30", Name: "solo",
		Exercises:     []models.Exercise{{ExerciseName: "deadlift", Reps: 5, Sets: 3, Weight: 140, Calories: 210}},
		TotalCalories: 210,
	})

	require.NoError(t, svc.DeleteExercise(context.Background(), userID, "w1", "deadlift"))

	workouts, err := svc.ListWorkouts(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestDeleteExercisePrunesUnrelatedEmptyWorkouts(t *testing.T) {
	store := NewMemoryUserStore()
	svc := NewWorkoutService(store)
	// The cleanup after a delete removes every empty workout, including ones
	// the delete never touched.
	userID := newTestUser(t, store,
		models.Workout{ID: "w1", Date: "2026-08-29", Name: "stale", Exercises: []models.Exercise{}},
		models.Workout{
			ID: "w2", Date: "2026-08-30", Name: "push",
			Exercises: []models.Exercise{
				{ExerciseName: "bench press", Reps: 10, Sets: 3, Weight: 60, Calories: 180},
				{ExerciseName: "dips", Reps: 12, Sets: 3, Weight: 10, Calories: 36},
			},
			TotalCalories: 216,
		},
	)

	require.NoError(t, svc.DeleteExercise(context.Background(), userID, "w2", "dips"))

	workouts, err := svc.ListWorkouts(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "w2", workouts[0].ID)
	assert.Equal(t, 180.0, workouts[0].TotalCalories)
}

func TestDeleteExerciseRequiresParameters(t *testing.T) {
	svc := NewWorkoutService(NewMemoryUserStore())
	assert.ErrorIs(t, svc.DeleteExercise(context.Background(), "any", "", "squat"), ErrMissingParameters)
	assert.ErrorIs(t, svc.DeleteExercise(context.Background(), "any", "w1", ""), ErrMissingParameters)
}
