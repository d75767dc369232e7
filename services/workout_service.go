package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adityakumar003/TrainX/models"
	"github.com/adityakumar003/TrainX/utils"
)

// WorkoutService owns the per-user workout log.
type WorkoutService struct {
	users UserStore
	now   func() time.Time
}

func NewWorkoutService(users UserStore) *WorkoutService {
	return &WorkoutService{users: users, now: time.Now}
}

// ExercisePayload is one logged exercise as sent by the client.
type ExercisePayload struct {
	ExerciseName string   `json:"exercise_name"`
	Reps         int      `json:"reps"`
	Sets         int      `json:"sets"`
	Weight       float64  `json:"weight"`
	Calories     *float64 `json:"calories"`
	ImageURL     string   `json:"image_url"`
}

// AddWorkoutRequest accepts either a pre-built exercise list or, as a
// fallback, a single flat exercise payload.
type AddWorkoutRequest struct {
	Name      string            `json:"name"`
	Exercises []ExercisePayload `json:"exercises"`

	ExerciseName string   `json:"exercise_name"`
	Reps         *int     `json:"reps"`
	Sets         *int     `json:"sets"`
	Weight       *float64 `json:"weight"`
	Calories     *float64 `json:"calories"`
}

// BuildWorkout turns a request into a workout record dated at now: a fresh
// id, a name defaulting to the first exercise, calories estimated where
// absent and total_calories as the sum of the entries.
func BuildWorkout(req AddWorkoutRequest, now time.Time) models.Workout {
	exercises := make([]models.Exercise, 0, len(req.Exercises))
	for _, p := range req.Exercises {
		exercises = append(exercises, buildExercise(p))
	}

	if len(exercises) == 0 && req.ExerciseName != "" && req.Reps != nil && req.Sets != nil && req.Weight != nil {
		exercises = append(exercises, buildExercise(ExercisePayload{
			ExerciseName: req.ExerciseName,
			Reps:         *req.Reps,
			Sets:         *req.Sets,
			Weight:       *req.Weight,
			Calories:     req.Calories,
		}))
	}

	name := req.Name
	if name == "" {
		if len(exercises) > 0 {
			name = exercises[0].ExerciseName
		} else {
			name = "Workout"
		}
	}

	return models.Workout{
		ID:            uuid.NewString(),
		Date:          now.Format("2006-01-02"),
		Name:          name,
		Exercises:     exercises,
		TotalCalories: models.SumCalories(exercises),
	}
}

func buildExercise(p ExercisePayload) models.Exercise {
	calories := utils.EstimateCalories(p.Reps, p.Sets, p.Weight)
	if p.Calories != nil {
		calories = *p.Calories
	}
	return models.Exercise{
		ExerciseName: p.ExerciseName,
		Reps:         p.Reps,
		Sets:         p.Sets,
		Weight:       p.Weight,
		Calories:     calories,
		ImageURL:     p.ImageURL,
	}
}

// AddWorkout appends a new workout to the user's log and returns it.
func (s *WorkoutService) AddWorkout(ctx context.Context, userID string, req AddWorkoutRequest) (*models.Workout, error) {
	workout := BuildWorkout(req, s.now())
	if err := s.users.PushWorkout(ctx, userID, workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

// RepairWorkoutIDs assigns an id to every workout missing one (records that
// predate id support) and reports whether anything changed. The caller
// decides whether to persist.
func RepairWorkoutIDs(workouts []models.Workout) ([]models.Workout, bool) {
	dirty := false
	for i := range workouts {
		if workouts[i].ID == "" {
			workouts[i].ID = uuid.NewString()
			dirty = true
		}
	}
	return workouts, dirty
}

// ListWorkouts returns all workouts for the user, backfilling missing ids
// and persisting the repaired collection when needed. An unknown user yields
// an empty list, not an error.
func (s *WorkoutService) ListWorkouts(ctx context.Context, userID string) ([]models.Workout, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return []models.Workout{}, nil
	}
	if err != nil {
		return nil, err
	}

	workouts, dirty := RepairWorkoutIDs(user.Workouts)
	if dirty {
		if err := s.users.ReplaceWorkouts(ctx, userID, workouts); err != nil {
			return nil, err
		}
	}
	if workouts == nil {
		workouts = []models.Workout{}
	}
	return workouts, nil
}

// UpdateExerciseRequest addresses an exercise structurally, by workout date
// plus exercise name. If several workouts on that date log the same exercise
// name, every match is overwritten.
type UpdateExerciseRequest struct {
	Date         string  `json:"date" binding:"required"`
	ExerciseName string  `json:"exercise_name" binding:"required"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	Calories     float64 `json:"calories"`
}

// UpdateExercise overwrites reps/weight/calories of the matching entries and
// refreshes the affected totals.
func (s *WorkoutService) UpdateExercise(ctx context.Context, userID string, req UpdateExerciseRequest) error {
	if req.Date == "" || req.ExerciseName == "" {
		return fmt.Errorf("%w: date and exercise_name are required", ErrMissingParameters)
	}
	if err := s.users.UpdateExerciseByDate(ctx, userID, req.Date, req.ExerciseName, req.Reps, req.Weight, req.Calories); err != nil {
		return err
	}
	return s.refreshTotals(ctx, userID)
}

// DeleteExercise removes the named exercise from one workout, then prunes
// every workout of the user left with zero exercises. The prune is
// deliberately unconditional: an already-empty workout elsewhere in the log
// is removed by the same pass.
func (s *WorkoutService) DeleteExercise(ctx context.Context, userID, workoutID, exerciseName string) error {
	if workoutID == "" || exerciseName == "" {
		return fmt.Errorf("%w: workout_id and exercise_name are required", ErrMissingParameters)
	}

	if err := s.users.PullExercise(ctx, userID, workoutID, exerciseName); err != nil {
		return err
	}
	if err := s.users.PruneEmptyWorkouts(ctx, userID); err != nil {
		return err
	}
	return s.refreshTotals(ctx, userID)
}

// refreshTotals re-derives total_calories for every workout whose entries no
// longer add up, keeping the sum invariant after targeted mutations.
func (s *WorkoutService) refreshTotals(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	dirty := false
	workouts := user.Workouts
	for i := range workouts {
		total := models.SumCalories(workouts[i].Exercises)
		if workouts[i].TotalCalories != total {
			workouts[i].TotalCalories = total
			dirty = true
		}
	}
	if !dirty {
		return nil
	}
	return s.users.ReplaceWorkouts(ctx, userID, workouts)
}
