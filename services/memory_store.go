package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adityakumar003/TrainX/models"
)

// MemoryUserStore keeps users in memory. It mirrors the document-update
// semantics of the Mongo store and backs local development and tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(user), nil
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	id := user.ID.Hex()
	s.users[id] = cloneUser(user)
	return id, nil
}

func (s *MemoryUserStore) SetFields(ctx context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	for key, value := range fields {
		applyField(user, key, value)
	}
	return nil
}

func (s *MemoryUserStore) PushWorkout(ctx context.Context, id string, workout models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	user.Workouts = append(user.Workouts, workout)
	return nil
}

func (s *MemoryUserStore) ReplaceWorkouts(ctx context.Context, id string, workouts []models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	user.Workouts = append([]models.Workout(nil), workouts...)
	return nil
}

func (s *MemoryUserStore) UpdateExerciseByDate(ctx context.Context, id, date, exerciseName string, reps int, weight, calories float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	for wi := range user.Workouts {
		if user.Workouts[wi].Date != date {
			continue
		}
		for ei := range user.Workouts[wi].Exercises {
			if user.Workouts[wi].Exercises[ei].ExerciseName != exerciseName {
				continue
			}
			user.Workouts[wi].Exercises[ei].Reps = reps
			user.Workouts[wi].Exercises[ei].Weight = weight
			user.Workouts[wi].Exercises[ei].Calories = calories
		}
	}
	return nil
}

func (s *MemoryUserStore) PullExercise(ctx context.Context, id, workoutID, exerciseName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	for wi := range user.Workouts {
		if user.Workouts[wi].ID != workoutID {
			continue
		}
		kept := user.Workouts[wi].Exercises[:0]
		for _, ex := range user.Workouts[wi].Exercises {
			if ex.ExerciseName != exerciseName {
				kept = append(kept, ex)
			}
		}
		user.Workouts[wi].Exercises = kept
	}
	return nil
}

func (s *MemoryUserStore) PruneEmptyWorkouts(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	kept := user.Workouts[:0]
	for _, w := range user.Workouts {
		if !w.Empty() {
			kept = append(kept, w)
		}
	}
	user.Workouts = kept
	return nil
}

// applyField maps the dotted $set keys the services use onto the struct.
func applyField(user *models.User, key string, value any) {
	switch key {
	case "workouts":
		if ws, ok := value.([]models.Workout); ok {
			user.Workouts = append([]models.Workout(nil), ws...)
		}
	case "bmi":
		if v, ok := value.(float64); ok {
			user.BMI = v
		}
	case "bmi_status":
		if v, ok := value.(string); ok {
			user.BMIStatus = v
		}
	case "height":
		if v, ok := value.(float64); ok {
			user.Height = v
		}
	case "weight":
		if v, ok := value.(float64); ok {
			user.Weight = v
		}
	case "age":
		if v, ok := value.(int); ok {
			user.Age = v
		}
	case "sex":
		if v, ok := value.(string); ok {
			user.Sex = v
		}
	default:
		// Cached meal plans are written as "meal_plans.<goal>".
		const prefix = "meal_plans."
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			if plan, ok := value.(models.CachedMealPlan); ok {
				if user.MealPlans == nil {
					user.MealPlans = make(map[string]models.CachedMealPlan)
				}
				user.MealPlans[key[len(prefix):]] = plan
			}
		}
	}
}

func cloneUser(user *models.User) *models.User {
	clone := *user
	clone.Workouts = make([]models.Workout, len(user.Workouts))
	for i, w := range user.Workouts {
		clone.Workouts[i] = w
		clone.Workouts[i].Exercises = append([]models.Exercise(nil), w.Exercises...)
	}
	if user.MealPlans != nil {
		clone.MealPlans = make(map[string]models.CachedMealPlan, len(user.MealPlans))
		for k, v := range user.MealPlans {
			clone.MealPlans[k] = v
		}
	}
	return &clone
}
