package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakumar003/TrainX/models"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (g *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return g.response, g.err
}

const goodPlanResponse = `Sure! Here is your plan:
{
    "pre_workout": {"name": "Banana oats", "calories": 250, "protein": 8, "carbs": 45, "fats": 5, "description": "Light and energizing"},
    "post_workout": {"name": "Paneer wrap", "calories": 450, "protein": 35, "carbs": 40, "fats": 12, "description": "Protein-rich"},
    "breakfast": {"name": "Masala omelette", "calories": 400, "protein": 25, "carbs": 20, "fats": 22, "description": "Balanced"},
    "lunch": {"name": "Dal rice thali", "calories": 700, "protein": 30, "carbs": 90, "fats": 18, "description": "Substantial"},
    "dinner": {"name": "Grilled chicken salad", "calories": 500, "protein": 40, "carbs": 25, "fats": 20, "description": "Lighter than lunch"}
}
Train hard!`

func newMealPlanFixture(t *testing.T, gen Generator) (*MealPlanService, *MemoryUserStore, string) {
	t.Helper()
	store := NewMemoryUserStore()
	userID, err := store.Insert(context.Background(), &models.User{
		Email:  "lifter@example.com",
		Weight: 82,
		Height: 180,
		Age:    30,
		Sex:    "male",
		BMI:    25.3,
	})
	require.NoError(t, err)
	svc := NewMealPlanService(store, gen)
	return svc, store, userID
}

func TestPlanForGoalGeneratesAndCaches(t *testing.T) {
	gen := &stubGenerator{response: goodPlanResponse}
	svc, store, userID := newMealPlanFixture(t, gen)

	plan, cached, err := svc.PlanForGoal(context.Background(), userID, "bulking")
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "Banana oats", plan.PreWorkout.Name)
	assert.Equal(t, 700.0, plan.Lunch.Calories)
	assert.Equal(t, 1, gen.calls)

	// Second request on the same day is served from the cache without a new
	// upstream call.
	again, cached, err := svc.PlanForGoal(context.Background(), userID, "bulking")
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, plan, again)
	assert.Equal(t, 1, gen.calls)

	user, err := store.FindByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Contains(t, user.MealPlans, "bulking")
}

func TestPlanForGoalCacheIsPerGoal(t *testing.T) {
	gen := &stubGenerator{response: goodPlanResponse}
	svc, _, userID := newMealPlanFixture(t, gen)

	_, _, err := svc.PlanForGoal(context.Background(), userID, "bulking")
	require.NoError(t, err)
	_, cached, err := svc.PlanForGoal(context.Background(), userID, "cutting")
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, gen.calls)
}

func TestPlanForGoalExpiresNextDay(t *testing.T) {
	gen := &stubGenerator{response: goodPlanResponse}
	svc, _, userID := newMealPlanFixture(t, gen)

	day := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }
	_, _, err := svc.PlanForGoal(context.Background(), userID, "cutting")
	require.NoError(t, err)

	svc.now = func() time.Time { return day.Add(24 * time.Hour) }
	_, cached, err := svc.PlanForGoal(context.Background(), userID, "cutting")
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, gen.calls)
}

func TestPlanForGoalRejectsUnknownGoal(t *testing.T) {
	svc, _, userID := newMealPlanFixture(t, &stubGenerator{})
	_, _, err := svc.PlanForGoal(context.Background(), userID, "recomposition")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlanForGoalUnparsableOutput(t *testing.T) {
	gen := &stubGenerator{response: "I cannot produce JSON today."}
	svc, _, userID := newMealPlanFixture(t, gen)

	_, _, err := svc.PlanForGoal(context.Background(), userID, "bulking")
	assert.ErrorIs(t, err, ErrBadModelOutput)
}

func TestPlanForGoalWithoutGenerator(t *testing.T) {
	svc, _, userID := newMealPlanFixture(t, nil)
	_, _, err := svc.PlanForGoal(context.Background(), userID, "bulking")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestBuildMealPlanPromptDefaults(t *testing.T) {
	prompt := BuildMealPlanPrompt("bulking", &models.User{})
	assert.Contains(t, prompt, "BMI: 22.0")
	assert.Contains(t, prompt, "Weight: 70 kg")
	assert.Contains(t, prompt, "Height: 170 cm")
	assert.Contains(t, prompt, "Age: 25 years")
	assert.Contains(t, prompt, "High calorie surplus")

	prompt = BuildMealPlanPrompt("cutting", &models.User{Weight: 95, Height: 182, Age: 41, Sex: "female", BMI: 28.7})
	assert.Contains(t, prompt, "female")
	assert.Contains(t, prompt, "Calorie deficit")
	assert.Contains(t, prompt, "Weight: 95 kg")
}
