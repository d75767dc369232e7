package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/adityakumar003/TrainX/models"
	"github.com/adityakumar003/TrainX/utils"
)

// Generator produces free text for a prompt. The default implementation is
// the Gemini client; tests stub it.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// MealPlanService generates per-goal meal plans and caches them on the user
// document for one calendar day.
type MealPlanService struct {
	users UserStore
	gen   Generator
	now   func() time.Time
}

func NewMealPlanService(users UserStore, gen Generator) *MealPlanService {
	return &MealPlanService{users: users, gen: gen, now: time.Now}
}

// PlanForGoal returns the user's meal plan for the goal. A plan already
// generated today is served from the cache without touching the generator;
// otherwise a single generation attempt is made, the embedded JSON object is
// extracted from the response and the result is persisted. No retries.
func (s *MealPlanService) PlanForGoal(ctx context.Context, userID, goal string) (*models.MealPlan, bool, error) {
	goal = strings.ToLower(goal)
	if !models.ValidGoal(goal) {
		return nil, false, fmt.Errorf("%w: goal must be %s or %s", ErrInvalidInput, models.GoalBulking, models.GoalCutting)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	today := s.now().Format("2006-01-02")
	if cached, ok := user.MealPlans[goal]; ok && cached.Date == today {
		return &cached.Plan, true, nil
	}

	if s.gen == nil {
		return nil, false, fmt.Errorf("%w: meal plan generator is not configured", ErrUpstream)
	}

	text, err := s.gen.GenerateContent(ctx, BuildMealPlanPrompt(goal, user))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	raw := utils.ExtractJSONObject(text)
	if raw == "" {
		return nil, false, ErrBadModelOutput
	}
	var plan models.MealPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrBadModelOutput, err)
	}

	cached := models.CachedMealPlan{Plan: plan, Date: today}
	if err := s.users.SetFields(ctx, userID, map[string]any{"meal_plans." + goal: cached}); err != nil {
		return nil, false, err
	}
	log.WithFields(log.Fields{"user": userID, "goal": goal}).Info("meal plan generated")
	return &plan, false, nil
}

// BuildMealPlanPrompt renders the generation prompt for the user's
// anthropometrics, with sensible defaults where the profile is incomplete.
func BuildMealPlanPrompt(goal string, user *models.User) string {
	bmi := user.BMI
	if bmi == 0 {
		bmi = 22
	}
	weight := user.Weight
	if weight == 0 {
		weight = 70
	}
	height := user.Height
	if height == 0 {
		height = 170
	}
	age := user.Age
	if age == 0 {
		age = 25
	}
	sex := user.Sex
	if sex == "" {
		sex = "male"
	}

	var guidelines string
	if goal == models.GoalBulking {
		guidelines = `- High calorie surplus (300-500 cal above maintenance)
- High protein (1.6-2.2g per kg bodyweight)
- Moderate to high carbs for energy and muscle growth
- Healthy fats for hormone production`
	} else {
		guidelines = `- Calorie deficit (300-500 cal below maintenance)
- Very high protein (2.0-2.5g per kg bodyweight) to preserve muscle
- Moderate carbs, focus on complex carbs
- Lower fats to create calorie deficit`
	}

	return fmt.Sprintf(`Create a detailed %s meal plan for a %s with:
- BMI: %.1f
- Weight: %.0f kg
- Height: %.0f cm
- Age: %d years

Provide 5 meals with realistic portions and nutritional information:
1. Pre-workout meal (light, energizing)
2. Post-workout meal (protein-rich for recovery)
3. Breakfast (balanced, nutritious)
4. Lunch (main meal, substantial)
5. Dinner (lighter than lunch)

For each meal, provide:
- name: A descriptive meal name
- calories: Total calories (number)
- protein: Protein in grams (number)
- carbs: Carbohydrates in grams (number)
- fats: Fats in grams (number)
- description: Brief description of the meal and ingredients

Format your response as valid JSON with this exact structure:
{
    "pre_workout": {"name": "", "calories": 0, "protein": 0, "carbs": 0, "fats": 0, "description": ""},
    "post_workout": {"name": "", "calories": 0, "protein": 0, "carbs": 0, "fats": 0, "description": ""},
    "breakfast": {"name": "", "calories": 0, "protein": 0, "carbs": 0, "fats": 0, "description": ""},
    "lunch": {"name": "", "calories": 0, "protein": 0, "carbs": 0, "fats": 0, "description": ""},
    "dinner": {"name": "", "calories": 0, "protein": 0, "carbs": 0, "fats": 0, "description": ""}
}

Guidelines for %s:
%s

Make it realistic, healthy, and achievable. Use common foods available in India.
`, goal, sex, bmi, weight, height, age, goal, guidelines)
}
