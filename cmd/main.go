package main

import (
	"context"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/adityakumar003/TrainX/config"
	"github.com/adityakumar003/TrainX/controllers"
	"github.com/adityakumar003/TrainX/routes"
	"github.com/adityakumar003/TrainX/services"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	client, err := config.ConnectMongo(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("database unavailable: %v", err)
	}
	store := services.NewMongoUserStore(client.Database(cfg.MongoDatabase))

	// The dataset load is a one-time blocking step; a missing file means an
	// empty catalog, not a dead process.
	catalog := services.LoadCatalog(cfg.DatasetPath)

	var generator services.Generator
	if cfg.GeminiAPIKey != "" {
		generator = services.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		log.Warn("GEMINI_API_KEY not set, meal plan generation disabled")
	}

	secret := []byte(cfg.JWTSecret)
	workouts := services.NewWorkoutService(store)

	ctrl := routes.Controllers{
		Auth:     controllers.NewAuthController(services.NewAuthService(store, secret)),
		User:     controllers.NewUserController(services.NewUserService(store)),
		Workout:  controllers.NewWorkoutController(workouts),
		Exercise: controllers.NewExerciseController(catalog, services.NewMediaService(), workouts),
		MealPlan: controllers.NewMealPlanController(services.NewMealPlanService(store, generator)),
	}

	r := routes.SetupRouter(ctrl, secret)
	log.WithField("addr", cfg.HTTPAddress).Info("starting server")
	if err := r.Run(cfg.HTTPAddress); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
