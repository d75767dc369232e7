package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adityakumar003/TrainX/controllers"
	"github.com/adityakumar003/TrainX/middlewares"
)

// Controllers groups the handler sets the router wires up.
type Controllers struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Workout  *controllers.WorkoutController
	Exercise *controllers.ExerciseController
	MealPlan *controllers.MealPlanController
}

func SetupRouter(ctrl Controllers, jwtSecret []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.Metrics())
	r.Use(middlewares.CORS())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", ctrl.Auth.Signup)
		auth.POST("/login", ctrl.Auth.Login)
	}

	// Catalog browsing and the media proxy are public.
	r.GET("/exercises", ctrl.Exercise.Sections)
	r.GET("/exercises/:category", ctrl.Exercise.ByCategory)
	r.GET("/exercise/:id/image", ctrl.Exercise.Image)

	// Everything below needs a session.
	user := r.Group("/")
	user.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		user.GET("/profile", ctrl.User.Profile)
		user.POST("/bmi", ctrl.User.CalculateBMI)

		user.GET("/workouts", ctrl.Workout.List)
		user.POST("/workouts", ctrl.Workout.Add)
		user.PUT("/workouts/exercise", ctrl.Workout.UpdateExercise)
		user.DELETE("/workouts/exercise", ctrl.Workout.DeleteExercise)

		user.GET("/exercise/:id", ctrl.Exercise.Detail)
		user.POST("/exercise/:id", ctrl.Exercise.LogFromCatalog)

		user.POST("/meal-plan", ctrl.MealPlan.Generate)
	}

	return r
}
