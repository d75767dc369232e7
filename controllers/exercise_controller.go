package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adityakumar003/TrainX/services"
)

// ExerciseController serves the catalog, the media proxy and logging a
// workout straight from a catalog entry.
type ExerciseController struct {
	catalog  *services.CatalogService
	media    *services.MediaService
	workouts *services.WorkoutService
}

func NewExerciseController(catalog *services.CatalogService, media *services.MediaService, workouts *services.WorkoutService) *ExerciseController {
	return &ExerciseController{catalog: catalog, media: media, workouts: workouts}
}

// GET /exercises
func (ctrl *ExerciseController) Sections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": ctrl.catalog.Sections()})
}

// GET /exercises/:category
func (ctrl *ExerciseController) ByCategory(c *gin.Context) {
	items, err := ctrl.catalog.FilterByCategory(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": c.Param("category"), "exercises": items})
}

// GET /exercise/:id
func (ctrl *ExerciseController) Detail(c *gin.Context) {
	exercise, err := ctrl.catalog.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

type LogFromCatalogInput struct {
	Reps     int      `json:"reps"`
	Sets     int      `json:"sets"`
	Weight   float64  `json:"weight"`
	Calories *float64 `json:"calories"`
}

// POST /exercise/:id logs a single-exercise workout for a catalog entry,
// carrying its media reference into the log.
func (ctrl *ExerciseController) LogFromCatalog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	exercise, err := ctrl.catalog.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var input LogFromCatalogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := services.AddWorkoutRequest{
		Name: exercise.Name,
		Exercises: []services.ExercisePayload{{
			ExerciseName: exercise.Name,
			Reps:         input.Reps,
			Sets:         input.Sets,
			Weight:       input.Weight,
			Calories:     input.Calories,
			ImageURL:     exercise.GifURL,
		}},
	}
	workout, err := ctrl.workouts.AddWorkout(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout added to your history!", "workout": workout})
}

// GET /exercise/:id/image proxies the exercise GIF with the origin's
// content type.
func (ctrl *ExerciseController) Image(c *gin.Context) {
	exercise, err := ctrl.catalog.GetByID(c.Param("id"))
	if err != nil || exercise.GifURL == "" {
		c.Status(http.StatusNotFound)
		return
	}

	data, contentType, err := ctrl.media.Fetch(c.Request.Context(), exercise.GifURL)
	if err != nil {
		c.Status(http.StatusBadGateway)
		return
	}

	c.Data(http.StatusOK, contentType, data)
}
