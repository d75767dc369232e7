package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adityakumar003/TrainX/services"
)

type WorkoutController struct {
	workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{workouts: workouts}
}

// POST /workouts
func (ctrl *WorkoutController) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.AddWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := ctrl.workouts.AddWorkout(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout added successfully!", "workout": workout})
}

// GET /workouts
func (ctrl *WorkoutController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	workouts, err := ctrl.workouts.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// PUT /workouts/exercise
func (ctrl *WorkoutController) UpdateExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.workouts.UpdateExercise(c.Request.Context(), userID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exercise updated successfully!"})
}

type DeleteExerciseInput struct {
	WorkoutID    string `json:"workout_id"`
	ExerciseName string `json:"exercise_name"`
}

// DELETE /workouts/exercise
func (ctrl *WorkoutController) DeleteExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input DeleteExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.workouts.DeleteExercise(c.Request.Context(), userID, input.WorkoutID, input.ExerciseName); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exercise deleted successfully!"})
}
