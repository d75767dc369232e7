package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adityakumar003/TrainX/services"
)

type MealPlanController struct {
	plans *services.MealPlanService
}

func NewMealPlanController(plans *services.MealPlanService) *MealPlanController {
	return &MealPlanController{plans: plans}
}

type MealPlanInput struct {
	Goal string `json:"goal"`
}

// POST /meal-plan
func (ctrl *MealPlanController) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	input := MealPlanInput{Goal: "bulking"}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, cached, err := ctrl.plans.PlanForGoal(c.Request.Context(), userID, input.Goal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan, "cached": cached})
}
