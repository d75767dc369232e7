package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adityakumar003/TrainX/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GET /profile
func (ctrl *UserController) Profile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := ctrl.users.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Height/weight/age arrive as strings from the BMI form; parsing failures
// are invalid input, not a server error.
type BMIInput struct {
	Height string `json:"height"`
	Weight string `json:"weight"`
	Age    string `json:"age"`
	Sex    string `json:"sex"`
}

// POST /bmi
func (ctrl *UserController) CalculateBMI(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input BMIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	height, err1 := strconv.ParseFloat(input.Height, 64)
	weight, err2 := strconv.ParseFloat(input.Weight, 64)
	age, err3 := strconv.Atoi(input.Age)
	if err1 != nil || err2 != nil || err3 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	bmi, status, err := ctrl.users.RecordBMI(c.Request.Context(), userID, height, weight, age, input.Sex)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bmi": bmi, "status": status})
}
