package services

import (
	"context"
	"fmt"

	"github.com/adityakumar003/TrainX/models"
	"github.com/adityakumar003/TrainX/utils"
)

// UserService exposes profile reads and the BMI calculation, which persists
// the anthropometrics onto the user document.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

// RecordBMI computes the index and classification and stores them together
// with height, weight, age and sex.
func (s *UserService) RecordBMI(ctx context.Context, userID string, heightCm, weightKg float64, age int, sex string) (float64, string, error) {
	bmi, err := utils.CalculateBMI(heightCm, weightKg)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	status := utils.BMIStatus(bmi)

	err = s.users.SetFields(ctx, userID, map[string]any{
		"bmi":        bmi,
		"bmi_status": status,
		"height":     heightCm,
		"weight":     weightKg,
		"age":        age,
		"sex":        sex,
	})
	if err != nil {
		return 0, "", err
	}
	return bmi, status, nil
}
