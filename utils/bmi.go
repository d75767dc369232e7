package utils

import (
	"errors"
	"math"
)

// CalculateBMI expects height in centimeters and weight in kilograms and
// returns the index rounded to one decimal place.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10, nil
}

// BMIStatus classifies a rounded BMI value.
func BMIStatus(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi <= 24.9:
		return "Healthy"
	case bmi <= 29.9:
		return "Overweight"
	default:
		return "Obese"
	}
}
