package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
		status   string
	}{
		{name: "healthy", heightCm: 175, weightKg: 70, want: 22.9, status: "Healthy"},
		{name: "underweight", heightCm: 170, weightKg: 45, want: 15.6, status: "Underweight"},
		{name: "obese", heightCm: 170, weightKg: 95, want: 32.9, status: "Obese"},
		{name: "overweight", heightCm: 170, weightKg: 80, want: 27.7, status: "Overweight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bmi, err := CalculateBMI(tt.heightCm, tt.weightKg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, bmi)
			assert.Equal(t, tt.status, BMIStatus(bmi))
		})
	}
}

func TestCalculateBMIRejectsNonPositiveInput(t *testing.T) {
	for _, pair := range [][2]float64{{0, 70}, {175, 0}, {-170, 70}, {175, -5}} {
		_, err := CalculateBMI(pair[0], pair[1])
		assert.Error(t, err)
	}
}

func TestBMIStatusBoundaries(t *testing.T) {
	assert.Equal(t, "Underweight", BMIStatus(18.4))
	assert.Equal(t, "Healthy", BMIStatus(18.5))
	assert.Equal(t, "Healthy", BMIStatus(24.9))
	assert.Equal(t, "Overweight", BMIStatus(25.0))
	assert.Equal(t, "Overweight", BMIStatus(29.9))
	assert.Equal(t, "Obese", BMIStatus(30.0))
}
