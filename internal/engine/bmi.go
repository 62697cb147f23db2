// ABOUTME: BMI computation and fixed-threshold category classification.
// ABOUTME: Non-positive height or weight is an error, never Inf or NaN.
package engine

import "fmt"

// BMICategory is a named BMI classification band.
type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal weight"
	Overweight   BMICategory = "Overweight"
	Obesity      BMICategory = "Obesity"
)

// BMI computes body mass index from height in centimeters and weight in
// kilograms. Thresholds are inclusive on the lower bound.
func BMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 {
		return 0, fmt.Errorf("height must be positive, got %.1f cm", heightCm)
	}
	if weightKg <= 0 {
		return 0, fmt.Errorf("weight must be positive, got %.1f kg", weightKg)
	}
	h := heightCm / 100
	return weightKg / (h * h), nil
}

// ClassifyBMI maps a BMI value to its category.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obesity
	}
}
