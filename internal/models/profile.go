// ABOUTME: UserProfile model with Goal and HealthConcern enums.
// ABOUTME: Height/weight validation guards BMI and goal-suggestion inputs.
package models

import "fmt"

// Goal represents the user's overall dietary goal.
type Goal string

const (
	GoalWeightLoss  Goal = "weight-loss"
	GoalWeightGain  Goal = "weight-gain"
	GoalMaintenance Goal = "maintenance"
	GoalMedical     Goal = "medical-needs"
)

// GoalLabels maps goals to their display labels.
var GoalLabels = map[Goal]string{
	GoalWeightLoss:  "Weight Loss",
	GoalWeightGain:  "Weight Gain",
	GoalMaintenance: "Weight Maintenance",
	GoalMedical:     "Address Specific Medical Needs",
}

// AllGoals returns all valid goals.
var AllGoals = []Goal{GoalWeightLoss, GoalWeightGain, GoalMaintenance, GoalMedical}

// IsValidGoal checks if a string is a valid goal.
func IsValidGoal(s string) bool {
	for _, g := range AllGoals {
		if string(g) == s {
			return true
		}
	}
	return false
}

// HealthConcern is a tag for a specific health condition the user tracks.
type HealthConcern string

const (
	ConcernDiabetes        HealthConcern = "diabetes"
	ConcernPreDiabetes     HealthConcern = "pre-diabetes"
	ConcernHighCholesterol HealthConcern = "high-cholesterol"
	ConcernHypertension    HealthConcern = "hypertension"
	ConcernAnemia          HealthConcern = "anemia"
	ConcernVitaminD        HealthConcern = "vitamin-d-deficiency"
	ConcernVitaminB12      HealthConcern = "vitamin-b12-deficiency"
	ConcernPCOS            HealthConcern = "pcos"
)

// ConcernLabels maps health concerns to their display labels.
var ConcernLabels = map[HealthConcern]string{
	ConcernDiabetes:        "Diabetes",
	ConcernPreDiabetes:     "Pre-diabetes",
	ConcernHighCholesterol: "High Cholesterol",
	ConcernHypertension:    "Hypertension",
	ConcernAnemia:          "Anemia (Iron-deficient)",
	ConcernVitaminD:        "Vitamin D Deficiency",
	ConcernVitaminB12:      "Vitamin B12 Deficiency",
	ConcernPCOS:            "PCOS / PCOD",
}

// AllHealthConcerns returns all valid health concern tags.
var AllHealthConcerns = []HealthConcern{
	ConcernDiabetes, ConcernPreDiabetes, ConcernHighCholesterol,
	ConcernHypertension, ConcernAnemia, ConcernVitaminD,
	ConcernVitaminB12, ConcernPCOS,
}

// IsValidHealthConcern checks if a string is a valid health concern tag.
func IsValidHealthConcern(s string) bool {
	for _, c := range AllHealthConcerns {
		if string(c) == s {
			return true
		}
	}
	return false
}

// UserProfile holds the user's identity and health baseline.
type UserProfile struct {
	Name           string          `json:"name" yaml:"name"`
	Goal           Goal            `json:"goal" yaml:"goal"`
	HealthConcerns []HealthConcern `json:"health_concerns,omitempty" yaml:"health_concerns,omitempty"`
	Details        string          `json:"details,omitempty" yaml:"details,omitempty"`
	Height         float64         `json:"height" yaml:"height"` // cm
	Weight         float64         `json:"weight" yaml:"weight"` // kg
}

// Validate checks the profile for well-formedness. Height and weight must be
// positive for BMI and calorie suggestions to be defined.
func (p *UserProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !IsValidGoal(string(p.Goal)) {
		return fmt.Errorf("unknown goal: %s", p.Goal)
	}
	for _, c := range p.HealthConcerns {
		if !IsValidHealthConcern(string(c)) {
			return fmt.Errorf("unknown health concern: %s", c)
		}
	}
	if p.Height <= 0 {
		return fmt.Errorf("height must be positive, got %.1f", p.Height)
	}
	if p.Weight <= 0 {
		return fmt.Errorf("weight must be positive, got %.1f", p.Weight)
	}
	return nil
}
