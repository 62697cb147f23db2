// ABOUTME: Tests for UserProfile validation and enum helpers.
// ABOUTME: Covers goal/concern parsing and height/weight guards.
package models

import "testing"

func validProfile() *UserProfile {
	return &UserProfile{
		Name:   "Sam",
		Goal:   GoalMaintenance,
		Height: 175,
		Weight: 70,
	}
}

func TestValidateProfile(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Errorf("valid profile rejected: %v", err)
	}
}

func TestValidateProfileErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UserProfile)
	}{
		{"empty name", func(p *UserProfile) { p.Name = "" }},
		{"unknown goal", func(p *UserProfile) { p.Goal = "get-swole" }},
		{"unknown concern", func(p *UserProfile) { p.HealthConcerns = []HealthConcern{"gluten"} }},
		{"zero height", func(p *UserProfile) { p.Height = 0 }},
		{"negative height", func(p *UserProfile) { p.Height = -170 }},
		{"zero weight", func(p *UserProfile) { p.Weight = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)
			if err := p.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestIsValidGoal(t *testing.T) {
	for _, g := range AllGoals {
		if !IsValidGoal(string(g)) {
			t.Errorf("goal %s should be valid", g)
		}
	}
	if IsValidGoal("bulk") {
		t.Error("bulk should not be a valid goal")
	}
}

func TestAllConcernsHaveLabels(t *testing.T) {
	for _, c := range AllHealthConcerns {
		if _, ok := ConcernLabels[c]; !ok {
			t.Errorf("concern %s has no label", c)
		}
	}
}
