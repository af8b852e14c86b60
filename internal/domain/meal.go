package domain

import "time"

// Meal represents a planned or logged meal
type Meal struct {
	ID           int        `json:"id"`
	UserID       int        `json:"userId"`
	Name         string     `json:"name"`
	Type         string     `json:"type"` // breakfast, lunch, dinner, snack
	Calories     int        `json:"calories"`
	Protein      int        `json:"protein,omitempty"` // in grams
	Carbs        int        `json:"carbs,omitempty"`   // in grams
	Fat          int        `json:"fat,omitempty"`     // in grams
	Description  string     `json:"description,omitempty"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// NewMeal carries the caller-supplied fields for meal creation
type NewMeal struct {
	UserID       int
	Name         string
	Type         string
	Calories     int
	Protein      int
	Carbs        int
	Fat          int
	Description  string
	ScheduledFor *time.Time
}

// MealPatch is a shallow-merge update. Nil fields are left untouched.
type MealPatch struct {
	Name         *string    `json:"name,omitempty"`
	Type         *string    `json:"type,omitempty"`
	Calories     *int       `json:"calories,omitempty"`
	Protein      *int       `json:"protein,omitempty"`
	Carbs        *int       `json:"carbs,omitempty"`
	Fat          *int       `json:"fat,omitempty"`
	Description  *string    `json:"description,omitempty"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
}

// Apply merges the patch into the meal
func (p MealPatch) Apply(m *Meal) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Calories != nil {
		m.Calories = *p.Calories
	}
	if p.Protein != nil {
		m.Protein = *p.Protein
	}
	if p.Carbs != nil {
		m.Carbs = *p.Carbs
	}
	if p.Fat != nil {
		m.Fat = *p.Fat
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.ScheduledFor != nil {
		m.ScheduledFor = p.ScheduledFor
	}
}
