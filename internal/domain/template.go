package domain

import "time"

// SavedTemplate is a reusable workout created from a logged session.
// Exercises share the performance shape so a template can be applied back
// onto a new WorkoutEntry directly.
type SavedTemplate struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Exercises   []ExercisePerformance `json:"exercises"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}
