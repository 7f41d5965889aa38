package domain

// Category groups catalog exercises for analytics breakdowns.
type Category string

const (
	CategorySportSpecific Category = "sport-specific"
	CategoryStrength      Category = "strength"
	CategoryCardio        Category = "cardio"
	CategoryFlexibility   Category = "flexibility"
	CategoryRecovery      Category = "recovery"
	CategoryWarmUp        Category = "warm-up"
	CategoryCoolDown      Category = "cool-down"
)

// TrackingType controls which numeric fields are relevant when logging a
// performance of the exercise.
type TrackingType string

const (
	TrackSetsReps TrackingType = "sets-reps"
	TrackTime     TrackingType = "time"
	TrackDistance TrackingType = "distance"
	TrackSetsTime TrackingType = "sets-time"
	TrackRepsOnly TrackingType = "reps-only"
)

// Exercise is a read-only catalog entry. The catalog is compiled into the
// binary; user data only references it by ID.
type Exercise struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     Category     `json:"category"`
	Subcategory  string       `json:"subcategory,omitempty"`
	Description  string       `json:"description"`
	MuscleGroups []string     `json:"muscleGroups,omitempty"`
	Equipment    []string     `json:"equipment,omitempty"`
	TrackingType TrackingType `json:"trackingType"`
	Variations   []string     `json:"variations,omitempty"`
}
