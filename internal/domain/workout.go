package domain

// ExercisePerformance records one exercise performed during a session.
// ExerciseName is a denormalized copy of the catalog name so entries stay
// readable even if the catalog changes. Numeric fields are optional; which
// ones matter depends on the exercise's tracking type. A zero value means
// "not recorded".
type ExercisePerformance struct {
	ExerciseID   string  `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName"`
	Variation    string  `json:"variation,omitempty"`
	Sets         int     `json:"sets,omitempty"`
	Reps         int     `json:"reps,omitempty"`
	Weight       float64 `json:"weight,omitempty"`
	Time         float64 `json:"time,omitempty"`
	Distance     float64 `json:"distance,omitempty"`
	Notes        string  `json:"notes"`
}

// WorkoutEntry is a single day's training log. Date is a calendar date in
// YYYY-MM-DD form and acts as the natural key for "today's workout" lookups,
// but saves are matched by ID, so two entries may share a date.
type WorkoutEntry struct {
	ID                string                `json:"id"`
	Date              string                `json:"date"`
	Exercises         string                `json:"exercises"`
	Positives         string                `json:"positives"`
	Improvements      string                `json:"improvements"`
	Goals             string                `json:"goals"`
	SelectedExercises []ExercisePerformance `json:"selectedExercises"`
}
