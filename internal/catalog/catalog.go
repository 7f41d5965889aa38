// Package catalog holds the static, read-only exercise library. User data
// references entries by ID; nothing here is ever written at runtime.
package catalog

import (
	"strings"

	"trackhq/trackhq-server/internal/domain"
)

// CategoryOrder is the display order, athletics first.
var CategoryOrder = []domain.Category{
	domain.CategorySportSpecific,
	domain.CategoryStrength,
	domain.CategoryCardio,
	domain.CategoryFlexibility,
	domain.CategoryWarmUp,
	domain.CategoryCoolDown,
	domain.CategoryRecovery,
}

// DisplayCategory formats a catalog category for user-facing output,
// e.g. "sport-specific" -> "Sport-Specific", "strength" -> "Strength".
func DisplayCategory(category domain.Category) string {
	if category == domain.CategorySportSpecific {
		return "Sport-Specific"
	}
	s := string(category)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Exercises returns the full catalog, in display order.
func Exercises() []domain.Exercise {
	return exercises
}

// ByID looks up a catalog entry. The second return value is false for
// unknown IDs, which analytics silently skips.
func ByID(id string) (domain.Exercise, bool) {
	ex, ok := byID[id]
	return ex, ok
}

// ByCategory returns all entries in the given category.
func ByCategory(category domain.Category) []domain.Exercise {
	var out []domain.Exercise
	for _, ex := range exercises {
		if ex.Category == category {
			out = append(out, ex)
		}
	}
	return out
}

var byID = func() map[string]domain.Exercise {
	m := make(map[string]domain.Exercise, len(exercises))
	for _, ex := range exercises {
		m[ex.ID] = ex
	}
	return m
}()

var exercises = []domain.Exercise{
	// Track events
	{
		ID:           "sprint-100m",
		Name:         "100m Sprint",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "sprinting",
		Description:  "Maximum speed sprint over 100 meters - premier track event",
		TrackingType: domain.TrackTime,
		Variations:   []string{"Block start", "Standing start", "Flying start", "Indoor track", "Outdoor track"},
	},
	{
		ID:           "sprint-200m",
		Name:         "200m Sprint",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "sprinting",
		Description:  "Speed endurance sprint around the curve",
		TrackingType: domain.TrackTime,
		Variations:   []string{"Indoor track", "Outdoor track", "Staggered start"},
	},
	{
		ID:           "sprint-400m",
		Name:         "400m Sprint",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "sprinting",
		Description:  "One lap sprint requiring speed and endurance",
		TrackingType: domain.TrackTime,
	},
	{
		ID:           "sprint-60m",
		Name:         "60m Sprint (Indoor)",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "sprinting",
		Description:  "Indoor sprint distance emphasizing acceleration",
		TrackingType: domain.TrackTime,
	},
	{
		ID:           "distance-800m",
		Name:         "800m Run",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "middle-distance",
		Description:  "Two lap middle distance race",
		TrackingType: domain.TrackTime,
	},
	{
		ID:           "distance-1500m",
		Name:         "1500m Run",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "middle-distance",
		Description:  "Metric mile requiring tactical racing",
		TrackingType: domain.TrackTime,
	},
	{
		ID:           "distance-5000m",
		Name:         "5000m Run",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "long-distance",
		Description:  "Long distance track race",
		TrackingType: domain.TrackTime,
	},
	{
		ID:           "hurdles-110m",
		Name:         "110m Hurdles (Men)",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "hurdling",
		Description:  "Sprint hurdles over ten barriers",
		TrackingType: domain.TrackTime,
	},
	{
		ID:           "hurdles-400m",
		Name:         "400m Hurdles",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "hurdling",
		Description:  "One lap hurdle race demanding rhythm and endurance",
		TrackingType: domain.TrackTime,
	},

	// Field events
	{
		ID:           "long-jump",
		Name:         "Long Jump",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "long-jump",
		Description:  "Horizontal jump for maximum distance",
		TrackingType: domain.TrackDistance,
	},
	{
		ID:           "triple-jump",
		Name:         "Triple Jump",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "triple-jump",
		Description:  "Hop, step and jump for distance",
		TrackingType: domain.TrackDistance,
	},
	{
		ID:           "high-jump",
		Name:         "High Jump",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "high-jump",
		Description:  "Vertical jump over a raised bar",
		TrackingType: domain.TrackDistance,
	},
	{
		ID:           "pole-vault",
		Name:         "Pole Vault",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "pole-vault",
		Description:  "Vault over a bar using a flexible pole",
		TrackingType: domain.TrackDistance,
	},
	{
		ID:           "shot-put",
		Name:         "Shot Put",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "shot-put",
		Description:  "Putting a heavy metal ball for distance",
		TrackingType: domain.TrackDistance,
	},
	{
		ID:           "discus",
		Name:         "Discus Throw",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "discus",
		Description:  "Rotational throw of the discus for distance",
		TrackingType: domain.TrackDistance,
	},
	{
		ID:           "javelin",
		Name:         "Javelin Throw",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "javelin",
		Description:  "Running throw of the javelin for distance",
		TrackingType: domain.TrackDistance,
	},
	{
		ID:           "hammer",
		Name:         "Hammer Throw",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "hammer",
		Description:  "Rotational throw of the hammer for distance",
		TrackingType: domain.TrackDistance,
	},

	// Event training
	{
		ID:           "sprint-drills",
		Name:         "Sprint Technique Drills",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "sprinting",
		Description:  "A-skips, B-skips, high knees and other form drills",
		TrackingType: domain.TrackSetsReps,
	},
	{
		ID:           "hurdle-training",
		Name:         "Hurdle Training",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "hurdling",
		Description:  "Hurdle mobility and rhythm work",
		TrackingType: domain.TrackSetsReps,
	},
	{
		ID:           "javelin-training",
		Name:         "Javelin Training",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "javelin",
		Description:  "Approach runs and throwing technique work",
		TrackingType: domain.TrackSetsReps,
	},
	{
		ID:           "plyometrics",
		Name:         "Plyometric Training",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "general-athletics",
		Description:  "Explosive jumping and bounding exercises",
		TrackingType: domain.TrackSetsReps,
		Equipment:    []string{"Boxes", "Hurdles"},
	},
	{
		ID:           "agility-drills",
		Name:         "Agility Training",
		Category:     domain.CategorySportSpecific,
		Subcategory:  "general-athletics",
		Description:  "Change of direction and footwork drills",
		TrackingType: domain.TrackSetsTime,
		Equipment:    []string{"Cones", "Agility ladder"},
	},
	{
		ID:           "sprint-intervals",
		Name:         "Sprint Intervals",
		Category:     domain.CategorySportSpecific,
		Description:  "Repeated sprints with timed recovery",
		TrackingType: domain.TrackSetsTime,
	},

	// Strength
	{
		ID:           "squat",
		Name:         "Squat",
		Category:     domain.CategoryStrength,
		Description:  "Fundamental lower body strength movement",
		MuscleGroups: []string{"Quadriceps", "Glutes", "Hamstrings", "Core"},
		Equipment:    []string{"Barbell"},
		TrackingType: domain.TrackSetsReps,
	},
	{
		ID:           "deadlift",
		Name:         "Deadlift",
		Category:     domain.CategoryStrength,
		Description:  "Full body pulling movement from the floor",
		MuscleGroups: []string{"Hamstrings", "Glutes", "Back", "Core"},
		Equipment:    []string{"Barbell"},
		TrackingType: domain.TrackSetsReps,
	},
	{
		ID:           "bench-press",
		Name:         "Bench Press",
		Category:     domain.CategoryStrength,
		Description:  "Upper body pushing movement for chest, shoulders, and triceps",
		MuscleGroups: []string{"Chest", "Shoulders", "Triceps"},
		Equipment:    []string{"Barbell", "Dumbbells"},
		TrackingType: domain.TrackSetsReps,
	},
	{
		ID:           "pull-up",
		Name:         "Pull-up",
		Category:     domain.CategoryStrength,
		Description:  "Upper body pulling movement for back and biceps",
		MuscleGroups: []string{"Lats", "Rhomboids", "Biceps", "Core"},
		TrackingType: domain.TrackSetsReps,
	},
	{
		ID:           "push-up",
		Name:         "Push-up",
		Category:     domain.CategoryStrength,
		Description:  "Bodyweight pushing movement",
		MuscleGroups: []string{"Chest", "Shoulders", "Triceps", "Core"},
		TrackingType: domain.TrackSetsReps,
	},
	{
		ID:           "plank",
		Name:         "Plank",
		Category:     domain.CategoryStrength,
		Description:  "Isometric core hold",
		MuscleGroups: []string{"Core"},
		TrackingType: domain.TrackSetsTime,
	},

	// Cardio
	{
		ID:           "running",
		Name:         "Running",
		Category:     domain.CategoryCardio,
		Description:  "Steady state running for aerobic conditioning",
		TrackingType: domain.TrackDistance,
	},
	{
		ID:           "cycling",
		Name:         "Cycling",
		Category:     domain.CategoryCardio,
		Description:  "Low impact aerobic conditioning",
		Equipment:    []string{"Bike"},
		TrackingType: domain.TrackDistance,
	},
	{
		ID:           "rowing",
		Name:         "Rowing",
		Category:     domain.CategoryCardio,
		Description:  "Full body aerobic conditioning",
		Equipment:    []string{"Rowing machine"},
		TrackingType: domain.TrackDistance,
	},
	{
		ID:           "burpees",
		Name:         "Burpees",
		Category:     domain.CategoryCardio,
		Description:  "Full body conditioning movement",
		TrackingType: domain.TrackSetsReps,
	},
	{
		ID:           "jump-rope",
		Name:         "Jump Rope",
		Category:     domain.CategoryCardio,
		Description:  "Footwork and conditioning",
		Equipment:    []string{"Jump rope"},
		TrackingType: domain.TrackTime,
	},

	// Flexibility
	{
		ID:           "yoga-flow",
		Name:         "Yoga Flow",
		Category:     domain.CategoryFlexibility,
		Description:  "Flowing sequence of mobility poses",
		TrackingType: domain.TrackTime,
	},
	{
		ID:           "static-stretching",
		Name:         "Static Stretching",
		Category:     domain.CategoryFlexibility,
		Description:  "Held stretches for major muscle groups",
		TrackingType: domain.TrackTime,
	},

	// Warm-up / cool-down
	{
		ID:           "dynamic-warm-up",
		Name:         "Dynamic Warm-up",
		Category:     domain.CategoryWarmUp,
		Description:  "Movement preparation before training",
		TrackingType: domain.TrackTime,
	},
	{
		ID:           "activation-exercises",
		Name:         "Activation Exercises",
		Category:     domain.CategoryWarmUp,
		Description:  "Targeted muscle activation before hard efforts",
		TrackingType: domain.TrackSetsReps,
	},
	{
		ID:           "recovery-walk",
		Name:         "Recovery Movement",
		Category:     domain.CategoryCoolDown,
		Description:  "Easy movement to wind down a session",
		TrackingType: domain.TrackTime,
	},

	// Recovery
	{
		ID:           "foam-rolling",
		Name:         "Foam Rolling",
		Category:     domain.CategoryRecovery,
		Description:  "Self massage for muscle recovery",
		Equipment:    []string{"Foam roller"},
		TrackingType: domain.TrackTime,
	},
	{
		ID:           "meditation",
		Name:         "Meditation",
		Category:     domain.CategoryRecovery,
		Description:  "Mindfulness practice for mental recovery",
		TrackingType: domain.TrackTime,
	},
	{
		ID:           "breathing-exercises",
		Name:         "Breathing Exercises",
		Category:     domain.CategoryRecovery,
		Description:  "Controlled breathing for relaxation",
		TrackingType: domain.TrackTime,
	},
}
