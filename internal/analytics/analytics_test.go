package analytics

import (
	"testing"
	"time"

	"trackhq/trackhq-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow keeps every date computation in the tests deterministic.
var fixedNow = time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

func testLookup(exerciseID string) (domain.Exercise, bool) {
	known := map[string]domain.Category{
		"squat":   domain.CategoryStrength,
		"running": domain.CategoryCardio,
	}
	category, ok := known[exerciseID]
	if !ok {
		return domain.Exercise{}, false
	}
	return domain.Exercise{ID: exerciseID, Category: category}, true
}

func testDisplayCategory(category domain.Category) string {
	return string(category)
}

func dayOffset(days int) string {
	return fixedNow.AddDate(0, 0, days).Format("2006-01-02")
}

func entry(date string, performances ...domain.ExercisePerformance) domain.WorkoutEntry {
	return domain.WorkoutEntry{
		ID:                "w-" + date,
		Date:              date,
		SelectedExercises: performances,
	}
}

func calculate(workouts []domain.WorkoutEntry, timeRange TimeRange) Stats {
	return Calculate(workouts, timeRange, fixedNow, testLookup, testDisplayCategory)
}

func TestParseTimeRange(t *testing.T) {
	for _, valid := range []string{"7d", "30d", "90d", "all"} {
		parsed, err := ParseTimeRange(valid)
		require.NoError(t, err)
		assert.Equal(t, TimeRange(valid), parsed)
	}

	_, err := ParseTimeRange("14d")
	assert.Error(t, err)
}

func TestCalculate_Empty(t *testing.T) {
	stats := calculate(nil, RangeAll)

	assert.Zero(t, stats.TotalWorkouts)
	assert.Zero(t, stats.TotalExercises)
	assert.Zero(t, stats.TotalVolume)
	assert.Zero(t, stats.CurrentStreak)
	assert.Zero(t, stats.BestStreak)
	assert.Empty(t, stats.CategoryBreakdown)
	assert.Empty(t, stats.ExerciseProgress)
	// The weekly histogram always has an entry per day.
	assert.Len(t, stats.WeeklyActivity, 7)
}

func TestCalculate_Volume(t *testing.T) {
	workouts := []domain.WorkoutEntry{
		entry(dayOffset(0),
			// 3 x 5 x 80 = 1200
			domain.ExercisePerformance{ExerciseID: "squat", ExerciseName: "Squat", Sets: 3, Reps: 5, Weight: 80},
			// No weight recorded contributes nothing.
			domain.ExercisePerformance{ExerciseID: "push-up", ExerciseName: "Push-up", Sets: 3, Reps: 20},
			// Sets and reps default to 1, so a bare weight counts once.
			domain.ExercisePerformance{ExerciseID: "deadlift", ExerciseName: "Deadlift", Weight: 100},
		),
	}

	stats := calculate(workouts, RangeAll)
	assert.Equal(t, 1, stats.TotalWorkouts)
	assert.Equal(t, 3, stats.TotalExercises)
	assert.InDelta(t, 1300, stats.TotalVolume, 0.001)
}

func TestCalculate_CategoryBreakdownSkipsUnknownExercises(t *testing.T) {
	workouts := []domain.WorkoutEntry{
		entry(dayOffset(0),
			domain.ExercisePerformance{ExerciseID: "squat", ExerciseName: "Squat"},
			domain.ExercisePerformance{ExerciseID: "squat", ExerciseName: "Squat"},
			domain.ExercisePerformance{ExerciseID: "running", ExerciseName: "Running"},
			domain.ExercisePerformance{ExerciseID: "made-up", ExerciseName: "Made up"},
		),
	}

	stats := calculate(workouts, RangeAll)
	assert.Equal(t, map[string]int{
		string(domain.CategoryStrength): 2,
		string(domain.CategoryCardio):   1,
	}, stats.CategoryBreakdown)
}

func TestCalculate_FilterByRange(t *testing.T) {
	workouts := []domain.WorkoutEntry{
		entry(dayOffset(0)),
		entry(dayOffset(-5)),
		entry(dayOffset(-20)),
		entry(dayOffset(-80)),
		{ID: "bad-date", Date: "yesterday-ish"},
	}

	assert.Equal(t, 2, calculate(workouts, Range7Days).TotalWorkouts)
	assert.Equal(t, 3, calculate(workouts, Range30Days).TotalWorkouts)
	assert.Equal(t, 4, calculate(workouts, Range90Days).TotalWorkouts)
	// "all" keeps everything, unparsable dates included.
	assert.Equal(t, 5, calculate(workouts, RangeAll).TotalWorkouts)
}

func TestCalculate_WeeklyActivity(t *testing.T) {
	workouts := []domain.WorkoutEntry{
		entry(dayOffset(0), domain.ExercisePerformance{ExerciseID: "squat", ExerciseName: "Squat"}),
		entry(dayOffset(-2)),
		entry(dayOffset(-9)), // outside the window
	}

	stats := calculate(workouts, RangeAll)
	require.Len(t, stats.WeeklyActivity, 7)

	// Oldest first, today last.
	assert.Equal(t, dayOffset(-6), stats.WeeklyActivity[0].Date)
	assert.Equal(t, dayOffset(0), stats.WeeklyActivity[6].Date)

	assert.Equal(t, 1, stats.WeeklyActivity[6].Workouts)
	assert.Equal(t, 1, stats.WeeklyActivity[6].Exercises)
	assert.Equal(t, 1, stats.WeeklyActivity[4].Workouts)
	assert.Zero(t, stats.WeeklyActivity[5].Workouts)
}

func TestCalculate_CurrentStreak(t *testing.T) {
	t.Run("three consecutive days ending today", func(t *testing.T) {
		workouts := []domain.WorkoutEntry{
			entry(dayOffset(0)),
			entry(dayOffset(-1)),
			entry(dayOffset(-2)),
			entry(dayOffset(-4)), // gap at -3 stops the scan
		}
		stats := calculate(workouts, RangeAll)
		assert.Equal(t, 3, stats.CurrentStreak)
	})

	t.Run("gap right after today", func(t *testing.T) {
		workouts := []domain.WorkoutEntry{
			entry(dayOffset(0)),
			entry(dayOffset(-3)),
		}
		stats := calculate(workouts, RangeAll)
		assert.Equal(t, 1, stats.CurrentStreak)
	})

	t.Run("no workout today means zero", func(t *testing.T) {
		workouts := []domain.WorkoutEntry{
			entry(dayOffset(-1)),
			entry(dayOffset(-2)),
		}
		stats := calculate(workouts, RangeAll)
		assert.Zero(t, stats.CurrentStreak)
	})

	t.Run("duplicate dates count once", func(t *testing.T) {
		workouts := []domain.WorkoutEntry{
			entry(dayOffset(0)),
			{ID: "second-today", Date: dayOffset(0)},
		}
		stats := calculate(workouts, RangeAll)
		assert.Equal(t, 1, stats.CurrentStreak)
	})
}

func TestCalculate_BestStreak(t *testing.T) {
	// Best streak is the larger of the current streak and the workout count
	// capped at seven.
	var workouts []domain.WorkoutEntry
	for i := 0; i < 10; i++ {
		workouts = append(workouts, entry(dayOffset(-2*i))) // every other day
	}
	stats := calculate(workouts, RangeAll)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 7, stats.BestStreak)

	// A long current streak wins over the cap.
	workouts = nil
	for i := 0; i < 9; i++ {
		workouts = append(workouts, entry(dayOffset(-i)))
	}
	stats = calculate(workouts, RangeAll)
	assert.Equal(t, 9, stats.CurrentStreak)
	assert.Equal(t, 9, stats.BestStreak)
}

func TestCalculate_ExerciseProgress(t *testing.T) {
	perf := func(name string, reps, sets int, weight float64) domain.ExercisePerformance {
		return domain.ExercisePerformance{ExerciseID: "x", ExerciseName: name, Reps: reps, Sets: sets, Weight: weight}
	}

	workouts := []domain.WorkoutEntry{
		entry(dayOffset(0), perf("Squat", 5, 3, 80), perf("Bench Press", 8, 3, 60)),
		entry(dayOffset(-1), perf("Squat", 5, 3, 85)),
		entry(dayOffset(-2), perf("Squat", 0, 0, 0)),
	}

	stats := calculate(workouts, RangeAll)
	require.Len(t, stats.ExerciseProgress, 2)

	squat := stats.ExerciseProgress[0]
	assert.Equal(t, "Squat", squat.Name)
	assert.Equal(t, 3, squat.Sessions)
	assert.InDelta(t, 85, squat.MaxWeight, 0.001)
	// Zero reps contribute nothing, even with the sets default.
	assert.Equal(t, 30, squat.TotalReps)

	bench := stats.ExerciseProgress[1]
	assert.Equal(t, "Bench Press", bench.Name)
	assert.Equal(t, 24, bench.TotalReps)
}

func TestCalculate_ExerciseProgressTopFive(t *testing.T) {
	names := []string{"Squat", "Burpees", "Plank", "Rowing", "Deadlift", "Cycling", "Push-up"}
	var performances []domain.ExercisePerformance
	for _, name := range names {
		performances = append(performances, domain.ExercisePerformance{ExerciseID: "x", ExerciseName: name})
	}
	workouts := []domain.WorkoutEntry{entry(dayOffset(0), performances...)}

	stats := calculate(workouts, RangeAll)
	require.Len(t, stats.ExerciseProgress, 5)
	// All tied on one session, so first-seen order decides.
	for i, expected := range names[:5] {
		assert.Equal(t, expected, stats.ExerciseProgress[i].Name)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	workouts := []domain.WorkoutEntry{
		entry(dayOffset(0),
			domain.ExercisePerformance{ExerciseID: "squat", ExerciseName: "Squat", Sets: 3, Reps: 5, Weight: 80},
			domain.ExercisePerformance{ExerciseID: "running", ExerciseName: "Running", Time: 30},
		),
		entry(dayOffset(-1),
			domain.ExercisePerformance{ExerciseID: "squat", ExerciseName: "Squat", Sets: 3, Reps: 5, Weight: 82.5},
		),
	}

	first := calculate(workouts, Range30Days)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, calculate(workouts, Range30Days))
	}
}
