// Package analytics recomputes derived workout statistics on demand. The
// computation is a pure function over an in-memory workout list: no state
// is kept between calls, and the same inputs always produce the same
// output. For the data volumes involved (one entry per training day) a
// full recompute is cheaper than maintaining incremental aggregates.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"trackhq/trackhq-server/internal/domain"
)

const dateLayout = "2006-01-02"

// streakScanDays bounds the backward streak scan.
const streakScanDays = 30

// TimeRange selects how far back the aggregation looks.
type TimeRange string

const (
	Range7Days  TimeRange = "7d"
	Range30Days TimeRange = "30d"
	Range90Days TimeRange = "90d"
	RangeAll    TimeRange = "all"
)

// ParseTimeRange validates a range selector from the API.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case Range7Days, Range30Days, Range90Days, RangeAll:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("invalid time range %q", s)
}

func (r TimeRange) days() int {
	switch r {
	case Range7Days:
		return 7
	case Range30Days:
		return 30
	case Range90Days:
		return 90
	}
	return 0
}

// DayActivity is one calendar day's totals in the weekly histogram.
type DayActivity struct {
	Date      string `json:"date"`
	Workouts  int    `json:"workouts"`
	Exercises int    `json:"exercises"`
}

// ExerciseProgress summarizes one exercise, grouped by display name.
type ExerciseProgress struct {
	Name      string  `json:"name"`
	Sessions  int     `json:"sessions"`
	MaxWeight float64 `json:"maxWeight"`
	TotalReps int     `json:"totalReps"`
}

// Stats is the full derived view served to the analytics page.
type Stats struct {
	TotalWorkouts     int                `json:"totalWorkouts"`
	TotalExercises    int                `json:"totalExercises"`
	TotalVolume       float64            `json:"totalVolume"`
	CurrentStreak     int                `json:"currentStreak"`
	BestStreak        int                `json:"bestStreak"`
	CategoryBreakdown map[string]int     `json:"categoryBreakdown"`
	WeeklyActivity    []DayActivity      `json:"weeklyActivity"`
	ExerciseProgress  []ExerciseProgress `json:"exerciseProgress"`
}

// CatalogLookup resolves an exercise ID against the static catalog.
// Performances whose ID is unknown are excluded from category breakdowns.
type CatalogLookup func(exerciseID string) (domain.Exercise, bool)

// DisplayCategory formats a category the way breakdowns present it.
type DisplayCategory func(category domain.Category) string

// Calculate aggregates the given workouts over the time range, anchored at
// now. All per-day comparisons use UTC calendar dates.
func Calculate(
	workouts []domain.WorkoutEntry,
	timeRange TimeRange,
	now time.Time,
	lookup CatalogLookup,
	displayCategory DisplayCategory,
) Stats {
	workouts = filterByRange(workouts, timeRange, now)

	stats := Stats{
		TotalWorkouts:     len(workouts),
		CategoryBreakdown: map[string]int{},
	}

	for _, workout := range workouts {
		stats.TotalExercises += len(workout.SelectedExercises)
		for _, performance := range workout.SelectedExercises {
			stats.TotalVolume += volume(performance)

			if exercise, ok := lookup(performance.ExerciseID); ok {
				stats.CategoryBreakdown[displayCategory(exercise.Category)]++
			}
		}
	}

	stats.WeeklyActivity = weeklyActivity(workouts, now)
	stats.ExerciseProgress = exerciseProgress(workouts)
	stats.CurrentStreak, stats.BestStreak = streaks(workouts, now)

	return stats
}

// volume is sets × reps × weight with sets and reps defaulting to 1 and
// weight to 0, so unweighted work contributes nothing regardless of reps.
func volume(p domain.ExercisePerformance) float64 {
	sets := p.Sets
	if sets == 0 {
		sets = 1
	}
	reps := p.Reps
	if reps == 0 {
		reps = 1
	}
	return float64(sets) * float64(reps) * p.Weight
}

func filterByRange(workouts []domain.WorkoutEntry, timeRange TimeRange, now time.Time) []domain.WorkoutEntry {
	days := timeRange.days()
	if days == 0 {
		return workouts
	}
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	var filtered []domain.WorkoutEntry
	for _, workout := range workouts {
		date, err := time.Parse(dateLayout, workout.Date)
		if err != nil {
			continue
		}
		if !date.Before(cutoff) {
			filtered = append(filtered, workout)
		}
	}
	return filtered
}

// weeklyActivity always returns exactly 7 entries, one per calendar day
// from 6 days ago through today, oldest first.
func weeklyActivity(workouts []domain.WorkoutEntry, now time.Time) []DayActivity {
	activity := make([]DayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		dateStr := now.UTC().AddDate(0, 0, -i).Format(dateLayout)
		day := DayActivity{Date: dateStr}
		for _, workout := range workouts {
			if workout.Date == dateStr {
				day.Workouts++
				day.Exercises += len(workout.SelectedExercises)
			}
		}
		activity = append(activity, day)
	}
	return activity
}

// exerciseProgress groups performances by display name and returns the top
// five exercises by session count. The sort is stable over first-seen
// order, so ties keep the order exercises first appear in the log.
func exerciseProgress(workouts []domain.WorkoutEntry) []ExerciseProgress {
	byName := map[string]*ExerciseProgress{}
	var order []string
	for _, workout := range workouts {
		for _, performance := range workout.SelectedExercises {
			progress, ok := byName[performance.ExerciseName]
			if !ok {
				progress = &ExerciseProgress{Name: performance.ExerciseName}
				byName[performance.ExerciseName] = progress
				order = append(order, performance.ExerciseName)
			}
			progress.Sessions++
			if performance.Weight > progress.MaxWeight {
				progress.MaxWeight = performance.Weight
			}
			if performance.Reps != 0 {
				sets := performance.Sets
				if sets == 0 {
					sets = 1
				}
				progress.TotalReps += performance.Reps * sets
			}
		}
	}

	progress := make([]ExerciseProgress, 0, len(order))
	for _, name := range order {
		progress = append(progress, *byName[name])
	}
	sort.SliceStable(progress, func(i, j int) bool {
		return progress[i].Sessions > progress[j].Sessions
	})

	if len(progress) > 5 {
		progress = progress[:5]
	}
	return progress
}

// streaks scans backward from today for up to 30 days; the current streak
// counts consecutive days with at least one workout and stops at the first
// gap. A missing workout today means a current streak of zero.
//
// Best streak is max(currentStreak, min(totalWorkouts, 7)). This is an
// approximation of the true longest run and is intentionally kept as is.
func streaks(workouts []domain.WorkoutEntry, now time.Time) (current, best int) {
	if len(workouts) == 0 {
		return 0, 0
	}

	haveDate := make(map[string]bool, len(workouts))
	for _, workout := range workouts {
		haveDate[workout.Date] = true
	}

	for i := 0; i < streakScanDays; i++ {
		dateStr := now.UTC().AddDate(0, 0, -i).Format(dateLayout)
		if !haveDate[dateStr] {
			break
		}
		current++
	}

	best = min(len(workouts), 7)
	if current > best {
		best = current
	}
	return current, best
}
