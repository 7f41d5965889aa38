package service

import (
	"context"
	"testing"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/kv"
	"trackhq/trackhq-server/internal/repository/kvrepo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordFixture(t *testing.T) RecordService {
	t.Helper()
	store := kv.NewMemoryStore()
	profiles := kvrepo.NewProfileRepository(store)
	records := kvrepo.NewRecordRepository(store, profiles)

	_, err := profiles.Create(context.Background(), "Mila", "")
	require.NoError(t, err)

	return NewRecordService(records)
}

func TestRecordService_SaveWorkout(t *testing.T) {
	ctx := context.Background()
	svc := newRecordFixture(t)

	stored, err := svc.SaveWorkout(ctx, domain.WorkoutEntry{Date: "2026-08-28"})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.NotNil(t, stored.SelectedExercises)

	// An entry arriving with an ID keeps it.
	stored, err = svc.SaveWorkout(ctx, domain.WorkoutEntry{ID: "w1", Date: "2026-08-28"})
	require.NoError(t, err)
	assert.Equal(t, "w1", stored.ID)
}

func TestRecordService_SaveWorkoutRejectsBadDate(t *testing.T) {
	ctx := context.Background()
	svc := newRecordFixture(t)

	for _, date := range []string{"", "28-08-2026", "2026/08/28", "today"} {
		_, err := svc.SaveWorkout(ctx, domain.WorkoutEntry{Date: date})
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", date)
	}
}

func TestRecordService_GetWorkoutByDate(t *testing.T) {
	ctx := context.Background()
	svc := newRecordFixture(t)

	_, err := svc.SaveWorkout(ctx, domain.WorkoutEntry{ID: "w1", Date: "2026-08-28"})
	require.NoError(t, err)

	workout, err := svc.GetWorkoutByDate(ctx, "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, "w1", workout.ID)

	_, err = svc.GetWorkoutByDate(ctx, "2026-08-29")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
	_, err = svc.GetWorkoutByDate(ctx, "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestRecordService_SaveTemplate(t *testing.T) {
	ctx := context.Background()
	svc := newRecordFixture(t)

	_, err := svc.SaveTemplate(ctx, domain.SavedTemplate{})
	assert.ErrorIs(t, err, ErrTemplateNameEmpty)

	stored, err := svc.SaveTemplate(ctx, domain.SavedTemplate{Name: "Leg day"})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())

	// Re-saving keeps CreatedAt and bumps UpdatedAt.
	createdAt := stored.CreatedAt
	stored.Description = "squats and lunges"
	again, err := svc.SaveTemplate(ctx, *stored)
	require.NoError(t, err)
	assert.Equal(t, createdAt, again.CreatedAt)
	assert.Equal(t, stored.ID, again.ID)

	got, err := svc.GetTemplateByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "squats and lunges", got.Description)
}
