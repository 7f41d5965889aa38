package kvrepo

import (
	"context"
	"encoding/json"
	"errors"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/kv"
	"trackhq/trackhq-server/internal/repository"

	"github.com/sirupsen/logrus"
)

// kvRecordRepository implements repository.RecordRepository. The namespace
// is resolved against the profile repository on every call rather than
// cached, so switching the active profile takes effect immediately.
type kvRecordRepository struct {
	store    kv.Store
	profiles repository.ProfileRepository
}

// NewRecordRepository creates a record repository over the given store,
// scoped per call to whichever profile is active.
func NewRecordRepository(store kv.Store, profiles repository.ProfileRepository) repository.RecordRepository {
	return &kvRecordRepository{store: store, profiles: profiles}
}

func (r *kvRecordRepository) namespace(ctx context.Context) string {
	active, err := r.profiles.GetActive(ctx)
	if err != nil {
		return legacyNamespace
	}
	return active.ID
}

// readList unmarshals a JSON array value into dest, leaving dest untouched
// (empty) when the key is absent or the stored JSON is corrupt.
func (r *kvRecordRepository) readList(ctx context.Context, key string, dest any) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			logrus.Warnf("record repo: reading %s: %v", key, err)
		}
		return
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logrus.Warnf("record repo: corrupt data at %s, treating as empty: %v", key, err)
	}
}

func (r *kvRecordRepository) writeList(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key, data)
}

// --- Workouts ---

func (r *kvRecordRepository) workoutsKey(ctx context.Context) string {
	return dataKey(r.namespace(ctx), workoutsSuffix)
}

func (r *kvRecordRepository) ListWorkouts(ctx context.Context) ([]domain.WorkoutEntry, error) {
	var workouts []domain.WorkoutEntry
	r.readList(ctx, r.workoutsKey(ctx), &workouts)
	return workouts, nil
}

func (r *kvRecordRepository) SaveWorkout(ctx context.Context, entry domain.WorkoutEntry) error {
	key := r.workoutsKey(ctx)
	var workouts []domain.WorkoutEntry
	r.readList(ctx, key, &workouts)

	replaced := false
	for i := range workouts {
		if workouts[i].ID == entry.ID {
			workouts[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		workouts = append([]domain.WorkoutEntry{entry}, workouts...)
	}
	return r.writeList(ctx, key, workouts)
}

func (r *kvRecordRepository) GetWorkoutByDate(ctx context.Context, date string) (*domain.WorkoutEntry, error) {
	workouts, _ := r.ListWorkouts(ctx)
	for _, workout := range workouts {
		if workout.Date == date {
			w := workout
			return &w, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *kvRecordRepository) DeleteWorkout(ctx context.Context, id string) error {
	key := r.workoutsKey(ctx)
	var workouts []domain.WorkoutEntry
	r.readList(ctx, key, &workouts)

	filtered := workouts[:0]
	for _, workout := range workouts {
		if workout.ID != id {
			filtered = append(filtered, workout)
		}
	}
	return r.writeList(ctx, key, filtered)
}

func (r *kvRecordRepository) ReplaceWorkouts(ctx context.Context, workouts []domain.WorkoutEntry) error {
	return r.writeList(ctx, r.workoutsKey(ctx), workouts)
}

// --- Templates ---

func (r *kvRecordRepository) templatesKey(ctx context.Context) string {
	return dataKey(r.namespace(ctx), templatesSuffix)
}

func (r *kvRecordRepository) ListTemplates(ctx context.Context) ([]domain.SavedTemplate, error) {
	var templates []domain.SavedTemplate
	r.readList(ctx, r.templatesKey(ctx), &templates)
	return templates, nil
}

func (r *kvRecordRepository) SaveTemplate(ctx context.Context, template domain.SavedTemplate) error {
	key := r.templatesKey(ctx)
	var templates []domain.SavedTemplate
	r.readList(ctx, key, &templates)

	replaced := false
	for i := range templates {
		if templates[i].ID == template.ID {
			templates[i] = template
			replaced = true
			break
		}
	}
	if !replaced {
		templates = append([]domain.SavedTemplate{template}, templates...)
	}
	return r.writeList(ctx, key, templates)
}

func (r *kvRecordRepository) GetTemplateByID(ctx context.Context, id string) (*domain.SavedTemplate, error) {
	templates, _ := r.ListTemplates(ctx)
	for _, template := range templates {
		if template.ID == id {
			t := template
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *kvRecordRepository) DeleteTemplate(ctx context.Context, id string) error {
	key := r.templatesKey(ctx)
	var templates []domain.SavedTemplate
	r.readList(ctx, key, &templates)

	filtered := templates[:0]
	for _, template := range templates {
		if template.ID != id {
			filtered = append(filtered, template)
		}
	}
	return r.writeList(ctx, key, filtered)
}

func (r *kvRecordRepository) ReplaceTemplates(ctx context.Context, templates []domain.SavedTemplate) error {
	return r.writeList(ctx, r.templatesKey(ctx), templates)
}

// --- Preferences ---

func (r *kvRecordRepository) prefsKey(ctx context.Context) string {
	return dataKey(r.namespace(ctx), prefsSuffix)
}

func (r *kvRecordRepository) GetPreferences(ctx context.Context) (map[string]any, error) {
	prefs := map[string]any{}
	r.readList(ctx, r.prefsKey(ctx), &prefs)
	return prefs, nil
}

func (r *kvRecordRepository) SavePreferences(ctx context.Context, prefs map[string]any) error {
	return r.writeList(ctx, r.prefsKey(ctx), prefs)
}

// --- Clear ---

func (r *kvRecordRepository) ClearAll(ctx context.Context) error {
	namespace := r.namespace(ctx)
	for _, suffix := range []string{workoutsSuffix, templatesSuffix, prefsSuffix} {
		if err := r.store.Delete(ctx, dataKey(namespace, suffix)); err != nil {
			return err
		}
	}
	return nil
}
