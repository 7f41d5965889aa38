package repository

import (
	"context"

	"trackhq/trackhq-server/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound        = RepositoryError("not found")
	ErrNoActiveProfile = RepositoryError("no active profile")
	ErrLastProfile     = RepositoryError("cannot delete the last remaining profile")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileUpdate carries a partial profile update; nil fields are left
// untouched.
type ProfileUpdate struct {
	Name        *string
	Email       *string
	Preferences *domain.Preferences
}

// ProfileRepository manages the global profile list and the active-profile
// pointer. At most one profile is active; a dangling pointer is treated the
// same as no active profile.
type ProfileRepository interface {
	// List returns all profiles in creation order.
	List(ctx context.Context) ([]domain.UserProfile, error)
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	// GetActive returns ErrNoActiveProfile when no profile is active or the
	// active pointer references a deleted profile.
	GetActive(ctx context.Context) (*domain.UserProfile, error)
	// SetActive returns ErrNotFound if id does not match a stored profile.
	SetActive(ctx context.Context, id string) error
	// Create stores a new profile with default preferences and activates it
	// if it is the first one.
	Create(ctx context.Context, name, email string) (*domain.UserProfile, error)
	Update(ctx context.Context, id string, update ProfileUpdate) (*domain.UserProfile, error)
	// Delete refuses to remove the last remaining profile (ErrLastProfile),
	// purges all of the profile's namespaced data, and reassigns the active
	// pointer if the deleted profile held it.
	Delete(ctx context.Context, id string) error
}

// RecordRepository persists the per-profile record set. Every operation
// resolves the active profile's namespace at call time; when no profile is
// active, the legacy global namespace is used. Reads degrade to empty
// collections when the underlying storage is missing or corrupt; writes
// surface their errors.
type RecordRepository interface {
	// ListWorkouts returns the active profile's workouts, most recently
	// saved first.
	ListWorkouts(ctx context.Context) ([]domain.WorkoutEntry, error)
	// SaveWorkout overwrites an existing entry with the same ID in place,
	// or prepends the entry as newest. It never deduplicates by date.
	SaveWorkout(ctx context.Context, entry domain.WorkoutEntry) error
	// GetWorkoutByDate returns the first stored entry whose date matches
	// exactly, or ErrNotFound.
	GetWorkoutByDate(ctx context.Context, date string) (*domain.WorkoutEntry, error)
	DeleteWorkout(ctx context.Context, id string) error

	ListTemplates(ctx context.Context) ([]domain.SavedTemplate, error)
	SaveTemplate(ctx context.Context, template domain.SavedTemplate) error
	GetTemplateByID(ctx context.Context, id string) (*domain.SavedTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error

	// GetPreferences returns the opaque preference bag, empty when unset.
	GetPreferences(ctx context.Context) (map[string]any, error)
	// SavePreferences overwrites the whole bag; it does not merge.
	SavePreferences(ctx context.Context, prefs map[string]any) error

	// ReplaceWorkouts and ReplaceTemplates swap a collection wholesale,
	// used by import.
	ReplaceWorkouts(ctx context.Context, workouts []domain.WorkoutEntry) error
	ReplaceTemplates(ctx context.Context, templates []domain.SavedTemplate) error

	// ClearAll removes the active profile's workouts, templates and
	// preferences.
	ClearAll(ctx context.Context) error
}

// CredentialRepository stores the toy login credentials. Not a security
// boundary; see the auth service.
type CredentialRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
	Create(ctx context.Context, credential domain.Credential) error
	DeleteByProfileID(ctx context.Context, profileID string) error
}
