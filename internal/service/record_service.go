package service

import (
	"context"
	"errors"
	"time"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")
	ErrTemplateNameEmpty = errors.New("template name cannot be empty")
)

const dateLayout = "2006-01-02"

// RecordService handles the active profile's workout log, saved templates
// and preference bag.
type RecordService interface {
	ListWorkouts(ctx context.Context) ([]domain.WorkoutEntry, error)
	// SaveWorkout upserts by ID, assigning a fresh ID when the entry has
	// none, and returns the stored entry.
	SaveWorkout(ctx context.Context, entry domain.WorkoutEntry) (*domain.WorkoutEntry, error)
	GetWorkoutByDate(ctx context.Context, date string) (*domain.WorkoutEntry, error)
	DeleteWorkout(ctx context.Context, id string) error

	ListTemplates(ctx context.Context) ([]domain.SavedTemplate, error)
	SaveTemplate(ctx context.Context, template domain.SavedTemplate) (*domain.SavedTemplate, error)
	GetTemplateByID(ctx context.Context, id string) (*domain.SavedTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error

	GetPreferences(ctx context.Context) (map[string]any, error)
	SavePreferences(ctx context.Context, prefs map[string]any) error

	ClearAll(ctx context.Context) error
}

type recordService struct {
	records repository.RecordRepository
}

// NewRecordService creates a new instance of recordService.
func NewRecordService(records repository.RecordRepository) RecordService {
	return &recordService{records: records}
}

func (s *recordService) ListWorkouts(ctx context.Context) ([]domain.WorkoutEntry, error) {
	return s.records.ListWorkouts(ctx)
}

func (s *recordService) SaveWorkout(ctx context.Context, entry domain.WorkoutEntry) (*domain.WorkoutEntry, error) {
	if _, err := time.Parse(dateLayout, entry.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.SelectedExercises == nil {
		entry.SelectedExercises = []domain.ExercisePerformance{}
	}
	if err := s.records.SaveWorkout(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *recordService) GetWorkoutByDate(ctx context.Context, date string) (*domain.WorkoutEntry, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	workout, err := s.records.GetWorkoutByDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *recordService) DeleteWorkout(ctx context.Context, id string) error {
	return s.records.DeleteWorkout(ctx, id)
}

func (s *recordService) ListTemplates(ctx context.Context) ([]domain.SavedTemplate, error) {
	return s.records.ListTemplates(ctx)
}

func (s *recordService) SaveTemplate(ctx context.Context, template domain.SavedTemplate) (*domain.SavedTemplate, error) {
	if template.Name == "" {
		return nil, ErrTemplateNameEmpty
	}
	now := time.Now().UTC()
	if template.ID == "" {
		template.ID = uuid.NewString()
		template.CreatedAt = now
	}
	if template.CreatedAt.IsZero() {
		template.CreatedAt = now
	}
	template.UpdatedAt = now
	if template.Exercises == nil {
		template.Exercises = []domain.ExercisePerformance{}
	}
	if err := s.records.SaveTemplate(ctx, template); err != nil {
		return nil, err
	}
	return &template, nil
}

func (s *recordService) GetTemplateByID(ctx context.Context, id string) (*domain.SavedTemplate, error) {
	template, err := s.records.GetTemplateByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

func (s *recordService) DeleteTemplate(ctx context.Context, id string) error {
	return s.records.DeleteTemplate(ctx, id)
}

func (s *recordService) GetPreferences(ctx context.Context) (map[string]any, error) {
	return s.records.GetPreferences(ctx)
}

func (s *recordService) SavePreferences(ctx context.Context, prefs map[string]any) error {
	return s.records.SavePreferences(ctx, prefs)
}

func (s *recordService) ClearAll(ctx context.Context) error {
	return s.records.ClearAll(ctx)
}
