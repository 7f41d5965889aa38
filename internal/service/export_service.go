package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/repository"
	"trackhq/trackhq-server/internal/storage"
)

// --- Error Definitions ---
var (
	ErrInvalidBackupFile = errors.New("invalid backup file: missing data or version")
	ErrBackupNotEnabled  = errors.New("offsite backup storage is not configured")
)

// ImportSummary reports what a successful import replaced.
type ImportSummary struct {
	Workouts    int  `json:"workouts"`
	Templates   int  `json:"templates"`
	Preferences bool `json:"preferences"`
}

// ExportService produces and restores versioned backup files of the active
// profile's full record set, and optionally mirrors them to object storage.
type ExportService interface {
	// Export returns a deep snapshot wrapped in the versioned envelope.
	Export(ctx context.Context) (*domain.ExportFile, error)
	// Import validates the envelope and replaces each collection present in
	// its data section wholesale. Nothing is written when validation fails.
	Import(ctx context.Context, payload []byte) (*ImportSummary, error)
	// BackupFileName is the conventional download name for an export taken
	// at the given time.
	BackupFileName(now time.Time) string
	// UploadBackup exports and puts the file to the configured bucket,
	// returning the object key. Fails with ErrBackupNotEnabled when no
	// bucket is configured.
	UploadBackup(ctx context.Context) (string, error)
	// BackupDownloadURL returns a presigned URL for a previously uploaded
	// backup object.
	BackupDownloadURL(ctx context.Context, objectKey string) (string, error)
	// DownloadBackup fetches a previously uploaded backup object's contents.
	DownloadBackup(ctx context.Context, objectKey string) ([]byte, error)
	// DeleteBackup removes a previously uploaded backup object.
	DeleteBackup(ctx context.Context, objectKey string) error
}

type exportService struct {
	records     repository.RecordRepository
	profiles    repository.ProfileRepository
	fileStorage storage.FileStorage // nil when offsite backup is disabled
}

// NewExportService creates a new instance of exportService. fileStorage may
// be nil, which disables the offsite backup operations.
func NewExportService(
	records repository.RecordRepository,
	profiles repository.ProfileRepository,
	fileStorage storage.FileStorage,
) ExportService {
	return &exportService{
		records:     records,
		profiles:    profiles,
		fileStorage: fileStorage,
	}
}

func (s *exportService) Export(ctx context.Context) (*domain.ExportFile, error) {
	workouts, err := s.records.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := s.records.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	preferences, err := s.records.GetPreferences(ctx)
	if err != nil {
		return nil, err
	}

	if workouts == nil {
		workouts = []domain.WorkoutEntry{}
	}
	if templates == nil {
		templates = []domain.SavedTemplate{}
	}

	file := &domain.ExportFile{
		ExportDate: time.Now().UTC(),
		Version:    domain.ExportVersion,
		Data: domain.ExportData{
			Workouts:    workouts,
			Templates:   templates,
			Preferences: preferences,
		},
	}

	// The user block is display-only metadata; exports still work with no
	// active profile.
	if active, err := s.profiles.GetActive(ctx); err == nil {
		file.User = &domain.ExportUser{Name: active.Name, Email: active.Email}
	}

	return file, nil
}

// importEnvelope mirrors the export format with pointer fields so absent
// collections can be told apart from empty ones.
type importEnvelope struct {
	Version string      `json:"version"`
	Data    *importData `json:"data"`
}

type importData struct {
	Workouts    *[]domain.WorkoutEntry  `json:"workouts"`
	Templates   *[]domain.SavedTemplate `json:"templates"`
	Preferences *map[string]any         `json:"preferences"`
}

func (s *exportService) Import(ctx context.Context, payload []byte) (*ImportSummary, error) {
	var envelope importEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackupFile, err)
	}
	if envelope.Version == "" || envelope.Data == nil {
		return nil, ErrInvalidBackupFile
	}

	summary := &ImportSummary{}
	if envelope.Data.Workouts != nil {
		if err := s.records.ReplaceWorkouts(ctx, *envelope.Data.Workouts); err != nil {
			return nil, err
		}
		summary.Workouts = len(*envelope.Data.Workouts)
	}
	if envelope.Data.Templates != nil {
		if err := s.records.ReplaceTemplates(ctx, *envelope.Data.Templates); err != nil {
			return nil, err
		}
		summary.Templates = len(*envelope.Data.Templates)
	}
	if envelope.Data.Preferences != nil {
		if err := s.records.SavePreferences(ctx, *envelope.Data.Preferences); err != nil {
			return nil, err
		}
		summary.Preferences = true
	}
	return summary, nil
}

func (s *exportService) BackupFileName(now time.Time) string {
	return fmt.Sprintf("trackhq-backup-%s.json", now.UTC().Format("2006-01-02"))
}

func (s *exportService) UploadBackup(ctx context.Context) (string, error) {
	if s.fileStorage == nil {
		return "", ErrBackupNotEnabled
	}

	file, err := s.Export(ctx)
	if err != nil {
		return "", err
	}
	body, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return "", err
	}

	objectKey := s.BackupFileName(file.ExportDate)
	if err := s.fileStorage.Upload(ctx, objectKey, "application/json", body); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (s *exportService) BackupDownloadURL(ctx context.Context, objectKey string) (string, error) {
	if s.fileStorage == nil {
		return "", ErrBackupNotEnabled
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
}

func (s *exportService) DownloadBackup(ctx context.Context, objectKey string) ([]byte, error) {
	if s.fileStorage == nil {
		return nil, ErrBackupNotEnabled
	}
	return s.fileStorage.Download(ctx, objectKey)
}

func (s *exportService) DeleteBackup(ctx context.Context, objectKey string) error {
	if s.fileStorage == nil {
		return ErrBackupNotEnabled
	}
	return s.fileStorage.DeleteObject(ctx, objectKey)
}
