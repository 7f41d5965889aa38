package service

import (
	"context"
	"errors"
	"strings"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/repository"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrProfileNameEmpty = errors.New("profile name cannot be empty")
	ErrLastProfile      = errors.New("cannot delete the only remaining profile")
	ErrNoActiveProfile  = errors.New("no active profile")
)

// ProfileService manages local user profiles. All validation happens here,
// before any mutation reaches storage.
type ProfileService interface {
	ListProfiles(ctx context.Context) ([]domain.UserProfile, error)
	GetProfile(ctx context.Context, id string) (*domain.UserProfile, error)
	GetActiveProfile(ctx context.Context) (*domain.UserProfile, error)
	SetActiveProfile(ctx context.Context, id string) error
	CreateProfile(ctx context.Context, name, email string) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, id string, update repository.ProfileUpdate) (*domain.UserProfile, error)
	DeleteProfile(ctx context.Context, id string) error
}

type profileService struct {
	profiles    repository.ProfileRepository
	credentials repository.CredentialRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profiles repository.ProfileRepository, credentials repository.CredentialRepository) ProfileService {
	return &profileService{
		profiles:    profiles,
		credentials: credentials,
	}
}

func (s *profileService) ListProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	return s.profiles.List(ctx)
}

func (s *profileService) GetProfile(ctx context.Context, id string) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetActiveProfile(ctx context.Context) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveProfile) {
			return nil, ErrNoActiveProfile
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) SetActiveProfile(ctx context.Context, id string) error {
	err := s.profiles.SetActive(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProfileNotFound
	}
	return err
}

func (s *profileService) CreateProfile(ctx context.Context, name, email string) (*domain.UserProfile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrProfileNameEmpty
	}
	return s.profiles.Create(ctx, name, email)
}

func (s *profileService) UpdateProfile(ctx context.Context, id string, update repository.ProfileUpdate) (*domain.UserProfile, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, ErrProfileNameEmpty
	}
	profile, err := s.profiles.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, id string) error {
	err := s.profiles.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrProfileNotFound
		case errors.Is(err, repository.ErrLastProfile):
			return ErrLastProfile
		}
		return err
	}
	// Drop any login credential tied to the deleted profile.
	return s.credentials.DeleteByProfileID(ctx, id)
}
