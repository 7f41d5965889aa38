package service

import (
	"context"
	"errors"
	"time"

	"trackhq/trackhq-server/internal/domain"
	"trackhq/trackhq-server/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrPasswordTooShort     = errors.New("password must be at least 6 characters")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

const minPasswordLength = 6

// AuthService is the profile login layer. It exists so a shared device can
// keep profiles apart, not to defend the data: everything lives in the same
// local store. Registration creates a profile plus a credential; login
// verifies the credential, activates the profile and issues a JWT for the
// API session.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (token string, profile *domain.UserProfile, err error)
	Login(ctx context.Context, email, password string) (token string, profile *domain.UserProfile, err error)
	GetJWTSecret() string
}

type authService struct {
	profiles      repository.ProfileRepository
	credentials   repository.CredentialRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(
	profiles repository.ProfileRepository,
	credentials repository.CredentialRepository,
	jwtSecret string,
	jwtExpiration time.Duration,
) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		profiles:      profiles,
		credentials:   credentials,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new user registration.
func (s *authService) Register(ctx context.Context, name, email, password string) (string, *domain.UserProfile, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, errors.New("name, email, and password cannot be empty")
	}
	if len(password) < minPasswordLength {
		return "", nil, ErrPasswordTooShort
	}

	_, err := s.credentials.GetByEmail(ctx, email)
	if err == nil {
		return "", nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, ErrHashingFailed
	}

	profile, err := s.profiles.Create(ctx, name, email)
	if err != nil {
		return "", nil, err
	}

	credential := domain.Credential{
		ProfileID:    profile.ID,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.credentials.Create(ctx, credential); err != nil {
		return "", nil, err
	}

	// A fresh registration becomes the active profile, same as logging in,
	// so the new user's records are scoped to them immediately.
	if err := s.profiles.SetActive(ctx, profile.ID); err != nil {
		return "", nil, err
	}

	token, err := s.generateJWT(profile)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, profile, nil
}

// Login handles user authentication and JWT generation.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.UserProfile, error) {
	if email == "" || password == "" {
		return "", nil, errors.New("email and password cannot be empty")
	}

	credential, err := s.credentials.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	profile, err := s.profiles.GetByID(ctx, credential.ProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Credential survived a deleted profile; treat as bad login.
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	// Logging in switches the whole record namespace to this profile.
	if err := s.profiles.SetActive(ctx, profile.ID); err != nil {
		return "", nil, err
	}

	token, err := s.generateJWT(profile)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, profile, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	ProfileID string `json:"uid"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given profile.
func (s *authService) generateJWT(profile *domain.UserProfile) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		ProfileID: profile.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "trackhq",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
