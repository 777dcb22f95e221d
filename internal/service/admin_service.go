package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/synchomes/synchomes-api/internal/model"
	"github.com/synchomes/synchomes-api/internal/repository"
)

// AdminService handles admin business logic.
type AdminService struct {
	adminRepo repository.AdminRepository
	auth      *AuthService
	log       zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo repository.AdminRepository, auth *AuthService, log zerolog.Logger) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		auth:      auth,
		log:       log.With().Str("component", "admin_service").Logger(),
	}
}

// Authenticate returns the admin matching email and password. An unknown
// email and a wrong password both yield ErrInvalidCredentials.
func (s *AdminService) Authenticate(ctx context.Context, email, password string) (*model.Admin, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.auth.BurnPasswordCheck(password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup admin: %w", err)
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// GetByID retrieves an admin by ID.
func (s *AdminService) GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return admin, nil
}

// ResetPassword re-checks oldPassword against the stored hash before
// replacing it. Outstanding tokens stay valid until they expire.
func (s *AdminService) ResetPassword(ctx context.Context, id uuid.UUID, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrWeakPassword
	}

	admin, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, oldPassword); err != nil {
		return ErrOldPasswordIncorrect
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, id, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info().Str("admin_id", id.String()).Msg("Admin password changed")
	return nil
}

// UpdateName renames the admin.
func (s *AdminService) UpdateName(ctx context.Context, id uuid.UUID, name string) (*model.Admin, error) {
	name = cleanText(name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return nil, ErrInvalidName
	}

	admin, err := s.adminRepo.UpdateName(ctx, id, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("update name: %w", err)
	}
	return admin, nil
}

// Create hashes password and stores a new admin.
func (s *AdminService) Create(ctx context.Context, email, name, password string) (*model.Admin, error) {
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "Admin"
	}

	admin := &model.Admin{
		Email:        normalizeEmail(email),
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// EnsureBootstrapAdmin creates the operator account if no admin owns email.
// It never overwrites an existing password.
func (s *AdminService) EnsureBootstrapAdmin(ctx context.Context, email, name, password string) (bool, error) {
	_, err := s.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("lookup bootstrap admin: %w", err)
	}

	if _, err := s.Create(ctx, email, name, password); err != nil {
		if errors.Is(err, ErrAdminExists) {
			return false, nil
		}
		return false, err
	}

	s.log.Info().Str("email", normalizeEmail(email)).Msg("Bootstrap admin created")
	return true, nil
}
