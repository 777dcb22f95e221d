package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the single privileged operator account.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AdminProfile is the public view of an admin; it never carries the hash.
type AdminProfile struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Summary returns the id/email/name triple sent back on login.
func (a *Admin) Summary() AdminProfile {
	return AdminProfile{ID: a.ID, Email: a.Email, Name: a.Name}
}

// Profile returns the full public profile.
func (a *Admin) Profile() AdminProfile {
	p := a.Summary()
	if !a.CreatedAt.IsZero() {
		created := a.CreatedAt
		p.CreatedAt = &created
	}
	if !a.UpdatedAt.IsZero() {
		updated := a.UpdatedAt
		p.UpdatedAt = &updated
	}
	return p
}

// AdminLoginRequest is the payload for admin authentication.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// ResetPasswordRequest is the payload for the self-service password change.
type ResetPasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required,max=128"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=128"`
}

// UpdateProfileRequest renames the admin.
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}
