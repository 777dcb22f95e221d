package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synchomes/synchomes-api/internal/testutil"
)

func newAdminService(t *testing.T) (*AdminService, *testutil.AdminRepo) {
	t.Helper()
	repo := testutil.NewAdminRepo()
	return NewAdminService(repo, NewAuthService(testutil.Config(t)), zerolog.Nop()), repo
}

func TestAdminService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAdminService(t)

	created, err := svc.Create(ctx, " Admin@Synchomes.com ", "Admin", "Admin@123")
	require.NoError(t, err)
	assert.Equal(t, "admin@synchomes.com", created.Email)

	admin, err := svc.Authenticate(ctx, "ADMIN@synchomes.com", "Admin@123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, admin.ID)

	_, err = svc.Authenticate(ctx, "admin@synchomes.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@synchomes.com", "Admin@123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAdminService(t)

	admin, err := svc.Create(ctx, "a@b.com", "Admin", "Admin@123")
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, admin.ID, "not-it", "newpass1")
	assert.ErrorIs(t, err, ErrOldPasswordIncorrect)

	err = svc.ResetPassword(ctx, admin.ID, "Admin@123", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	require.NoError(t, svc.ResetPassword(ctx, admin.ID, "Admin@123", "newpass1"))

	_, err = svc.Authenticate(ctx, "a@b.com", "Admin@123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "a@b.com", "newpass1")
	assert.NoError(t, err)
}

func TestAdminService_ResetPasswordMissingAdmin(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAdminService(t)

	admin, err := svc.Create(ctx, "a@b.com", "Admin", "Admin@123")
	require.NoError(t, err)
	repo.Delete(admin.ID)

	err = svc.ResetPassword(ctx, admin.ID, "Admin@123", "newpass1")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestAdminService_UpdateName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAdminService(t)

	admin, err := svc.Create(ctx, "a@b.com", "Admin", "Admin@123")
	require.NoError(t, err)

	_, err = svc.UpdateName(ctx, admin.ID, "  x ")
	assert.ErrorIs(t, err, ErrInvalidName)

	updated, err := svc.UpdateName(ctx, admin.ID, "  <b>Jo</b> ")
	require.NoError(t, err)
	assert.Equal(t, "Jo", updated.Name)
}

func TestAdminService_EnsureBootstrapAdminIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAdminService(t)

	created, err := svc.EnsureBootstrapAdmin(ctx, "admin@synchomes.com", "Admin", "Admin@123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureBootstrapAdmin(ctx, "admin@synchomes.com", "Admin", "changed")
	require.NoError(t, err)
	assert.False(t, created)

	// The original password survives a second run.
	_, err = svc.Authenticate(ctx, "admin@synchomes.com", "Admin@123")
	assert.NoError(t, err)
}

func TestAdminService_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAdminService(t)

	_, err := svc.Create(ctx, "a@b.com", "Admin", "Admin@123")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "A@B.com", "Other", "Admin@123")
	assert.ErrorIs(t, err, ErrAdminExists)
}
