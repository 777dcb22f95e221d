package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t,
		[]string{"http://localhost:5173", "https://sync-homes.vercel.app"},
		parseOrigins(" http://localhost:5173 , ,https://sync-homes.vercel.app"),
	)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("SESSION_TTL_HOURS", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("BCRYPT_COST", "")

	cfg := Load()

	assert.Equal(t, EnvDevelopment, cfg.AppEnv)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, DefaultAdminEmail, cfg.AdminEmail)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "/api/uploads", cfg.UploadURLPrefix)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "seven")
	t.Setenv("AUTO_MIGRATE", "maybe")

	cfg := Load()

	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.AutoMigrate)
}

func TestCookiePolicy(t *testing.T) {
	dev := &Config{AppEnv: EnvDevelopment}
	assert.False(t, dev.CookieSecure())
	assert.Equal(t, http.SameSiteLaxMode, dev.CookieSameSite())

	prod := &Config{AppEnv: EnvProduction}
	assert.True(t, prod.CookieSecure())
	assert.Equal(t, http.SameSiteNoneMode, prod.CookieSameSite())
	assert.False(t, prod.IsDevelopment())
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "synchomes:projects:list", CacheKey.ProjectListKey())
	assert.Equal(t, "synchomes:clients:list", CacheKey.ClientListKey())
}
