package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synchomes/synchomes-api/internal/model"
	"github.com/synchomes/synchomes-api/internal/testutil"
)

func TestAuthService_TokenRoundTrip(t *testing.T) {
	auth := NewAuthService(testutil.Config(t))
	admin := &model.Admin{ID: uuid.New(), Email: "a@b.com"}

	token, expiresAt, err := auth.GenerateToken(admin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, admin.ID.String(), claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestAuthService_RejectsBadTokens(t *testing.T) {
	cfg := testutil.Config(t)
	auth := NewAuthService(cfg)
	admin := &model.Admin{ID: uuid.New(), Email: "a@b.com"}

	good, _, err := auth.GenerateToken(admin)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		AdminID: admin.ID,
	})
	expiredStr, err := expired.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{AdminID: admin.ID})
	noExpiryStr, err := noExpiry.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	otherCfg := *cfg
	otherCfg.JWTSecret = "other"
	otherKey, _, err := NewAuthService(&otherCfg).GenerateToken(admin)
	require.NoError(t, err)

	// Graft another token's signature onto this token's payload.
	second, _, err := auth.GenerateToken(&model.Admin{ID: uuid.New(), Email: "c@d.com"})
	require.NoError(t, err)
	tampered := good[:strings.LastIndex(good, ".")] + second[strings.LastIndex(second, "."):]

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		AdminID:          admin.ID,
	})
	unsignedStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]string{
		"tampered":    tampered,
		"expired":     expiredStr,
		"no expiry":   noExpiryStr,
		"other key":   otherKey,
		"alg none":    unsignedStr,
		"not a token": "garbage",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := auth.ValidateToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestAuthService_CheckPassword(t *testing.T) {
	auth := NewAuthService(testutil.Config(t))

	hash, err := auth.HashPassword("Admin@123")
	require.NoError(t, err)

	assert.NoError(t, auth.CheckPassword(hash, "Admin@123"))
	assert.ErrorIs(t, auth.CheckPassword(hash, "admin@123"), ErrInvalidCredentials)
}
