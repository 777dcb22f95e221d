package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synchomes/synchomes-api/internal/config"
	"github.com/synchomes/synchomes-api/internal/middleware"
	"github.com/synchomes/synchomes-api/internal/model"
	"github.com/synchomes/synchomes-api/internal/response"
	"github.com/synchomes/synchomes-api/internal/service"
	"github.com/synchomes/synchomes-api/internal/validator"
)

// AuthHandler handles admin session endpoints.
type AuthHandler struct {
	authService  *service.AuthService
	adminService *service.AdminService
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, adminService *service.AdminService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		adminService: adminService,
		cfg:          cfg,
	}
}

// Login godoc
// POST /api/admin/login
// Validates email + password and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.adminService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.InternalError(c, err)
		return
	}

	token, _, err := h.authService.GenerateToken(admin)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.authService.TTL().Seconds()))

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"admin":   admin.Summary(),
	})
}

// Me godoc
// GET /api/admin/me
// Returns the profile of the signed-in admin.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrNotAuthenticated)
		return
	}

	admin, err := h.adminService.GetByID(c.Request.Context(), claims.AdminID)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrAdminNotFound)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin.Profile()})
}

// Logout godoc
// POST /api/admin/logout
// Clears the session cookie. Succeeds with or without a session; the token
// itself stays valid until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.Message(c, http.StatusOK, "Logout successful")
}

// ResetPassword godoc
// POST /api/admin/reset-password
// Changes the password after re-checking the old one.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrNotAuthenticated)
		return
	}

	var req model.ResetPasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err := h.adminService.ResetPassword(c.Request.Context(), claims.AdminID, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOldPasswordIncorrect):
			response.Fail(c, http.StatusUnauthorized, response.ErrOldPasswordIncorrect)
		case errors.Is(err, service.ErrAdminNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrAdminNotFound)
		case errors.Is(err, service.ErrWeakPassword):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"newPassword": "newPassword must be at least 6 characters in length"})
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Message(c, http.StatusOK, "Password reset successful")
}

// UpdateProfile godoc
// PUT /api/admin/profile
// Renames the signed-in admin.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrNotAuthenticated)
		return
	}

	var req model.UpdateProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.adminService.UpdateName(c.Request.Context(), claims.AdminID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidName):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"name": "name must be 2-100 characters"})
		case errors.Is(err, service.ErrAdminNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrAdminNotFound)
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Profile updated",
		"admin":   admin.Profile(),
	})
}

// setSessionCookie writes the session cookie. maxAge < 0 deletes it; the
// attributes must match the ones used at login or browsers keep the cookie.
func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure(),
		SameSite: h.cfg.CookieSameSite(),
	})
}
