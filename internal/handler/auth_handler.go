package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FanSt3/naturale-api/internal/service"
	"github.com/FanSt3/naturale-api/internal/utils"
)

// AuthHandler handles login, session lookups, and password change.
type AuthHandler struct {
	authService  *service.AuthService
	adminService *service.AdministratorService
	secureCookie bool
}

// NewAuthHandler constructs an AuthHandler. secureCookie marks the session
// cookie Secure; set in production.
func NewAuthHandler(authService *service.AuthService, adminService *service.AdministratorService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		adminService: adminService,
		secureCookie: secureCookie,
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		utils.Error(c, 400, "Email and password are required")
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			// Identical message for unknown email and wrong password.
			utils.Error(c, 401, "Invalid credentials")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}

	utils.SetAuthCookie(c, token, h.secureCookie)
	// The login body carries a trimmed user, not the full record.
	c.JSON(200, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"firstLogin": user.FirstLogin,
		},
		"token": token,
	})
}

// Me handles GET /api/auth/me. Responds {user: null} with 401 on any
// resolution failure, without distinguishing reasons.
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.authService.CurrentUser(utils.TokenFromRequest(c))
	if user == nil {
		c.JSON(401, gin.H{"user": nil})
		return
	}
	c.JSON(200, gin.H{"user": user})
}

// Session handles GET /api/auth/session.
func (h *AuthHandler) Session(c *gin.Context) {
	user := h.authService.CurrentUser(utils.TokenFromRequest(c))
	if user == nil {
		utils.Error(c, 401, "Not authenticated")
		return
	}
	c.JSON(200, gin.H{"user": user})
}

// Refresh handles GET /api/auth/refresh, a lightweight auth-system probe.
func (h *AuthHandler) Refresh(c *gin.Context) {
	count, err := h.adminService.Count()
	if err != nil {
		c.JSON(500, gin.H{
			"status":    "error",
			"message":   "Error checking auth system",
			"error":     err.Error(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}
	c.JSON(200, gin.H{
		"status":             "ok",
		"message":            "Auth system is working",
		"databaseConnection": "ok",
		"userCount":          count,
		"timestamp":          time.Now().Format(time.RFC3339),
	})
}

// ChangePassword handles POST /api/auth/change-password. Requires a resolved
// session; the existing token stays valid until natural expiry.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user := h.authService.CurrentUser(utils.TokenFromRequest(c))
	if user == nil {
		utils.Error(c, 401, "Unauthorized")
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		utils.Error(c, 400, "Missing required fields")
		return
	}

	if err := h.authService.ChangePassword(user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidCurrentPassword):
			utils.Error(c, 400, "Current password is incorrect")
		case errors.Is(err, utils.ErrNotFound):
			utils.Error(c, 404, "User not found")
		default:
			utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		}
		return
	}

	c.JSON(200, gin.H{"message": "Password changed successfully"})
}
