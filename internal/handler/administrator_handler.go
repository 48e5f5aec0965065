package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/FanSt3/naturale-api/internal/service"
	"github.com/FanSt3/naturale-api/internal/utils"
)

// AdministratorHandler handles administrator account endpoints.
type AdministratorHandler struct {
	adminService *service.AdministratorService
}

// NewAdministratorHandler constructs an AdministratorHandler.
func NewAdministratorHandler(adminService *service.AdministratorService) *AdministratorHandler {
	return &AdministratorHandler{adminService: adminService}
}

// List handles GET /api/administrators.
func (h *AdministratorHandler) List(c *gin.Context) {
	admins, err := h.adminService.List()
	if err != nil {
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	c.JSON(200, gin.H{"admins": admins})
}

// Create handles POST /api/administrators. The account is created even when
// the welcome email fails; the response then carries a warning instead.
func (h *AdministratorHandler) Create(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	admin, warning, err := h.adminService.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidEmail):
			utils.ErrorWithMessage(c, 400, "Invalid email format", "Email adresa nije ispravnog formata")
		case errors.Is(err, utils.ErrPasswordTooShort):
			utils.ErrorWithMessage(c, 400, "Password too short", "Lozinka mora imati najmanje 8 karaktera")
		case errors.Is(err, utils.ErrMissingFields):
			utils.ErrorWithMessage(c, 400, "Missing required fields", "Name, email, and password are required")
		case errors.Is(err, utils.ErrDuplicateEmail):
			utils.ErrorWithMessage(c, 400, "Email already exists", "Email address is already registered")
		default:
			utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		}
		return
	}

	if warning != "" {
		c.JSON(201, gin.H{"admin": admin, "warning": warning})
		return
	}
	c.JSON(201, gin.H{"admin": admin, "emailSent": true})
}

// Get handles GET /api/administrators/:id.
func (h *AdministratorHandler) Get(c *gin.Context) {
	admin, err := h.adminService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Administrator not found")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	c.JSON(200, gin.H{"admin": admin})
}

// Delete handles DELETE /api/administrators/:id.
func (h *AdministratorHandler) Delete(c *gin.Context) {
	if err := h.adminService.Delete(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, utils.ErrLastAdministrator):
			utils.Error(c, 400, "Cannot delete the last administrator")
		case errors.Is(err, utils.ErrNotFound):
			utils.Error(c, 404, "Administrator not found")
		default:
			utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		}
		return
	}
	c.JSON(200, gin.H{"message": "Administrator deleted successfully"})
}

// First handles GET /api/users/first. The panel uses the oldest account as
// the default author when creating content.
func (h *AdministratorHandler) First(c *gin.Context) {
	user, err := h.adminService.First()
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "No users found in the database")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	c.JSON(200, gin.H{"user": user})
}
