package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/FanSt3/naturale-api/internal/repository"
)

// HealthHandler exposes the health probe and the development debug endpoint.
type HealthHandler struct {
	db         *sqlx.DB
	env        string
	users      *repository.UserRepository
	blogs      *repository.BlogRepository
	activities *repository.ActivityRepository
	team       *repository.TeamMemberRepository
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(
	db *sqlx.DB,
	env string,
	users *repository.UserRepository,
	blogs *repository.BlogRepository,
	activities *repository.ActivityRepository,
	team *repository.TeamMemberRepository,
) *HealthHandler {
	return &HealthHandler{
		db:         db,
		env:        env,
		users:      users,
		blogs:      blogs,
		activities: activities,
		team:       team,
	}
}

// GetHealth handles GET /health.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	var one int
	if err := h.db.Get(&one, `SELECT 1`); err != nil {
		c.JSON(500, gin.H{
			"status":      "error",
			"database":    "disconnected",
			"error":       err.Error(),
			"environment": h.env,
			"timestamp":   time.Now().Format(time.RFC3339),
		})
		return
	}
	c.JSON(200, gin.H{
		"status":      "ok",
		"database":    "connected",
		"environment": h.env,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}

// GetDebug handles GET /api/debug: per-model counts plus a first sample of
// each. Registered in development only.
func (h *HealthHandler) GetDebug(c *gin.Context) {
	userCount, err := h.users.Count()
	if err != nil {
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}
	blogCount, err := h.blogs.Count()
	if err != nil {
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}
	activityCount, err := h.activities.Count()
	if err != nil {
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}
	teamCount, err := h.team.Count()
	if err != nil {
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}

	samples := gin.H{"user": nil, "blog": nil, "activity": nil, "teamMember": nil}
	if user, err := h.users.GetFirst(); err == nil {
		samples["user"] = gin.H{"id": user.ID, "name": user.Name}
	}
	if blogs, _, err := h.blogs.List("", nil, 1, 1); err == nil && len(blogs) > 0 {
		samples["blog"] = gin.H{"id": blogs[0].ID, "title": blogs[0].Title}
	}
	if activities, _, err := h.activities.List("", nil, 1, 1); err == nil && len(activities) > 0 {
		samples["activity"] = gin.H{"id": activities[0].ID, "title": activities[0].Title}
	}
	if members, _, err := h.team.List("", 1, 1); err == nil && len(members) > 0 {
		samples["teamMember"] = gin.H{"id": members[0].ID, "name": members[0].Name}
	}

	c.JSON(200, gin.H{
		"status":  "success",
		"message": "API is working correctly",
		"counts": gin.H{
			"users":       userCount,
			"blogs":       blogCount,
			"activities":  activityCount,
			"teamMembers": teamCount,
		},
		"samples":     samples,
		"environment": h.env,
	})
}
