package handler

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/FanSt3/naturale-api/internal/cache"
	"github.com/FanSt3/naturale-api/internal/models"
	"github.com/FanSt3/naturale-api/internal/service"
	"github.com/FanSt3/naturale-api/internal/utils"
)

// TeamHandler handles team member HTTP endpoints.
type TeamHandler struct {
	teamService *service.TeamService
	cache       *cache.ContentCache
}

// NewTeamHandler constructs a TeamHandler. The cache may be nil when Redis is
// not configured.
func NewTeamHandler(teamService *service.TeamService, contentCache *cache.ContentCache) *TeamHandler {
	return &TeamHandler{teamService: teamService, cache: contentCache}
}

// List handles GET /api/team.
func (h *TeamHandler) List(c *gin.Context) {
	filter := listFilter(c)

	if h.cache != nil {
		if body, ok := h.cache.GetList(c.Request.Context(), "team", filter.Page, filter.Limit, cacheFilter(filter)); ok {
			c.Data(200, "application/json; charset=utf-8", body)
			return
		}
	}

	members, pagination, err := h.teamService.List(filter)
	if err != nil {
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	if members == nil {
		members = []models.TeamMember{}
	}

	resp := gin.H{"teamMembers": members, "pagination": pagination}
	if h.cache != nil {
		if body, err := json.Marshal(resp); err == nil {
			h.cache.SetList(c.Request.Context(), "team", filter.Page, filter.Limit, cacheFilter(filter), body)
		}
	}
	c.JSON(200, resp)
}

// Get handles GET /api/team/:id.
func (h *TeamHandler) Get(c *gin.Context) {
	member, err := h.teamService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Team member not found")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	c.JSON(200, member)
}

// Create handles POST /api/team.
func (h *TeamHandler) Create(c *gin.Context) {
	var req service.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	member, err := h.teamService.Create(&req)
	if err != nil {
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	h.invalidate(c)
	c.JSON(201, member)
}

// Update handles PUT /api/team/:id.
func (h *TeamHandler) Update(c *gin.Context) {
	var req service.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	member, err := h.teamService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Team member not found")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	h.invalidate(c)
	c.JSON(200, member)
}

// Delete handles DELETE /api/team/:id.
func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.teamService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Team member not found")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	h.invalidate(c)
	c.JSON(200, gin.H{"success": true})
}

func (h *TeamHandler) invalidate(c *gin.Context) {
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), "team")
	}
}
