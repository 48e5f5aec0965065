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

// ActivityHandler handles activity HTTP endpoints.
type ActivityHandler struct {
	activityService *service.ActivityService
	cache           *cache.ContentCache
}

// NewActivityHandler constructs an ActivityHandler. The cache may be nil when
// Redis is not configured.
func NewActivityHandler(activityService *service.ActivityService, contentCache *cache.ContentCache) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, cache: contentCache}
}

// List handles GET /api/activities.
func (h *ActivityHandler) List(c *gin.Context) {
	filter := listFilter(c)

	if h.cache != nil {
		if body, ok := h.cache.GetList(c.Request.Context(), "activities", filter.Page, filter.Limit, cacheFilter(filter)); ok {
			c.Data(200, "application/json; charset=utf-8", body)
			return
		}
	}

	activities, pagination, err := h.activityService.List(filter)
	if err != nil {
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}

	resp := gin.H{"activities": activities, "pagination": pagination}
	if h.cache != nil {
		if body, err := json.Marshal(resp); err == nil {
			h.cache.SetList(c.Request.Context(), "activities", filter.Page, filter.Limit, cacheFilter(filter), body)
		}
	}
	c.JSON(200, resp)
}

// Get handles GET /api/activities/:id.
func (h *ActivityHandler) Get(c *gin.Context) {
	activity, err := h.activityService.Get(c.Param("id"), true)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Activity not found")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	c.JSON(200, activity)
}

// Create handles POST /api/activities.
func (h *ActivityHandler) Create(c *gin.Context) {
	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	activity, err := h.activityService.Create(&req)
	if err != nil {
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	h.invalidate(c)
	c.JSON(201, activity)
}

// Update handles PUT /api/activities/:id.
func (h *ActivityHandler) Update(c *gin.Context) {
	var req service.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	activity, err := h.activityService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Activity not found")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	h.invalidate(c)
	c.JSON(200, activity)
}

// Delete handles DELETE /api/activities/:id.
func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.activityService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Activity not found")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	h.invalidate(c)
	c.JSON(200, gin.H{"success": true})
}

func (h *ActivityHandler) invalidate(c *gin.Context) {
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), "activities")
	}
}
