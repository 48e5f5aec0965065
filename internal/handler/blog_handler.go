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

// BlogHandler handles blog post HTTP endpoints.
type BlogHandler struct {
	blogService *service.BlogService
	cache       *cache.ContentCache
}

// NewBlogHandler constructs a BlogHandler. The cache may be nil when Redis
// is not configured.
func NewBlogHandler(blogService *service.BlogService, contentCache *cache.ContentCache) *BlogHandler {
	return &BlogHandler{blogService: blogService, cache: contentCache}
}

// List handles GET /api/blogs.
func (h *BlogHandler) List(c *gin.Context) {
	filter := listFilter(c)

	if h.cache != nil {
		if body, ok := h.cache.GetList(c.Request.Context(), "blogs", filter.Page, filter.Limit, cacheFilter(filter)); ok {
			c.Data(200, "application/json; charset=utf-8", body)
			return
		}
	}

	blogs, pagination, err := h.blogService.List(filter)
	if err != nil {
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}

	resp := gin.H{"blogs": blogs, "pagination": pagination}
	if h.cache != nil {
		if body, err := json.Marshal(resp); err == nil {
			h.cache.SetList(c.Request.Context(), "blogs", filter.Page, filter.Limit, cacheFilter(filter), body)
		}
	}
	c.JSON(200, resp)
}

// Get handles GET /api/blogs/:id.
func (h *BlogHandler) Get(c *gin.Context) {
	blog, err := h.blogService.Get(c.Param("id"), true)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Blog not found")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	c.JSON(200, blog)
}

// Create handles POST /api/blogs.
func (h *BlogHandler) Create(c *gin.Context) {
	var req service.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	blog, err := h.blogService.Create(&req)
	if err != nil {
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	h.invalidate(c)
	c.JSON(201, blog)
}

// Update handles PUT /api/blogs/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	var req service.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	blog, err := h.blogService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Blog not found")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	h.invalidate(c)
	c.JSON(200, blog)
}

// Delete handles DELETE /api/blogs/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "Blog not found")
			return
		}
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}
	h.invalidate(c)
	c.JSON(200, gin.H{"success": true})
}

func (h *BlogHandler) invalidate(c *gin.Context) {
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context(), "blogs")
	}
}
