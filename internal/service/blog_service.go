package service

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/FanSt3/naturale-api/internal/markdown"
	"github.com/FanSt3/naturale-api/internal/models"
	"github.com/FanSt3/naturale-api/internal/utils"
)

// ListFilter carries the common list parameters for content entities.
type ListFilter struct {
	Search    string
	Published *bool
	Page      int
	Limit     int
}

// CreateBlogRequest is the payload for creating a blog post.
type CreateBlogRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	AuthorID  string `json:"authorId" binding:"required"`
	Published bool   `json:"published"`
}

// UpdateBlogRequest is the payload for rewriting a blog post.
type UpdateBlogRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published bool   `json:"published"`
}

// BlogService handles blog post CRUD.
type BlogService struct {
	blogs    BlogStore
	renderer *markdown.Renderer
}

// NewBlogService constructs a BlogService.
func NewBlogService(blogs BlogStore, renderer *markdown.Renderer) *BlogService {
	return &BlogService{blogs: blogs, renderer: renderer}
}

// List returns a page of blog posts and the pagination metadata for the
// filter.
func (s *BlogService) List(filter ListFilter) ([]models.Blog, utils.Pagination, error) {
	blogs, total, err := s.blogs.List(filter.Search, filter.Published, filter.Page, filter.Limit)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return blogs, utils.NewPagination(total, filter.Page, filter.Limit), nil
}

// Get returns one blog post. When rendered is set, the markdown content is
// converted to sanitized HTML in ContentHTML.
func (s *BlogService) Get(id string, rendered bool) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	if rendered {
		html, err := s.renderer.Render(blog.Content)
		if err != nil {
			log.Error().Err(err).Str("blog_id", id).Msg("Markdown render failed")
		} else {
			blog.ContentHTML = html
		}
	}
	return blog, nil
}

// Create stores a new blog post.
func (s *BlogService) Create(req *CreateBlogRequest) (*models.Blog, error) {
	blog := &models.Blog{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
		AuthorID:  req.AuthorID,
	}
	if err := s.blogs.Create(blog); err != nil {
		return nil, err
	}
	// Re-read to attach the author summary.
	return s.Get(blog.ID, false)
}

// Update rewrites an existing blog post.
func (s *BlogService) Update(id string, req *UpdateBlogRequest) (*models.Blog, error) {
	blog, err := s.Get(id, false)
	if err != nil {
		return nil, err
	}
	blog.Title = req.Title
	blog.Content = req.Content
	blog.Published = req.Published
	if err := s.blogs.Update(blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return blog, nil
}

// Delete removes a blog post.
func (s *BlogService) Delete(id string) error {
	if err := s.blogs.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	return nil
}
