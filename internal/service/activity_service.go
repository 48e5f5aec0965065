package service

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/FanSt3/naturale-api/internal/markdown"
	"github.com/FanSt3/naturale-api/internal/models"
	"github.com/FanSt3/naturale-api/internal/utils"
)

// CreateActivityRequest is the payload for creating an activity.
type CreateActivityRequest struct {
	Title     string  `json:"title" binding:"required"`
	Content   string  `json:"content" binding:"required"`
	AuthorID  string  `json:"authorId" binding:"required"`
	Image     *string `json:"image"`
	Published bool    `json:"published"`
}

// UpdateActivityRequest is the payload for rewriting an activity.
type UpdateActivityRequest struct {
	Title     string  `json:"title" binding:"required"`
	Content   string  `json:"content" binding:"required"`
	Image     *string `json:"image"`
	Published bool    `json:"published"`
}

// ActivityService handles activity CRUD.
type ActivityService struct {
	activities ActivityStore
	renderer   *markdown.Renderer
}

// NewActivityService constructs an ActivityService.
func NewActivityService(activities ActivityStore, renderer *markdown.Renderer) *ActivityService {
	return &ActivityService{activities: activities, renderer: renderer}
}

// List returns a page of activities and the pagination metadata for the
// filter.
func (s *ActivityService) List(filter ListFilter) ([]models.Activity, utils.Pagination, error) {
	activities, total, err := s.activities.List(filter.Search, filter.Published, filter.Page, filter.Limit)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return activities, utils.NewPagination(total, filter.Page, filter.Limit), nil
}

// Get returns one activity, optionally with rendered markdown in ContentHTML.
func (s *ActivityService) Get(id string, rendered bool) (*models.Activity, error) {
	activity, err := s.activities.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	if rendered {
		html, err := s.renderer.Render(activity.Content)
		if err != nil {
			log.Error().Err(err).Str("activity_id", id).Msg("Markdown render failed")
		} else {
			activity.ContentHTML = html
		}
	}
	return activity, nil
}

// Create stores a new activity.
func (s *ActivityService) Create(req *CreateActivityRequest) (*models.Activity, error) {
	activity := &models.Activity{
		Title:     req.Title,
		Content:   req.Content,
		Image:     req.Image,
		Published: req.Published,
		AuthorID:  req.AuthorID,
	}
	if err := s.activities.Create(activity); err != nil {
		return nil, err
	}
	return s.Get(activity.ID, false)
}

// Update rewrites an existing activity.
func (s *ActivityService) Update(id string, req *UpdateActivityRequest) (*models.Activity, error) {
	activity, err := s.Get(id, false)
	if err != nil {
		return nil, err
	}
	activity.Title = req.Title
	activity.Content = req.Content
	activity.Image = req.Image
	activity.Published = req.Published
	if err := s.activities.Update(activity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return activity, nil
}

// Delete removes an activity.
func (s *ActivityService) Delete(id string) error {
	if err := s.activities.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	return nil
}
