package service

import (
	"database/sql"
	"errors"

	"github.com/FanSt3/naturale-api/internal/models"
	"github.com/FanSt3/naturale-api/internal/utils"
)

// CreateTeamMemberRequest is the payload for adding a team member.
type CreateTeamMemberRequest struct {
	Name        string  `json:"name" binding:"required"`
	Position    string  `json:"position" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Image       *string `json:"image"`
}

// UpdateTeamMemberRequest is the payload for rewriting a team member.
type UpdateTeamMemberRequest struct {
	Name        string  `json:"name" binding:"required"`
	Position    string  `json:"position" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Image       *string `json:"image"`
}

// TeamService handles team member CRUD. Team members have no publish flag
// and are publicly visible as soon as they exist.
type TeamService struct {
	members TeamMemberStore
}

// NewTeamService constructs a TeamService.
func NewTeamService(members TeamMemberStore) *TeamService {
	return &TeamService{members: members}
}

// List returns a page of team members and the pagination metadata for the
// filter. The Published field of the filter is ignored.
func (s *TeamService) List(filter ListFilter) ([]models.TeamMember, utils.Pagination, error) {
	members, total, err := s.members.List(filter.Search, filter.Page, filter.Limit)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return members, utils.NewPagination(total, filter.Page, filter.Limit), nil
}

// Get returns one team member.
func (s *TeamService) Get(id string) (*models.TeamMember, error) {
	member, err := s.members.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

// Create stores a new team member.
func (s *TeamService) Create(req *CreateTeamMemberRequest) (*models.TeamMember, error) {
	member := &models.TeamMember{
		Name:        req.Name,
		Position:    req.Position,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := s.members.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}

// Update rewrites an existing team member.
func (s *TeamService) Update(id string, req *UpdateTeamMemberRequest) (*models.TeamMember, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	member.Name = req.Name
	member.Position = req.Position
	member.Description = req.Description
	member.Image = req.Image
	if err := s.members.Update(member); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

// Delete removes a team member.
func (s *TeamService) Delete(id string) error {
	if err := s.members.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	return nil
}
