package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/FanSt3/naturale-api/internal/models"
)

// TeamMemberRepository handles data access for team members.
type TeamMemberRepository struct {
	db *sqlx.DB
}

// NewTeamMemberRepository creates a new TeamMemberRepository.
func NewTeamMemberRepository(db *sqlx.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

const teamMemberColumns = `id, name, position, description, image, created_at, updated_at`

// List returns a page of team members newest first plus the total count for
// the same filter. Search is OR-matched over name, position, and description.
func (r *TeamMemberRepository) List(search string, page, limit int) ([]models.TeamMember, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	const baseWhere = `WHERE ($1 = '' OR name ILIKE '%' || $1 || '%'
        OR position ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')`

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM team_members `+baseWhere, search); err != nil {
		return nil, 0, err
	}

	var members []models.TeamMember
	err := r.db.Select(&members, `SELECT `+teamMemberColumns+` FROM team_members `+baseWhere+`
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// GetByID returns a single team member.
func (r *TeamMemberRepository) GetByID(id string) (*models.TeamMember, error) {
	var m models.TeamMember
	err := r.db.Get(&m, `SELECT `+teamMemberColumns+` FROM team_members WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new team member.
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	query := `
		INSERT INTO team_members (id, name, position, description, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowx(query,
		member.ID, member.Name, member.Position, member.Description, member.Image,
	).Scan(&member.CreatedAt, &member.UpdatedAt)
}

// Update rewrites all editable fields of an existing team member.
func (r *TeamMemberRepository) Update(member *models.TeamMember) error {
	query := `
		UPDATE team_members SET name = $1, position = $2, description = $3, image = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`
	return r.db.QueryRowx(query,
		member.Name, member.Position, member.Description, member.Image, member.ID,
	).Scan(&member.UpdatedAt)
}

// Delete removes a team member by id.
func (r *TeamMemberRepository) Delete(id string) error {
	return deleteByID(r.db, "team_members", id)
}

// Count returns the number of team members.
func (r *TeamMemberRepository) Count() (int, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(1) FROM team_members`); err != nil {
		return 0, err
	}
	return n, nil
}
