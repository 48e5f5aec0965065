package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/FanSt3/naturale-api/internal/models"
)

// ActivityRepository handles data access for activities.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns a page of activities newest first plus the total count for the
// same filter. Search is OR-matched over title and content.
func (r *ActivityRepository) List(search string, published *bool, page, limit int) ([]models.Activity, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	const baseWhere = `WHERE ($1 = '' OR a.title ILIKE '%' || $1 || '%' OR a.content ILIKE '%' || $1 || '%')
        AND ($2::boolean IS NULL OR a.published = $2)`

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM activities a `+baseWhere, search, published); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Queryx(`
        SELECT a.id, a.title, a.content, a.image, a.published, a.author_id, a.created_at, a.updated_at,
               u.id, u.name
        FROM activities a
        JOIN users u ON u.id = a.author_id `+baseWhere+`
        ORDER BY a.created_at DESC LIMIT $3 OFFSET $4`, search, published, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var act models.Activity
		var author models.Author
		if err := rows.Scan(
			&act.ID, &act.Title, &act.Content, &act.Image, &act.Published, &act.AuthorID,
			&act.CreatedAt, &act.UpdatedAt,
			&author.ID, &author.Name,
		); err != nil {
			return nil, 0, err
		}
		act.Author = &author
		activities = append(activities, act)
	}
	return activities, total, rows.Err()
}

// GetByID returns a single activity with its author summary.
func (r *ActivityRepository) GetByID(id string) (*models.Activity, error) {
	row := r.db.QueryRowx(`
        SELECT a.id, a.title, a.content, a.image, a.published, a.author_id, a.created_at, a.updated_at,
               u.id, u.name
        FROM activities a
        JOIN users u ON u.id = a.author_id
        WHERE a.id = $1`, id)

	var act models.Activity
	var author models.Author
	if err := row.Scan(
		&act.ID, &act.Title, &act.Content, &act.Image, &act.Published, &act.AuthorID,
		&act.CreatedAt, &act.UpdatedAt,
		&author.ID, &author.Name,
	); err != nil {
		return nil, err
	}
	act.Author = &author
	return &act, nil
}

// Create inserts a new activity.
func (r *ActivityRepository) Create(activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	query := `
		INSERT INTO activities (id, title, content, image, published, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowx(query,
		activity.ID, activity.Title, activity.Content, activity.Image, activity.Published, activity.AuthorID,
	).Scan(&activity.CreatedAt, &activity.UpdatedAt)
}

// Update rewrites title, content, image, and published for an existing activity.
func (r *ActivityRepository) Update(activity *models.Activity) error {
	query := `
		UPDATE activities SET title = $1, content = $2, image = $3, published = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`
	return r.db.QueryRowx(query,
		activity.Title, activity.Content, activity.Image, activity.Published, activity.ID,
	).Scan(&activity.UpdatedAt)
}

// Delete removes an activity by id.
func (r *ActivityRepository) Delete(id string) error {
	return deleteByID(r.db, "activities", id)
}

// Count returns the number of activities.
func (r *ActivityRepository) Count() (int, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(1) FROM activities`); err != nil {
		return 0, err
	}
	return n, nil
}
