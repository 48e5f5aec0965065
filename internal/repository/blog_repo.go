package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/FanSt3/naturale-api/internal/models"
)

// BlogRepository handles data access for blog posts.
type BlogRepository struct {
	db *sqlx.DB
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *sqlx.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// List returns a page of blog posts newest first, together with the total
// count for the same filter. The search term is OR-matched as a substring
// over title and content; published narrows to the public set when non-nil.
func (r *BlogRepository) List(search string, published *bool, page, limit int) ([]models.Blog, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	const baseWhere = `WHERE ($1 = '' OR b.title ILIKE '%' || $1 || '%' OR b.content ILIKE '%' || $1 || '%')
        AND ($2::boolean IS NULL OR b.published = $2)`

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM blogs b `+baseWhere, search, published); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Queryx(`
        SELECT b.id, b.title, b.content, b.published, b.author_id, b.created_at, b.updated_at,
               u.id, u.name
        FROM blogs b
        JOIN users u ON u.id = b.author_id `+baseWhere+`
        ORDER BY b.created_at DESC LIMIT $3 OFFSET $4`, search, published, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		var b models.Blog
		var a models.Author
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Content, &b.Published, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
			&a.ID, &a.Name,
		); err != nil {
			return nil, 0, err
		}
		b.Author = &a
		blogs = append(blogs, b)
	}
	return blogs, total, rows.Err()
}

// GetByID returns a single blog post with its author summary.
func (r *BlogRepository) GetByID(id string) (*models.Blog, error) {
	row := r.db.QueryRowx(`
        SELECT b.id, b.title, b.content, b.published, b.author_id, b.created_at, b.updated_at,
               u.id, u.name
        FROM blogs b
        JOIN users u ON u.id = b.author_id
        WHERE b.id = $1`, id)

	var b models.Blog
	var a models.Author
	if err := row.Scan(
		&b.ID, &b.Title, &b.Content, &b.Published, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
		&a.ID, &a.Name,
	); err != nil {
		return nil, err
	}
	b.Author = &a
	return &b, nil
}

// Create inserts a new blog post.
func (r *BlogRepository) Create(blog *models.Blog) error {
	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	query := `
		INSERT INTO blogs (id, title, content, published, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowx(query, blog.ID, blog.Title, blog.Content, blog.Published, blog.AuthorID).
		Scan(&blog.CreatedAt, &blog.UpdatedAt)
}

// Update rewrites title, content, and published for an existing post.
func (r *BlogRepository) Update(blog *models.Blog) error {
	query := `
		UPDATE blogs SET title = $1, content = $2, published = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`
	return r.db.QueryRowx(query, blog.Title, blog.Content, blog.Published, blog.ID).
		Scan(&blog.UpdatedAt)
}

// Delete removes a blog post by id.
func (r *BlogRepository) Delete(id string) error {
	return deleteByID(r.db, "blogs", id)
}

// Count returns the number of blog posts.
func (r *BlogRepository) Count() (int, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(1) FROM blogs`); err != nil {
		return 0, err
	}
	return n, nil
}
