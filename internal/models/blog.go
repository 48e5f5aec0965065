package models

import "time"

// Blog is a markdown post shown on the public blog when published.
type Blog struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Published bool      `db:"published" json:"published"`
	AuthorID  string    `db:"author_id" json:"authorId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	// Joined author summary; not a column.
	Author *Author `db:"-" json:"author,omitempty"`
	// ContentHTML is the rendered markdown, filled for single-item reads.
	ContentHTML string `db:"-" json:"contentHtml,omitempty"`
}
