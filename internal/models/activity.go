package models

import "time"

// Activity is an outreach event (workshop, visit, lecture). Identical to a
// blog post plus an optional image reference.
type Activity struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Image     *string   `db:"image" json:"image"`
	Published bool      `db:"published" json:"published"`
	AuthorID  string    `db:"author_id" json:"authorId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	Author      *Author `db:"-" json:"author,omitempty"`
	ContentHTML string  `db:"-" json:"contentHtml,omitempty"`
}
