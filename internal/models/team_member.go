package models

import "time"

// TeamMember is a person shown on the public team page. There is no publish
// flag: members are visible as soon as they are created.
type TeamMember struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Position    string    `db:"position" json:"position"`
	Description string    `db:"description" json:"description"`
	Image       *string   `db:"image" json:"image"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
