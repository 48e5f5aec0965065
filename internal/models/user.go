package models

import "time"

// User is an administrator account for the panel. Every user in this system
// has full admin access; there are no roles.
type User struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Password   string    `db:"password" json:"-"`
	FirstLogin bool      `db:"first_login" json:"firstLogin"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// Author is the subset of User attached to blog and activity responses.
type Author struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
