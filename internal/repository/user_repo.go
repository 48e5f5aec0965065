package repository

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/FanSt3/naturale-api/internal/models"
)

// UserRepository provides data access methods for the users table.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password, first_login, created_at, updated_at`

// GetByEmail finds a user by email.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID finds a user by id.
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetFirst returns the oldest user in the store.
func (r *UserRepository) GetFirst() (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `SELECT `+userColumns+` FROM users ORDER BY created_at ASC LIMIT 1`)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first.
func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Select(&users, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a new user. A fresh id is assigned when the caller left it
// empty; created_at and updated_at come back from the database.
func (r *UserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	query := `
		INSERT INTO users (id, name, email, password, first_login)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowx(query, user.ID, user.Name, user.Email, user.Password, user.FirstLogin).
		Scan(&user.CreatedAt, &user.UpdatedAt)
}

// UpdatePassword stores a new password hash and clears the first-login flag.
func (r *UserRepository) UpdatePassword(id, hash string) error {
	res, err := r.db.Exec(`
		UPDATE users SET password = $1, first_login = false, updated_at = now()
		WHERE id = $2
	`, hash, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a user by id.
func (r *UserRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Count returns the number of users in the store.
func (r *UserRepository) Count() (int, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(1) FROM users`); err != nil {
		return 0, err
	}
	return n, nil
}
