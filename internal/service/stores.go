package service

import "github.com/FanSt3/naturale-api/internal/models"

// Store interfaces consumed by the services. The sqlx repositories in
// internal/repository implement them; tests substitute in-memory fakes.
// Absent rows surface as sql.ErrNoRows, which services translate into the
// shared sentinel errors.

// UserStore is the persistence contract for administrator accounts.
type UserStore interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetFirst() (*models.User, error)
	List() ([]models.User, error)
	Create(user *models.User) error
	UpdatePassword(id, hash string) error
	Delete(id string) error
	Count() (int, error)
}

// BlogStore is the persistence contract for blog posts.
type BlogStore interface {
	List(search string, published *bool, page, limit int) ([]models.Blog, int, error)
	GetByID(id string) (*models.Blog, error)
	Create(blog *models.Blog) error
	Update(blog *models.Blog) error
	Delete(id string) error
}

// ActivityStore is the persistence contract for activities.
type ActivityStore interface {
	List(search string, published *bool, page, limit int) ([]models.Activity, int, error)
	GetByID(id string) (*models.Activity, error)
	Create(activity *models.Activity) error
	Update(activity *models.Activity) error
	Delete(id string) error
}

// TeamMemberStore is the persistence contract for team members.
type TeamMemberStore interface {
	List(search string, page, limit int) ([]models.TeamMember, int, error)
	GetByID(id string) (*models.TeamMember, error)
	Create(member *models.TeamMember) error
	Update(member *models.TeamMember) error
	Delete(id string) error
}
