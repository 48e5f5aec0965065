package service

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FanSt3/naturale-api/internal/models"
)

// In-memory store fakes. They mirror the repository contract: absent rows
// come back as sql.ErrNoRows, Create fills in the id and timestamps.

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*models.User)}
	for _, u := range users {
		_ = s.Create(u)
	}
	return s
}

func (s *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeUserStore) GetByID(id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) GetFirst() (*models.User, error) {
	users, _ := s.List()
	if len(users) == 0 {
		return nil, sql.ErrNoRows
	}
	oldest := users[len(users)-1]
	return &oldest, nil
}

func (s *fakeUserStore) List() ([]models.User, error) {
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeUserStore) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.UpdatedAt = user.CreatedAt
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) UpdatePassword(id, hash string) error {
	u, ok := s.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.Password = hash
	u.FirstLogin = false
	u.UpdatedAt = time.Now()
	return nil
}

func (s *fakeUserStore) Delete(id string) error {
	if _, ok := s.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) Count() (int, error) {
	return len(s.users), nil
}

type fakeBlogStore struct {
	blogs map[string]*models.Blog
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: make(map[string]*models.Blog)}
}

func (s *fakeBlogStore) List(search string, published *bool, page, limit int) ([]models.Blog, int, error) {
	matched := make([]models.Blog, 0)
	for _, b := range s.blogs {
		if search != "" && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(b.Content), strings.ToLower(search)) {
			continue
		}
		if published != nil && b.Published != *published {
			continue
		}
		matched = append(matched, *b)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := len(matched)
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= total {
		return []models.Blog{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (s *fakeBlogStore) GetByID(id string) (*models.Blog, error) {
	b, ok := s.blogs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *b
	return &cp, nil
}

func (s *fakeBlogStore) Create(blog *models.Blog) error {
	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = blog.CreatedAt
	cp := *blog
	s.blogs[blog.ID] = &cp
	return nil
}

func (s *fakeBlogStore) Update(blog *models.Blog) error {
	if _, ok := s.blogs[blog.ID]; !ok {
		return sql.ErrNoRows
	}
	blog.UpdatedAt = time.Now()
	cp := *blog
	s.blogs[blog.ID] = &cp
	return nil
}

func (s *fakeBlogStore) Delete(id string) error {
	if _, ok := s.blogs[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.blogs, id)
	return nil
}

type fakeActivityStore struct {
	activities map[string]*models.Activity
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{activities: make(map[string]*models.Activity)}
}

func (s *fakeActivityStore) List(search string, published *bool, page, limit int) ([]models.Activity, int, error) {
	matched := make([]models.Activity, 0)
	for _, a := range s.activities {
		if search != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(a.Content), strings.ToLower(search)) {
			continue
		}
		if published != nil && a.Published != *published {
			continue
		}
		matched = append(matched, *a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := len(matched)
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= total {
		return []models.Activity{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (s *fakeActivityStore) GetByID(id string) (*models.Activity, error) {
	a, ok := s.activities[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *a
	return &cp, nil
}

func (s *fakeActivityStore) Create(activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	activity.CreatedAt = time.Now()
	activity.UpdatedAt = activity.CreatedAt
	cp := *activity
	s.activities[activity.ID] = &cp
	return nil
}

func (s *fakeActivityStore) Update(activity *models.Activity) error {
	if _, ok := s.activities[activity.ID]; !ok {
		return sql.ErrNoRows
	}
	activity.UpdatedAt = time.Now()
	cp := *activity
	s.activities[activity.ID] = &cp
	return nil
}

func (s *fakeActivityStore) Delete(id string) error {
	if _, ok := s.activities[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.activities, id)
	return nil
}

type fakeTeamMemberStore struct {
	members map[string]*models.TeamMember
}

func newFakeTeamMemberStore() *fakeTeamMemberStore {
	return &fakeTeamMemberStore{members: make(map[string]*models.TeamMember)}
}

func (s *fakeTeamMemberStore) List(search string, page, limit int) ([]models.TeamMember, int, error) {
	matched := make([]models.TeamMember, 0)
	for _, m := range s.members {
		if search != "" && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(m.Position), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(m.Description), strings.ToLower(search)) {
			continue
		}
		matched = append(matched, *m)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := len(matched)
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= total {
		return []models.TeamMember{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (s *fakeTeamMemberStore) GetByID(id string) (*models.TeamMember, error) {
	m, ok := s.members[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *m
	return &cp, nil
}

func (s *fakeTeamMemberStore) Create(member *models.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.CreatedAt = time.Now()
	member.UpdatedAt = member.CreatedAt
	cp := *member
	s.members[member.ID] = &cp
	return nil
}

func (s *fakeTeamMemberStore) Update(member *models.TeamMember) error {
	if _, ok := s.members[member.ID]; !ok {
		return sql.ErrNoRows
	}
	member.UpdatedAt = time.Now()
	cp := *member
	s.members[member.ID] = &cp
	return nil
}

func (s *fakeTeamMemberStore) Delete(id string) error {
	if _, ok := s.members[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.members, id)
	return nil
}

type fakeMailer struct {
	configured bool
	sendErr    error
	sent       []string
}

func (m *fakeMailer) Configured() bool { return m.configured }

func (m *fakeMailer) SendWelcome(_ context.Context, _, email, _ string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, email)
	return nil
}
