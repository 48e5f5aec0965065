package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/FanSt3/naturale-api/internal/models"
	"github.com/FanSt3/naturale-api/internal/service"
)

// In-memory store fakes mirroring the repository contract, so handler tests
// run without Postgres.

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
		if search != "" && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(search)) {
			continue
		}
		if published != nil && b.Published != *published {
			continue
		}
		matched = append(matched, *b)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return matched, len(matched), nil
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

type fakeMailer struct {
	configured bool
	sendErr    error
}

func (m *fakeMailer) Configured() bool { return m.configured }

func (m *fakeMailer) SendWelcome(context.Context, string, string, string) error {
	return m.sendErr
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.BcryptCost)
	require.NoError(t, err)
	return string(hash)
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func init() {
	gin.SetMode(gin.TestMode)
}
