package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/FanSt3/naturale-api/internal/models"
	"github.com/FanSt3/naturale-api/internal/utils"
)

// Warnings returned alongside a successfully created administrator when the
// welcome email could not go out. Creation itself never fails on mail errors.
const (
	WarnSMTPNotConfigured = "SMTP nije konfigurisan, email obaveštenje nije poslato"
	WarnEmailNotSent      = "Korisnik je kreiran, ali email obaveštenje nije poslato"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// WelcomeMailer sends the credentials email for new administrators.
type WelcomeMailer interface {
	Configured() bool
	SendWelcome(ctx context.Context, name, email, password string) error
}

// AdministratorService manages administrator accounts.
type AdministratorService struct {
	users  UserStore
	mailer WelcomeMailer
}

// NewAdministratorService constructs an AdministratorService.
func NewAdministratorService(users UserStore, mailer WelcomeMailer) *AdministratorService {
	return &AdministratorService{users: users, mailer: mailer}
}

// List returns all administrators, newest first.
func (s *AdministratorService) List() ([]models.User, error) {
	return s.users.List()
}

// Get returns a single administrator by id.
func (s *AdministratorService) Get(id string) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// First returns the oldest administrator account. The panel uses it to fill
// in the author when creating content.
func (s *AdministratorService) First() (*models.User, error) {
	user, err := s.users.GetFirst()
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Count returns the number of administrator accounts.
func (s *AdministratorService) Count() (int, error) {
	return s.users.Count()
}

// Create validates input, stores a new administrator with first_login set,
// and attempts to send the welcome email. The returned warning is non-empty
// when the account was created but the email did not go out.
func (s *AdministratorService) Create(ctx context.Context, name, email, password string) (*models.User, string, error) {
	// Email format is checked first, so an absent email reports as a format
	// error rather than a missing field.
	if !emailPattern.MatchString(email) {
		return nil, "", utils.ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return nil, "", utils.ErrPasswordTooShort
	}
	if name == "" {
		return nil, "", utils.ErrMissingFields
	}

	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, "", utils.ErrDuplicateEmail
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:       name,
		Email:      email,
		Password:   string(hash),
		FirstLogin: true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}
	log.Info().Str("email", email).Str("user_id", user.ID).Msg("Administrator created")

	if !s.mailer.Configured() {
		log.Warn().Msg("SMTP not configured, welcome email skipped")
		return user, WarnSMTPNotConfigured, nil
	}
	if err := s.mailer.SendWelcome(ctx, name, email, password); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to send welcome email")
		return user, WarnEmailNotSent, nil
	}

	return user, "", nil
}

// Delete removes an administrator. Deleting the last remaining account is
// rejected so the panel can never lock itself out.
func (s *AdministratorService) Delete(id string) error {
	count, err := s.users.Count()
	if err != nil {
		return err
	}
	if count <= 1 {
		return utils.ErrLastAdministrator
	}

	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	log.Info().Str("user_id", id).Msg("Administrator deleted")
	return nil
}
