package service

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/FanSt3/naturale-api/internal/models"
	"github.com/FanSt3/naturale-api/internal/utils"
)

// BcryptCost is the fixed bcrypt work factor used for all password hashes.
const BcryptCost = 10

// MinPasswordLength is the minimum accepted password length; enforced by the
// callers that accept new passwords, not by the hasher itself.
const MinPasswordLength = 8

// AuthService implements login, session resolution, and password change.
type AuthService struct {
	users  UserStore
	tokens *utils.TokenManager
}

// NewAuthService constructs an AuthService.
func NewAuthService(users UserStore, tokens *utils.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password both come back as ErrInvalidCredentials so the response
// never leaks whether an account exists.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	log.Debug().Str("email", email).Msg("Login attempt")

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("email", email).Msg("Failed to get user by email")
		}
		return nil, "", utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Debug().Str("email", email).Msg("Password verification failed")
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	log.Info().Str("email", email).Msg("Login successful")
	return user, token, nil
}

// CurrentUser resolves a session token to its user. Every failure (missing
// token, bad signature, expiry, deleted user) returns nil; callers treat nil
// uniformly as "not logged in".
func (s *AuthService) CurrentUser(token string) *models.User {
	if token == "" {
		return nil
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}
	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

// ChangePassword verifies the current password and stores a hash of the new
// one, clearing the first-login flag. Previously issued tokens stay valid
// until natural expiry.
func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return utils.ErrInvalidCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), BcryptCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(userID, string(hash)); err != nil {
		return err
	}

	log.Info().Str("user_id", userID).Msg("Password changed")
	return nil
}
