package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcdev12/zodiarena/go/internal/models"
)

// UsersRepository defines the persistence operations the app layer needs.
type UsersRepository interface {
	CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// App handles user business logic: credential validation, password
// policy enforcement and hashing.
type App struct {
	repo UsersRepository
}

func NewApp(repo UsersRepository) *App {
	return &App{repo: repo}
}

const specialRunes = `!@#$%^&*(),.?":{}|<>`

// validatePassword enforces the registration password policy: at least
// eight characters with an uppercase letter, a lowercase letter, a digit
// and a special character.
func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialRunes, r):
			hasSpecial = true
		}
	}
	switch {
	case !hasUpper:
		return errors.New("password must contain an uppercase letter")
	case !hasLower:
		return errors.New("password must contain a lowercase letter")
	case !hasDigit:
		return errors.New("password must contain a digit")
	case !hasSpecial:
		return errors.New("password must contain a special character")
	}
	return nil
}

// Register creates a new user with a bcrypt-hashed password. The password
// must satisfy the policy; the username must not already exist.
func (a *App) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrMissingFields
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.repo.CreateUser(ctx, CreateUserParams{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return err
	}

	log.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("registered user")
	return nil
}

// Authenticate verifies a username/password pair against the stored hash.
// Unknown usernames and wrong passwords both map to ErrInvalidCredentials.
func (a *App) Authenticate(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrMissingFields
	}

	user, err := a.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
