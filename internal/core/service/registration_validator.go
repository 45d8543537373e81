package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

const minPasswordLength = 8

// RegistrationValidator runs the uniqueness and password-policy checks that must
// pass before anything is hashed or written. It only reads from the repository.
type RegistrationValidator struct {
	users ports.UserRepository
}

func NewRegistrationValidator(users ports.UserRepository) *RegistrationValidator {
	return &RegistrationValidator{users: users}
}

// Validate checks, in order and stopping at the first failure: username,
// email, password length, digit, symbol, role.
func (v *RegistrationValidator) Validate(ctx context.Context, in ports.RegistrationInput) (*ports.ValidatedRegistration, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if err := v.checkUsername(ctx, username); err != nil {
		return nil, err
	}
	if err := v.checkEmail(ctx, email); err != nil {
		return nil, err
	}
	if err := CheckPasswordPolicy(in.Password); err != nil {
		return nil, err
	}
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	return &ports.ValidatedRegistration{
		Username: username,
		Email:    email,
		Password: in.Password,
		Role:     role,
		Phone:    strings.TrimSpace(in.Phone),
		Address:  strings.TrimSpace(in.Address),
	}, nil
}

func (v *RegistrationValidator) checkUsername(ctx context.Context, username string) error {
	if username == "" {
		return domain.ErrUsernameTaken
	}
	taken, err := v.users.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return domain.ErrUsernameTaken
	}
	return nil
}

func (v *RegistrationValidator) checkEmail(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrEmailTaken
	}
	taken, err := v.users.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return domain.ErrEmailTaken
	}
	return nil
}

// CheckPasswordPolicy enforces length >= 8 runes, at least one digit and at
// least one symbol. Whitespace does not count as a symbol.
func CheckPasswordPolicy(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return domain.ErrPasswordTooShort
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return domain.ErrPasswordMissingDigit
	}
	if !strings.ContainsFunc(password, isSymbol) {
		return domain.ErrPasswordMissingSymbol
	}
	return nil
}

func isSymbol(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}
