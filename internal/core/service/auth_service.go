package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	validator *RegistrationValidator
	audit     auditTrail
	log       zerolog.Logger

	// dummyDigest is verified against when the username is unknown so both
	// failure paths cost one hash comparison.
	dummyDigest string
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, audit ports.AuditRepository, log zerolog.Logger) *AuthService {
	dummy, err := hasher.Hash("gym-system/unknown-account")
	if err != nil {
		log.Warn().Err(err).Msg("could not prepare dummy digest")
	}
	return &AuthService{
		users:       users,
		hasher:      hasher,
		validator:   NewRegistrationValidator(users),
		audit:       newAuditTrail(audit, log),
		log:         log,
		dummyDigest: dummy,
	}
}

// Register validates, hashes and stores a new account. A rejected registration
// never reaches the hasher or the repository write.
func (s *AuthService) Register(ctx context.Context, in ports.RegistrationInput) (*domain.UserAccount, error) {
	reg, err := s.validator.Validate(ctx, in)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.UserAccount{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
		Phone:        reg.Phone,
		Address:      reg.Address,
		Role:         reg.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.users.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.audit.record(ctx, domain.AuditUserRegistered, user.ID, user.ID, string(user.Role))
	s.log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")

	return user, nil
}

// Login returns the account for username when password matches. An unknown
// username and a wrong password yield the same domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.UserAccount, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		_, _ = s.hasher.Verify(password, s.dummyDigest)
		s.audit.record(ctx, domain.AuditLoginFailed, 0, 0, "unknown account")
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", user.ID).Msg("stored password digest is unreadable")
		return nil, fmt.Errorf("login: %w", err)
	}
	if !ok {
		s.audit.record(ctx, domain.AuditLoginFailed, 0, user.ID, "password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
