package ports

import (
	"context"
	"time"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

// RegistrationInput carries the raw fields of a sign-up request.
type RegistrationInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Phone    string
	Address  string
}

// ValidatedRegistration has passed every uniqueness and policy check but has
// not been persisted yet.
type ValidatedRegistration struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
	Phone    string
	Address  string
}

// AuthService is the registration and login surface exposed to adapters.
type AuthService interface {
	Register(ctx context.Context, in RegistrationInput) (*domain.UserAccount, error)
	Login(ctx context.Context, username, password string) (*domain.UserAccount, error)
}

// RoleDispatcher maps a role to its capability set.
type RoleDispatcher interface {
	CapabilitiesFor(role domain.Role) (domain.CapabilitySet, error)
}

// TrainerInput carries the fields for a new trainer account.
type TrainerInput struct {
	Username string
	Email    string
	Password string
	Phone    string
	Address  string
}

// TrainerUpdate is a partial update; empty fields keep their stored value.
type TrainerUpdate struct {
	Username string
	Email    string
	Password string
	Phone    string
	Address  string
}

// DeletionTicket is handed out when an admin asks to delete a trainer and must
// be presented back together with an affirmative answer.
type DeletionTicket struct {
	TrainerID int64     `json:"trainer_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminService holds the admin-only mutations reachable through the
// manage_trainers, delete_any_class and view_revenue capabilities.
type AdminService interface {
	ListTrainers(ctx context.Context) ([]*domain.UserAccount, error)
	AddTrainer(ctx context.Context, actor *domain.UserAccount, in TrainerInput) (*domain.UserAccount, error)
	UpdateTrainer(ctx context.Context, actor *domain.UserAccount, id int64, in TrainerUpdate) (*domain.UserAccount, error)
	RequestTrainerDeletion(ctx context.Context, actor *domain.UserAccount, id int64) (*DeletionTicket, error)
	DeleteTrainer(ctx context.Context, actor *domain.UserAccount, id int64, token, answer string) error
	DeleteAnyClass(ctx context.Context, actor *domain.UserAccount, classID int64) error
	RevenueReport(ctx context.Context) (*domain.RevenueReport, error)
}

// ConfirmationStore keeps pending trainer-deletion tickets.
type ConfirmationStore interface {
	Save(ctx context.Context, trainerID int64, token string, ttl time.Duration) error
	// Consume removes the ticket and reports whether it existed and matched.
	Consume(ctx context.Context, trainerID int64, token string) (bool, error)
}
