package ports

import (
	"context"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

// UserRepository defines the persistence boundary for user accounts.
// Lookups return domain.ErrUserNotFound when nothing matches; connection and
// query failures wrap domain.ErrStorageUnavailable. Nothing is retried.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.UserAccount, error)
	FindByEmail(ctx context.Context, email string) (*domain.UserAccount, error)
	FindByID(ctx context.Context, id int64) (*domain.UserAccount, error)
	// Insert stores user and returns the assigned id. user.ID is set on success.
	Insert(ctx context.Context, user *domain.UserAccount) (int64, error)
	// Update rewrites the mutable fields (username, email, password hash, phone, address).
	Update(ctx context.Context, user *domain.UserAccount) error
	Delete(ctx context.Context, id int64) error
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.UserAccount, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PasswordHasher is the one-way credential hasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns false on mismatch and domain.ErrInvalidCredentialFormat when
	// digest cannot be read.
	Verify(plaintext, digest string) (bool, error)
}
