package ports

import (
	"context"
	"time"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

// ClassInput carries the trainer-editable fields of a workout class.
// On update, zero values keep the stored value.
type ClassInput struct {
	Name            string
	Description     string
	ScheduledAt     time.Time
	DurationMinutes int
	Capacity        int
}

// ClassService defines use-case operations for workout classes.
type ClassService interface {
	CreateClass(ctx context.Context, trainer *domain.UserAccount, in ClassInput) (*domain.WorkoutClass, error)
	ListOwnClasses(ctx context.Context, trainer *domain.UserAccount) ([]*domain.WorkoutClass, error)
	UpdateOwnClass(ctx context.Context, trainer *domain.UserAccount, id int64, in ClassInput) (*domain.WorkoutClass, error)
	DeleteOwnClass(ctx context.Context, trainer *domain.UserAccount, id int64) error
	ListUpcomingClasses(ctx context.Context) ([]*domain.WorkoutClass, error)
}
