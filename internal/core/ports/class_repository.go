package ports

import (
	"context"
	"time"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

// ClassRepository defines persistence operations for workout classes.
// Missing rows return domain.ErrClassNotFound.
type ClassRepository interface {
	Insert(ctx context.Context, class *domain.WorkoutClass) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.WorkoutClass, error)
	ListByTrainer(ctx context.Context, trainerID int64) ([]*domain.WorkoutClass, error)
	// ListScheduledAfter returns classes starting at or after from, earliest first.
	ListScheduledAfter(ctx context.Context, from time.Time) ([]*domain.WorkoutClass, error)
	Update(ctx context.Context, class *domain.WorkoutClass) error
	Delete(ctx context.Context, id int64) error
}
