package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

type ClassService struct {
	repo   ports.ClassRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewClassService(repo ports.ClassRepository, logger zerolog.Logger) *ClassService {
	return &ClassService{repo: repo, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// CreateClass schedules a class owned by trainer.
func (s *ClassService) CreateClass(ctx context.Context, trainer *domain.UserAccount, in ports.ClassInput) (*domain.WorkoutClass, error) {
	if trainer == nil || trainer.Role != domain.RoleTrainer {
		return nil, domain.ErrForbidden
	}

	class := &domain.WorkoutClass{
		TrainerID:       trainer.ID,
		Name:            strings.TrimSpace(in.Name),
		Description:     strings.TrimSpace(in.Description),
		ScheduledAt:     in.ScheduledAt.UTC(),
		DurationMinutes: in.DurationMinutes,
		Capacity:        in.Capacity,
		CreatedAt:       s.now(),
	}
	if err := class.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.Insert(ctx, class); err != nil {
		s.logger.Error().Err(err).Msg("failed to create class")
		return nil, err
	}

	s.logger.Info().Int64("class_id", class.ID).Int64("trainer_id", trainer.ID).Msg("class created")
	return class, nil
}

func (s *ClassService) ListOwnClasses(ctx context.Context, trainer *domain.UserAccount) ([]*domain.WorkoutClass, error) {
	if trainer == nil {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByTrainer(ctx, trainer.ID)
}

// UpdateOwnClass changes the supplied fields of a class trainer owns.
func (s *ClassService) UpdateOwnClass(ctx context.Context, trainer *domain.UserAccount, id int64, in ports.ClassInput) (*domain.WorkoutClass, error) {
	class, err := s.ownedClass(ctx, trainer, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		class.Name = name
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		class.Description = desc
	}
	if !in.ScheduledAt.IsZero() {
		class.ScheduledAt = in.ScheduledAt.UTC()
	}
	if in.DurationMinutes != 0 {
		class.DurationMinutes = in.DurationMinutes
	}
	if in.Capacity != 0 {
		class.Capacity = in.Capacity
	}
	if err := class.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, class); err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}
	return class, nil
}

func (s *ClassService) DeleteOwnClass(ctx context.Context, trainer *domain.UserAccount, id int64) error {
	class, err := s.ownedClass(ctx, trainer, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, class.ID); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	s.logger.Info().Int64("class_id", class.ID).Int64("trainer_id", trainer.ID).Msg("class deleted")
	return nil
}

// ListUpcomingClasses returns every class that has not started yet.
func (s *ClassService) ListUpcomingClasses(ctx context.Context) ([]*domain.WorkoutClass, error) {
	return s.repo.ListScheduledAfter(ctx, s.now())
}

func (s *ClassService) ownedClass(ctx context.Context, trainer *domain.UserAccount, id int64) (*domain.WorkoutClass, error) {
	if trainer == nil {
		return nil, domain.ErrForbidden
	}
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !class.OwnedBy(trainer.ID) {
		return nil, domain.ErrForbidden
	}
	return class, nil
}
