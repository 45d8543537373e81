package domain

import (
	"errors"
	"time"
)

var (
	ErrClassNotFound = errors.New("workout class not found")
	ErrInvalidClass  = errors.New("invalid workout class")
)

// WorkoutClass is a scheduled session owned by a single trainer.
type WorkoutClass struct {
	ID              int64     `json:"id"`
	TrainerID       int64     `json:"trainer_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Capacity        int       `json:"capacity"`
	CreatedAt       time.Time `json:"created_at"`
}

// OwnedBy reports whether trainerID owns the class.
func (c *WorkoutClass) OwnedBy(trainerID int64) bool {
	return c.TrainerID == trainerID
}

// Validate checks the fields a trainer must supply.
func (c *WorkoutClass) Validate() error {
	switch {
	case c.Name == "":
		return errors.Join(ErrInvalidClass, errors.New("name is required"))
	case c.ScheduledAt.IsZero():
		return errors.Join(ErrInvalidClass, errors.New("scheduled_at is required"))
	case c.DurationMinutes <= 0:
		return errors.Join(ErrInvalidClass, errors.New("duration_minutes must be greater than 0"))
	case c.Capacity <= 0:
		return errors.Join(ErrInvalidClass, errors.New("capacity must be greater than 0"))
	}
	return nil
}
