package handler

import (
	"time"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

// --- Auth ---

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

func (r registerRequest) toInput() ports.RegistrationInput {
	return ports.RegistrationInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		Phone:    r.Phone,
		Address:  r.Address,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accountResponse struct {
	Account *domain.UserAccount `json:"account"`
}

type loginResponse struct {
	Account      *domain.UserAccount  `json:"account"`
	Capabilities domain.CapabilitySet `json:"capabilities"`
}

// --- Admin ---

type trainerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// trainerUpdateRequest fields are optional; omitted ones keep their value.
type trainerUpdateRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

type trainerListResponse struct {
	Trainers []*domain.UserAccount `json:"trainers"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// --- Classes ---

type classRequest struct {
	Name            string    `json:"name"             validate:"required,max=120"`
	Description     string    `json:"description"      validate:"max=2000"`
	ScheduledAt     time.Time `json:"scheduled_at"     validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"gt=0,lte=480"`
	Capacity        int       `json:"capacity"         validate:"gt=0,lte=500"`
}

func (r classRequest) toInput() ports.ClassInput {
	return ports.ClassInput{
		Name:            r.Name,
		Description:     r.Description,
		ScheduledAt:     r.ScheduledAt,
		DurationMinutes: r.DurationMinutes,
		Capacity:        r.Capacity,
	}
}

type classUpdateRequest struct {
	Name            string    `json:"name,omitempty"             validate:"max=120"`
	Description     string    `json:"description,omitempty"      validate:"max=2000"`
	ScheduledAt     time.Time `json:"scheduled_at,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty" validate:"gte=0,lte=480"`
	Capacity        int       `json:"capacity,omitempty"         validate:"gte=0,lte=500"`
}

func (r classUpdateRequest) toInput() ports.ClassInput {
	return ports.ClassInput{
		Name:            r.Name,
		Description:     r.Description,
		ScheduledAt:     r.ScheduledAt,
		DurationMinutes: r.DurationMinutes,
		Capacity:        r.Capacity,
	}
}

type classListResponse struct {
	Classes []*domain.WorkoutClass `json:"classes"`
}

// --- Memberships ---

type purchaseRequest struct {
	Plan string `json:"plan" validate:"required"`
}

type membershipListResponse struct {
	Memberships []*domain.Membership `json:"memberships"`
}
