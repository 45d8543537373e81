package domain

import (
	"strings"
	"time"
)

// Role is the single role tag carried by every account.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleTrainer Role = "Trainer"
	RoleMember  Role = "Member"
)

var roles = []Role{RoleAdmin, RoleTrainer, RoleMember}

// ParseRole matches s case-insensitively against the known roles and returns
// the canonical casing.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, r := range roles {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}

// UserAccount models an authenticated actor in the gym.
type UserAccount struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Clone returns a shallow copy so callers can mutate without touching a shared value.
func (u *UserAccount) Clone() *UserAccount {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
