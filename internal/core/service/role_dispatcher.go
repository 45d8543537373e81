package service

import (
	"fmt"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

var capabilityTable = map[domain.Role][]domain.Capability{
	domain.RoleAdmin: {
		domain.CapManageTrainers,
		domain.CapDeleteAnyClass,
		domain.CapViewRevenue,
		domain.CapBrowseClasses,
	},
	domain.RoleTrainer: {
		domain.CapManageOwnClasses,
		domain.CapBrowseClasses,
	},
	domain.RoleMember: {
		domain.CapManageOwnMemberships,
		domain.CapBrowseClasses,
	},
}

// RoleDispatcher is the pure mapping from role to capability set.
type RoleDispatcher struct{}

func NewRoleDispatcher() *RoleDispatcher {
	return &RoleDispatcher{}
}

// CapabilitiesFor never falls back to another role's set: a role outside the
// table is a data-integrity violation and returns domain.ErrUnknownRole.
func (d *RoleDispatcher) CapabilitiesFor(role domain.Role) (domain.CapabilitySet, error) {
	caps, ok := capabilityTable[role]
	if !ok {
		return domain.CapabilitySet{}, fmt.Errorf("%w: %q", domain.ErrUnknownRole, string(role))
	}
	return domain.NewCapabilitySet(role, caps...), nil
}
