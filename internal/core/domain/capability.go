package domain

import (
	"slices"
	"strings"
)

// Capability is a single operation a role is permitted to invoke.
type Capability string

const (
	CapManageTrainers       Capability = "manage_trainers"
	CapDeleteAnyClass       Capability = "delete_any_class"
	CapViewRevenue          Capability = "view_revenue"
	CapManageOwnClasses     Capability = "manage_own_classes"
	CapManageOwnMemberships Capability = "manage_own_memberships"
	CapBrowseClasses        Capability = "browse_classes"
)

// CapabilitySet is the derived, role-keyed set of permitted operations.
type CapabilitySet struct {
	Role         Role         `json:"role"`
	Capabilities []Capability `json:"capabilities"`
}

// NewCapabilitySet returns a set with capabilities sorted and deduplicated.
func NewCapabilitySet(role Role, caps ...Capability) CapabilitySet {
	c := slices.Clone(caps)
	slices.Sort(c)
	return CapabilitySet{Role: role, Capabilities: slices.Compact(c)}
}

// Has reports whether the set grants c.
func (s CapabilitySet) Has(c Capability) bool {
	_, found := slices.BinarySearch(s.Capabilities, c)
	return found
}

func (s CapabilitySet) String() string {
	names := make([]string, len(s.Capabilities))
	for i, c := range s.Capabilities {
		names[i] = string(c)
	}
	return s.Role.String() + "{" + strings.Join(names, ",") + "}"
}

// ParseConfirmation interprets an affirmative or negative answer.
func ParseConfirmation(answer string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	default:
		return false, ErrInvalidConfirmation
	}
}
