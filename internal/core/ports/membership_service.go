package ports

import (
	"context"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

// MembershipRepository defines persistence operations for memberships.
type MembershipRepository interface {
	Insert(ctx context.Context, m *domain.Membership) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Membership, error)
	ListByMember(ctx context.Context, memberID int64) ([]*domain.Membership, error)
	Delete(ctx context.Context, id int64) error
	// RevenueByPlan sums prices grouped by plan.
	RevenueByPlan(ctx context.Context) ([]domain.PlanRevenue, error)
}

// MembershipService lets a member manage their own memberships.
type MembershipService interface {
	Purchase(ctx context.Context, member *domain.UserAccount, plan string) (*domain.Membership, error)
	ListOwn(ctx context.Context, member *domain.UserAccount) ([]*domain.Membership, error)
	CancelOwn(ctx context.Context, member *domain.UserAccount, id int64) error
}
