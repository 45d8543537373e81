package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

type MembershipService struct {
	repo ports.MembershipRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewMembershipService(repo ports.MembershipRepository, log zerolog.Logger) *MembershipService {
	return &MembershipService{repo: repo, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Purchase starts a membership on plan for member, effective immediately.
func (s *MembershipService) Purchase(ctx context.Context, member *domain.UserAccount, plan string) (*domain.Membership, error) {
	if member == nil || member.Role != domain.RoleMember {
		return nil, domain.ErrForbidden
	}
	p, err := domain.ParsePlan(plan)
	if err != nil {
		return nil, err
	}

	now := s.now()
	m := &domain.Membership{
		MemberID:   member.ID,
		Plan:       p,
		PriceCents: p.PriceCents(),
		StartsAt:   now,
		EndsAt:     p.EndsAt(now),
		CreatedAt:  now,
	}
	if _, err := s.repo.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("purchase membership: %w", err)
	}

	s.log.Info().Int64("membership_id", m.ID).Int64("member_id", member.ID).Str("plan", string(p)).Msg("membership purchased")
	return m, nil
}

func (s *MembershipService) ListOwn(ctx context.Context, member *domain.UserAccount) ([]*domain.Membership, error) {
	if member == nil {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByMember(ctx, member.ID)
}

// CancelOwn deletes a membership the caller owns.
func (s *MembershipService) CancelOwn(ctx context.Context, member *domain.UserAccount, id int64) error {
	if member == nil {
		return domain.ErrForbidden
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if m.MemberID != member.ID {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("cancel membership: %w", err)
	}
	return nil
}
