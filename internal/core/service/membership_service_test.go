package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

func newTestMembershipService(now time.Time) (*MembershipService, *stubMembershipRepo) {
	repo := newStubMembershipRepo()
	svc := NewMembershipService(repo, zerolog.Nop())
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestPurchase(t *testing.T) {
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	svc, repo := newTestMembershipService(now)

	m, err := svc.Purchase(context.Background(), memberMia, " Quarterly ")
	if err != nil {
		t.Fatalf("Purchase returned error: %v", err)
	}
	if m.Plan != domain.PlanQuarterly || m.PriceCents != 13500 {
		t.Fatalf("unexpected plan/price: %+v", m)
	}
	if !m.StartsAt.Equal(now) || !m.EndsAt.Equal(now.AddDate(0, 3, 0)) {
		t.Fatalf("unexpected term: %v - %v", m.StartsAt, m.EndsAt)
	}
	if !m.Active(now) || m.Active(m.EndsAt) {
		t.Fatalf("membership activity window is wrong")
	}
	if len(repo.memberships) != 1 {
		t.Fatalf("membership not stored")
	}
}

func TestPurchase_Rejections(t *testing.T) {
	svc, repo := newTestMembershipService(time.Now())
	ctx := context.Background()

	if _, err := svc.Purchase(ctx, memberMia, "weekly"); !errors.Is(err, domain.ErrInvalidPlan) {
		t.Fatalf("expected ErrInvalidPlan, got %v", err)
	}
	if _, err := svc.Purchase(ctx, trainerTom, "monthly"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.memberships) != 0 {
		t.Fatalf("rejected purchase was stored")
	}
}

func TestListOwnAndCancel(t *testing.T) {
	svc, repo := newTestMembershipService(time.Now())
	ctx := context.Background()

	other := &domain.UserAccount{ID: 21, Username: "max", Role: domain.RoleMember}
	mine, _ := svc.Purchase(ctx, memberMia, "monthly")
	theirs, _ := svc.Purchase(ctx, other, "annual")

	list, err := svc.ListOwn(ctx, memberMia)
	if err != nil {
		t.Fatalf("ListOwn returned error: %v", err)
	}
	if len(list) != 1 || list[0].ID != mine.ID {
		t.Fatalf("unexpected memberships: %+v", list)
	}

	if err := svc.CancelOwn(ctx, memberMia, theirs.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.CancelOwn(ctx, memberMia, mine.ID); err != nil {
		t.Fatalf("CancelOwn returned error: %v", err)
	}
	if _, ok := repo.memberships[mine.ID]; ok {
		t.Fatalf("membership still stored")
	}
	if err := svc.CancelOwn(ctx, memberMia, mine.ID); !errors.Is(err, domain.ErrMembershipNotFound) {
		t.Fatalf("expected ErrMembershipNotFound, got %v", err)
	}
}
