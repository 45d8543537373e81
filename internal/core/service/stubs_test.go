package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[int64]*domain.UserAccount
	nextID int64
	writes int   // Insert + Update + Delete calls that reached storage
	err    error // if set, every call returns it
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.UserAccount), nextID: 1}
}

func (r *stubUserRepo) seed(u *domain.UserAccount) *domain.UserAccount {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u.Clone()
	return u
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.UserAccount, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.UserAccount, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.UserAccount, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.UserAccount) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.writes++
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user.Clone()
	return user.ID, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.UserAccount) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.writes++
	r.users[user.ID] = user.Clone()
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	r.writes++
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]*domain.UserAccount, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.UserAccount
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

// ---------------------------------------------------------------------------
// Hasher that is cheap and reversible enough to assert on
// ---------------------------------------------------------------------------

type stubHasher struct {
	hashCalls int
	hashErr   error
}

const stubDigestPrefix = "stub$"

func (h *stubHasher) Hash(plaintext string) (string, error) {
	h.hashCalls++
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return stubDigestPrefix + plaintext, nil
}

func (h *stubHasher) Verify(plaintext, digest string) (bool, error) {
	if !strings.HasPrefix(digest, stubDigestPrefix) {
		return false, domain.ErrInvalidCredentialFormat
	}
	return strings.TrimPrefix(digest, stubDigestPrefix) == plaintext, nil
}

// ---------------------------------------------------------------------------
// Audit, confirmations, classes, memberships
// ---------------------------------------------------------------------------

type stubAuditRepo struct {
	events    []*domain.AuditEvent
	insertErr error
}

func (r *stubAuditRepo) InsertEvent(_ context.Context, e *domain.AuditEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.events = append(r.events, e)
	return nil
}

func (r *stubAuditRepo) actions() []domain.AuditAction {
	out := make([]domain.AuditAction, len(r.events))
	for i, e := range r.events {
		out[i] = e.Action
	}
	return out
}

type stubConfirmations struct {
	tickets map[int64]string
	saveErr error
}

func newStubConfirmations() *stubConfirmations {
	return &stubConfirmations{tickets: make(map[int64]string)}
}

func (c *stubConfirmations) Save(_ context.Context, trainerID int64, token string, _ time.Duration) error {
	if c.saveErr != nil {
		return c.saveErr
	}
	c.tickets[trainerID] = token
	return nil
}

func (c *stubConfirmations) Consume(_ context.Context, trainerID int64, token string) (bool, error) {
	stored, ok := c.tickets[trainerID]
	if !ok || stored != token {
		return false, nil
	}
	delete(c.tickets, trainerID)
	return true, nil
}

type stubClassRepo struct {
	classes map[int64]*domain.WorkoutClass
	nextID  int64
}

func newStubClassRepo() *stubClassRepo {
	return &stubClassRepo{classes: make(map[int64]*domain.WorkoutClass), nextID: 1}
}

func (r *stubClassRepo) Insert(_ context.Context, c *domain.WorkoutClass) (int64, error) {
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.classes[c.ID] = &clone
	return c.ID, nil
}

func (r *stubClassRepo) FindByID(_ context.Context, id int64) (*domain.WorkoutClass, error) {
	c, ok := r.classes[id]
	if !ok {
		return nil, domain.ErrClassNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClassRepo) ListByTrainer(_ context.Context, trainerID int64) ([]*domain.WorkoutClass, error) {
	var out []*domain.WorkoutClass
	for _, c := range r.classes {
		if c.TrainerID == trainerID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClassRepo) ListScheduledAfter(_ context.Context, from time.Time) ([]*domain.WorkoutClass, error) {
	var out []*domain.WorkoutClass
	for _, c := range r.classes {
		if !c.ScheduledAt.Before(from) {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

func (r *stubClassRepo) Update(_ context.Context, c *domain.WorkoutClass) error {
	if _, ok := r.classes[c.ID]; !ok {
		return domain.ErrClassNotFound
	}
	clone := *c
	r.classes[c.ID] = &clone
	return nil
}

func (r *stubClassRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.classes[id]; !ok {
		return domain.ErrClassNotFound
	}
	delete(r.classes, id)
	return nil
}

type stubMembershipRepo struct {
	memberships map[int64]*domain.Membership
	nextID      int64
}

func newStubMembershipRepo() *stubMembershipRepo {
	return &stubMembershipRepo{memberships: make(map[int64]*domain.Membership), nextID: 1}
}

func (r *stubMembershipRepo) Insert(_ context.Context, m *domain.Membership) (int64, error) {
	m.ID = r.nextID
	r.nextID++
	clone := *m
	r.memberships[m.ID] = &clone
	return m.ID, nil
}

func (r *stubMembershipRepo) FindByID(_ context.Context, id int64) (*domain.Membership, error) {
	m, ok := r.memberships[id]
	if !ok {
		return nil, domain.ErrMembershipNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMembershipRepo) ListByMember(_ context.Context, memberID int64) ([]*domain.Membership, error) {
	var out []*domain.Membership
	for _, m := range r.memberships {
		if m.MemberID == memberID {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubMembershipRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.memberships[id]; !ok {
		return domain.ErrMembershipNotFound
	}
	delete(r.memberships, id)
	return nil
}

func (r *stubMembershipRepo) RevenueByPlan(_ context.Context) ([]domain.PlanRevenue, error) {
	totals := map[domain.MembershipPlan]*domain.PlanRevenue{}
	for _, m := range r.memberships {
		line, ok := totals[m.Plan]
		if !ok {
			line = &domain.PlanRevenue{Plan: m.Plan}
			totals[m.Plan] = line
		}
		line.Count++
		line.TotalCents += m.PriceCents
	}
	var out []domain.PlanRevenue
	for _, l := range totals {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Plan < out[j].Plan })
	return out, nil
}
