package relational

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

const membershipColumns = `id, member_id, plan, price_cents, starts_at, ends_at, created_at`

type MembershipRepository struct {
	db *DB
}

func NewMembershipRepository(db *DB) ports.MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Insert(ctx context.Context, m *domain.Membership) (int64, error) {
	conn, err := r.db.conn(ctx, "insert membership")
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	if m.CreatedAt.IsZero() {
		m.CreatedAt = nowUTC()
	}

	var id int64
	err = conn.QueryRowContext(ctx, r.db.rebind(`
INSERT INTO memberships (member_id, plan, price_cents, starts_at, ends_at, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id`),
		m.MemberID,
		string(m.Plan),
		m.PriceCents,
		m.StartsAt.UTC(),
		m.EndsAt.UTC(),
		m.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, storageErr("insert membership", err)
	}
	m.ID = id
	return id, nil
}

func (r *MembershipRepository) FindByID(ctx context.Context, id int64) (*domain.Membership, error) {
	conn, err := r.db.conn(ctx, "find membership")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	m, err := scanMembership(conn.QueryRowContext(ctx, r.db.rebind(`SELECT `+membershipColumns+` FROM memberships WHERE id = ?`), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMembershipNotFound
	}
	if err != nil {
		return nil, storageErr("find membership", err)
	}
	return m, nil
}

func (r *MembershipRepository) ListByMember(ctx context.Context, memberID int64) ([]*domain.Membership, error) {
	conn, err := r.db.conn(ctx, "list memberships")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, r.db.rebind(`SELECT `+membershipColumns+` FROM memberships WHERE member_id = ? ORDER BY starts_at, id`), memberID)
	if err != nil {
		return nil, storageErr("list memberships", err)
	}
	defer rows.Close()

	out := []*domain.Membership{}
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, storageErr("list memberships", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list memberships", err)
	}
	return out, nil
}

func (r *MembershipRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.db.conn(ctx, "delete membership")
	if err != nil {
		return err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, r.db.rebind(`DELETE FROM memberships WHERE id = ?`), id)
	if err != nil {
		return storageErr("delete membership", err)
	}
	return expectOne(res, "delete membership", domain.ErrMembershipNotFound)
}

// RevenueByPlan aggregates every stored membership by plan, ordered by plan name.
func (r *MembershipRepository) RevenueByPlan(ctx context.Context) ([]domain.PlanRevenue, error) {
	conn, err := r.db.conn(ctx, "revenue by plan")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
SELECT plan, COUNT(*), COALESCE(SUM(price_cents), 0)
FROM memberships
GROUP BY plan
ORDER BY plan`)
	if err != nil {
		return nil, storageErr("revenue by plan", err)
	}
	defer rows.Close()

	lines := []domain.PlanRevenue{}
	for rows.Next() {
		var (
			line domain.PlanRevenue
			plan string
		)
		if err := rows.Scan(&plan, &line.Count, &line.TotalCents); err != nil {
			return nil, storageErr("revenue by plan", err)
		}
		line.Plan = domain.MembershipPlan(plan)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("revenue by plan", err)
	}
	return lines, nil
}

func scanMembership(row scanner) (*domain.Membership, error) {
	var (
		m    domain.Membership
		plan string
	)
	if err := row.Scan(
		&m.ID,
		&m.MemberID,
		&plan,
		&m.PriceCents,
		&m.StartsAt,
		&m.EndsAt,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	m.Plan = domain.MembershipPlan(plan)
	m.StartsAt = m.StartsAt.UTC()
	m.EndsAt = m.EndsAt.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	return &m, nil
}
