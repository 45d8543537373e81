package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrInvalidPlan        = errors.New("plan must be one of monthly, quarterly, annual")
)

// MembershipPlan is the billing period a member buys.
type MembershipPlan string

const (
	PlanMonthly   MembershipPlan = "monthly"
	PlanQuarterly MembershipPlan = "quarterly"
	PlanAnnual    MembershipPlan = "annual"
)

type planTerms struct {
	months     int
	priceCents int64
}

var plans = map[MembershipPlan]planTerms{
	PlanMonthly:   {months: 1, priceCents: 4900},
	PlanQuarterly: {months: 3, priceCents: 13500},
	PlanAnnual:    {months: 12, priceCents: 49900},
}

// ParsePlan normalises s into a known plan.
func ParsePlan(s string) (MembershipPlan, error) {
	p := MembershipPlan(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := plans[p]; !ok {
		return "", ErrInvalidPlan
	}
	return p, nil
}

// PriceCents returns the list price of the plan.
func (p MembershipPlan) PriceCents() int64 {
	return plans[p].priceCents
}

// EndsAt returns when a membership on this plan starting at from expires.
func (p MembershipPlan) EndsAt(from time.Time) time.Time {
	return from.AddDate(0, plans[p].months, 0)
}

// Membership is a plan purchased by a member.
type Membership struct {
	ID         int64          `json:"id"`
	MemberID   int64          `json:"member_id"`
	Plan       MembershipPlan `json:"plan"`
	PriceCents int64          `json:"price_cents"`
	StartsAt   time.Time      `json:"starts_at"`
	EndsAt     time.Time      `json:"ends_at"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Active reports whether the membership covers now.
func (m *Membership) Active(now time.Time) bool {
	return !now.Before(m.StartsAt) && now.Before(m.EndsAt)
}

// PlanRevenue is one line of the revenue report.
type PlanRevenue struct {
	Plan       MembershipPlan `json:"plan"`
	Count      int64          `json:"count"`
	TotalCents int64          `json:"total_cents"`
}

// RevenueReport aggregates membership income per plan.
type RevenueReport struct {
	Plans      []PlanRevenue `json:"plans"`
	TotalCents int64         `json:"total_cents"`
}
