// Package metrics defines the custom Prometheus metrics of the gym API.
// Every metric is registered with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gym"

// ── Authentication ───────────────────────────────────────────────────────────

// RegistrationsTotal counts sign-up attempts.
// Labels:
//   - result: "created", "rejected" (validation) or "error"
//   - role: canonical role of the created account, empty otherwise
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result and role.",
	},
	[]string{"result", "role"},
)

// LoginsTotal counts credential checks.
// Labels:
//   - channel: "login" for POST /auth/login, "basic" for per-request Basic auth
//   - result: "success", "invalid" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of credential checks, by channel and result.",
	},
	[]string{"channel", "result"},
)

// ── Administration ───────────────────────────────────────────────────────────

// AdminMutationsTotal counts successful admin changes.
// Label:
//   - operation: trainer_added, trainer_updated, trainer_deleted, class_deleted
var AdminMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_mutations_total",
		Help:      "Total number of admin mutations applied.",
	},
	[]string{"operation"},
)

// TrainerDeletionAnswersTotal counts answers to the deletion confirmation step.
// Label:
//   - answer: "yes", "no", "invalid" or "missing_ticket"
var TrainerDeletionAnswersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trainer_deletion_answers_total",
		Help:      "Total number of trainer deletion confirmations, by answer.",
	},
	[]string{"answer"},
)

// ── Memberships ──────────────────────────────────────────────────────────────

// MembershipsPurchasedTotal counts purchases by plan.
var MembershipsPurchasedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "memberships_purchased_total",
		Help:      "Total number of memberships purchased, by plan.",
	},
	[]string{"plan"},
)
