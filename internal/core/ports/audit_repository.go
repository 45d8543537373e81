package ports

import (
	"context"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

// AuditRepository persists security-relevant events to the audit trail.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuditEvent) error
}
