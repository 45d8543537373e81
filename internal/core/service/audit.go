package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

// auditTrail writes audit events. A failed write is logged and never fails the
// operation that produced it.
type auditTrail struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

func newAuditTrail(repo ports.AuditRepository, log zerolog.Logger) auditTrail {
	return auditTrail{repo: repo, log: log}
}

func (a auditTrail) record(ctx context.Context, action domain.AuditAction, actorID, targetID int64, detail string) {
	if a.repo == nil {
		return
	}
	event := &domain.AuditEvent{
		Action:     action,
		ActorID:    actorID,
		TargetID:   targetID,
		Detail:     detail,
		OccurredAt: time.Now().UTC(),
	}
	if err := a.repo.InsertEvent(ctx, event); err != nil {
		a.log.Warn().Err(err).
			Str("action", string(action)).
			Int64("target_id", targetID).
			Msg("failed to insert audit event")
	}
}

func actorID(actor *domain.UserAccount) int64 {
	if actor == nil {
		return 0
	}
	return actor.ID
}
