package domain

import "time"

// AuditAction names a security-relevant change.
type AuditAction string

const (
	AuditUserRegistered AuditAction = "user.registered"
	AuditLoginFailed    AuditAction = "user.login_failed"
	AuditTrainerAdded   AuditAction = "trainer.added"
	AuditTrainerUpdated AuditAction = "trainer.updated"
	AuditTrainerDeleted AuditAction = "trainer.deleted"
	AuditClassDeleted   AuditAction = "class.deleted"
)

// AuditEvent records who did what to whom. It never carries a password or digest.
type AuditEvent struct {
	Action     AuditAction
	ActorID    int64
	TargetID   int64
	Detail     string
	OccurredAt time.Time
}
