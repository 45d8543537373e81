package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

const defaultConfirmationTTL = 5 * time.Minute

// AdminDeps groups the collaborators of AdminService.
type AdminDeps struct {
	Users         ports.UserRepository
	Classes       ports.ClassRepository
	Memberships   ports.MembershipRepository
	Hasher        ports.PasswordHasher
	Confirmations ports.ConfirmationStore
	Audit         ports.AuditRepository
	// ConfirmationTTL bounds how long a deletion ticket stays valid.
	ConfirmationTTL time.Duration
}

// AdminService implements trainer management, class removal and revenue reporting.
type AdminService struct {
	users         ports.UserRepository
	classes       ports.ClassRepository
	memberships   ports.MembershipRepository
	hasher        ports.PasswordHasher
	validator     *RegistrationValidator
	confirmations ports.ConfirmationStore
	confirmTTL    time.Duration
	audit         auditTrail
	log           zerolog.Logger
}

func NewAdminService(deps AdminDeps, log zerolog.Logger) *AdminService {
	ttl := deps.ConfirmationTTL
	if ttl <= 0 {
		ttl = defaultConfirmationTTL
	}
	return &AdminService{
		users:         deps.Users,
		classes:       deps.Classes,
		memberships:   deps.Memberships,
		hasher:        deps.Hasher,
		validator:     NewRegistrationValidator(deps.Users),
		confirmations: deps.Confirmations,
		confirmTTL:    ttl,
		audit:         newAuditTrail(deps.Audit, log),
		log:           log,
	}
}

func (s *AdminService) ListTrainers(ctx context.Context) ([]*domain.UserAccount, error) {
	trainers, err := s.users.ListByRole(ctx, domain.RoleTrainer)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	return trainers, nil
}

// AddTrainer applies the registration checks with the role fixed to Trainer.
func (s *AdminService) AddTrainer(ctx context.Context, actor *domain.UserAccount, in ports.TrainerInput) (*domain.UserAccount, error) {
	reg, err := s.validator.Validate(ctx, ports.RegistrationInput{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Role:     string(domain.RoleTrainer),
		Phone:    in.Phone,
		Address:  in.Address,
	})
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("add trainer: hash password: %w", err)
	}

	now := time.Now().UTC()
	trainer := &domain.UserAccount{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
		Phone:        reg.Phone,
		Address:      reg.Address,
		Role:         domain.RoleTrainer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.users.Insert(ctx, trainer); err != nil {
		return nil, fmt.Errorf("add trainer: %w", err)
	}

	s.audit.record(ctx, domain.AuditTrainerAdded, actorID(actor), trainer.ID, "")
	s.log.Info().Int64("trainer_id", trainer.ID).Int64("actor_id", actorID(actor)).Msg("trainer added")
	return trainer, nil
}

// UpdateTrainer applies only the non-empty fields of in.
func (s *AdminService) UpdateTrainer(ctx context.Context, actor *domain.UserAccount, id int64, in ports.TrainerUpdate) (*domain.UserAccount, error) {
	trainer, err := s.findTrainer(ctx, id)
	if err != nil {
		return nil, err
	}

	var changed []string

	if username := strings.TrimSpace(in.Username); username != "" && username != trainer.Username {
		taken, err := s.users.ExistsByUsername(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("update trainer: %w", err)
		}
		if taken {
			return nil, domain.ErrUsernameTaken
		}
		trainer.Username = username
		changed = append(changed, "username")
	}

	if email := strings.TrimSpace(in.Email); email != "" && email != trainer.Email {
		taken, err := s.users.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("update trainer: %w", err)
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
		trainer.Email = email
		changed = append(changed, "email")
	}

	if in.Password != "" {
		if err := CheckPasswordPolicy(in.Password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("update trainer: hash password: %w", err)
		}
		trainer.PasswordHash = hash
		changed = append(changed, "password")
	}

	if phone := strings.TrimSpace(in.Phone); phone != "" {
		trainer.Phone = phone
		changed = append(changed, "phone")
	}
	if address := strings.TrimSpace(in.Address); address != "" {
		trainer.Address = address
		changed = append(changed, "address")
	}

	if len(changed) == 0 {
		return trainer, nil
	}

	trainer.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, trainer); err != nil {
		return nil, fmt.Errorf("update trainer: %w", err)
	}

	s.audit.record(ctx, domain.AuditTrainerUpdated, actorID(actor), trainer.ID, strings.Join(changed, ","))
	return trainer, nil
}

// RequestTrainerDeletion issues the ticket that DeleteTrainer must be given.
func (s *AdminService) RequestTrainerDeletion(ctx context.Context, actor *domain.UserAccount, id int64) (*ports.DeletionTicket, error) {
	if _, err := s.findTrainer(ctx, id); err != nil {
		return nil, err
	}

	token := uuid.NewString()
	if err := s.confirmations.Save(ctx, id, token, s.confirmTTL); err != nil {
		return nil, fmt.Errorf("request trainer deletion: %w", err)
	}

	s.log.Debug().Int64("trainer_id", id).Int64("actor_id", actorID(actor)).Msg("trainer deletion pending confirmation")
	return &ports.DeletionTicket{
		TrainerID: id,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(s.confirmTTL),
	}, nil
}

// DeleteTrainer commits a pending deletion when answer is affirmative. A
// negative answer consumes the ticket and leaves storage untouched.
func (s *AdminService) DeleteTrainer(ctx context.Context, actor *domain.UserAccount, id int64, token, answer string) error {
	if _, err := s.findTrainer(ctx, id); err != nil {
		return err
	}

	confirmed, err := domain.ParseConfirmation(answer)
	if err != nil {
		return err
	}

	ok, err := s.confirmations.Consume(ctx, id, token)
	if err != nil {
		return fmt.Errorf("delete trainer: %w", err)
	}
	if !ok {
		return domain.ErrConfirmationRequired
	}
	if !confirmed {
		return domain.ErrDeletionCancelled
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete trainer: %w", err)
	}

	s.audit.record(ctx, domain.AuditTrainerDeleted, actorID(actor), id, "")
	s.log.Info().Int64("trainer_id", id).Int64("actor_id", actorID(actor)).Msg("trainer deleted")
	return nil
}

// DeleteAnyClass removes a class regardless of which trainer owns it.
func (s *AdminService) DeleteAnyClass(ctx context.Context, actor *domain.UserAccount, classID int64) error {
	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		return err
	}
	if err := s.classes.Delete(ctx, class.ID); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	s.audit.record(ctx, domain.AuditClassDeleted, actorID(actor), class.ID, class.Name)
	return nil
}

func (s *AdminService) RevenueReport(ctx context.Context) (*domain.RevenueReport, error) {
	lines, err := s.memberships.RevenueByPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue report: %w", err)
	}
	report := &domain.RevenueReport{Plans: lines}
	for _, l := range lines {
		report.TotalCents += l.TotalCents
	}
	if report.Plans == nil {
		report.Plans = []domain.PlanRevenue{}
	}
	return report, nil
}

// findTrainer resolves id to an account with role Trainer or returns domain.ErrNotFound.
func (s *AdminService) findTrainer(ctx context.Context, id int64) (*domain.UserAccount, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("trainer %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleTrainer {
		return nil, fmt.Errorf("trainer %d: %w", id, domain.ErrNotFound)
	}
	return user, nil
}
