package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

var classClock = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newTestClassService() (*ClassService, *stubClassRepo) {
	repo := newStubClassRepo()
	svc := NewClassService(repo, zerolog.Nop())
	svc.now = func() time.Time { return classClock }
	return svc, repo
}

func validClassInput() ports.ClassInput {
	return ports.ClassInput{
		Name:            "  Morning HIIT ",
		Description:     "intervals",
		ScheduledAt:     classClock.Add(24 * time.Hour),
		DurationMinutes: 45,
		Capacity:        12,
	}
}

var (
	trainerTom = &domain.UserAccount{ID: 10, Username: "tom", Role: domain.RoleTrainer}
	trainerTia = &domain.UserAccount{ID: 11, Username: "tia", Role: domain.RoleTrainer}
	memberMia  = &domain.UserAccount{ID: 20, Username: "mia", Role: domain.RoleMember}
)

// ---------------------------------------------------------------------------
// CreateClass
// ---------------------------------------------------------------------------

func TestCreateClass_Success(t *testing.T) {
	svc, repo := newTestClassService()

	class, err := svc.CreateClass(context.Background(), trainerTom, validClassInput())
	if err != nil {
		t.Fatalf("CreateClass returned error: %v", err)
	}
	if class.ID == 0 || class.TrainerID != trainerTom.ID {
		t.Fatalf("unexpected class: %+v", class)
	}
	if class.Name != "Morning HIIT" {
		t.Fatalf("expected trimmed name, got %q", class.Name)
	}
	if !class.CreatedAt.Equal(classClock) {
		t.Fatalf("expected CreatedAt from clock, got %v", class.CreatedAt)
	}
	if len(repo.classes) != 1 {
		t.Fatalf("expected 1 stored class, got %d", len(repo.classes))
	}
}

func TestCreateClass_OnlyTrainers(t *testing.T) {
	svc, repo := newTestClassService()

	for _, actor := range []*domain.UserAccount{nil, memberMia, {ID: 1, Role: domain.RoleAdmin}} {
		if _, err := svc.CreateClass(context.Background(), actor, validClassInput()); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	}
	if len(repo.classes) != 0 {
		t.Fatalf("forbidden create stored a class")
	}
}

func TestCreateClass_Invalid(t *testing.T) {
	svc, _ := newTestClassService()

	cases := map[string]func(*ports.ClassInput){
		"no name":       func(in *ports.ClassInput) { in.Name = "   " },
		"no schedule":   func(in *ports.ClassInput) { in.ScheduledAt = time.Time{} },
		"zero duration": func(in *ports.ClassInput) { in.DurationMinutes = 0 },
		"zero capacity": func(in *ports.ClassInput) { in.Capacity = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validClassInput()
			mutate(&in)
			if _, err := svc.CreateClass(context.Background(), trainerTom, in); !errors.Is(err, domain.ErrInvalidClass) {
				t.Fatalf("expected ErrInvalidClass, got %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Ownership
// ---------------------------------------------------------------------------

func TestUpdateOwnClass(t *testing.T) {
	svc, repo := newTestClassService()
	ctx := context.Background()

	class, _ := svc.CreateClass(ctx, trainerTom, validClassInput())

	updated, err := svc.UpdateOwnClass(ctx, trainerTom, class.ID, ports.ClassInput{Capacity: 20})
	if err != nil {
		t.Fatalf("UpdateOwnClass returned error: %v", err)
	}
	if updated.Capacity != 20 || updated.Name != "Morning HIIT" || updated.DurationMinutes != 45 {
		t.Fatalf("partial update clobbered fields: %+v", updated)
	}
	if repo.classes[class.ID].Capacity != 20 {
		t.Fatalf("update not persisted")
	}
}

func TestUpdateOwnClass_OtherTrainer(t *testing.T) {
	svc, repo := newTestClassService()
	ctx := context.Background()

	class, _ := svc.CreateClass(ctx, trainerTom, validClassInput())

	if _, err := svc.UpdateOwnClass(ctx, trainerTia, class.ID, ports.ClassInput{Capacity: 1}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.classes[class.ID].Capacity != 12 {
		t.Fatalf("foreign update was persisted")
	}
}

func TestDeleteOwnClass(t *testing.T) {
	svc, repo := newTestClassService()
	ctx := context.Background()

	class, _ := svc.CreateClass(ctx, trainerTom, validClassInput())

	if err := svc.DeleteOwnClass(ctx, trainerTia, class.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteOwnClass(ctx, trainerTom, class.ID); err != nil {
		t.Fatalf("DeleteOwnClass returned error: %v", err)
	}
	if len(repo.classes) != 0 {
		t.Fatalf("class still stored")
	}
	if err := svc.DeleteOwnClass(ctx, trainerTom, class.ID); !errors.Is(err, domain.ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Listing
// ---------------------------------------------------------------------------

func TestListOwnClasses(t *testing.T) {
	svc, _ := newTestClassService()
	ctx := context.Background()

	_, _ = svc.CreateClass(ctx, trainerTom, validClassInput())
	_, _ = svc.CreateClass(ctx, trainerTia, validClassInput())
	_, _ = svc.CreateClass(ctx, trainerTom, validClassInput())

	classes, err := svc.ListOwnClasses(ctx, trainerTom)
	if err != nil {
		t.Fatalf("ListOwnClasses returned error: %v", err)
	}
	if len(classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(classes))
	}
	for _, c := range classes {
		if c.TrainerID != trainerTom.ID {
			t.Fatalf("listed another trainer's class: %+v", c)
		}
	}
}

func TestListUpcomingClasses(t *testing.T) {
	svc, repo := newTestClassService()
	ctx := context.Background()

	past := &domain.WorkoutClass{TrainerID: trainerTom.ID, Name: "Yesterday", ScheduledAt: classClock.Add(-time.Hour)}
	soon := &domain.WorkoutClass{TrainerID: trainerTom.ID, Name: "Soon", ScheduledAt: classClock.Add(time.Hour)}
	later := &domain.WorkoutClass{TrainerID: trainerTia.ID, Name: "Later", ScheduledAt: classClock.Add(48 * time.Hour)}
	for _, c := range []*domain.WorkoutClass{later, past, soon} {
		_, _ = repo.Insert(ctx, c)
	}

	classes, err := svc.ListUpcomingClasses(ctx)
	if err != nil {
		t.Fatalf("ListUpcomingClasses returned error: %v", err)
	}
	if len(classes) != 2 || classes[0].Name != "Soon" || classes[1].Name != "Later" {
		t.Fatalf("unexpected upcoming classes: %+v", classes)
	}
}
