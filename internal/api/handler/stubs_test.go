package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pulsegym/gym-system/internal/api/middleware"
	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

var (
	adminRoot  = &domain.UserAccount{ID: 1, Username: "root", Role: domain.RoleAdmin}
	trainerTom = &domain.UserAccount{ID: 10, Username: "tom", Role: domain.RoleTrainer}
	memberMia  = &domain.UserAccount{ID: 20, Username: "mia", Role: domain.RoleMember}
)

// newContext builds an echo context for target with the JSON body (if any)
// and the given account already authenticated.
func newContext(t *testing.T, method, target, body string, account *domain.UserAccount) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if account != nil {
		c.Set(middleware.AccountKey, account)
	}
	return c, rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegistrationInput) (*domain.UserAccount, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.UserAccount, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegistrationInput) (*domain.UserAccount, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.UserAccount, error) {
	return s.loginFn(ctx, username, password)
}

type stubDispatcher struct{}

func (stubDispatcher) CapabilitiesFor(role domain.Role) (domain.CapabilitySet, error) {
	switch role {
	case domain.RoleAdmin:
		return domain.NewCapabilitySet(role, domain.CapManageTrainers, domain.CapDeleteAnyClass, domain.CapViewRevenue), nil
	case domain.RoleTrainer:
		return domain.NewCapabilitySet(role, domain.CapManageOwnClasses, domain.CapBrowseClasses), nil
	case domain.RoleMember:
		return domain.NewCapabilitySet(role, domain.CapManageOwnMemberships, domain.CapBrowseClasses), nil
	}
	return domain.CapabilitySet{Role: role}, domain.ErrUnknownRole
}

type stubAdminService struct {
	listFn     func(ctx context.Context) ([]*domain.UserAccount, error)
	addFn      func(ctx context.Context, actor *domain.UserAccount, in ports.TrainerInput) (*domain.UserAccount, error)
	updateFn   func(ctx context.Context, actor *domain.UserAccount, id int64, in ports.TrainerUpdate) (*domain.UserAccount, error)
	requestFn  func(ctx context.Context, actor *domain.UserAccount, id int64) (*ports.DeletionTicket, error)
	deleteFn   func(ctx context.Context, actor *domain.UserAccount, id int64, token, answer string) error
	classDelFn func(ctx context.Context, actor *domain.UserAccount, classID int64) error
	revenueFn  func(ctx context.Context) (*domain.RevenueReport, error)
}

func (s *stubAdminService) ListTrainers(ctx context.Context) ([]*domain.UserAccount, error) {
	return s.listFn(ctx)
}

func (s *stubAdminService) AddTrainer(ctx context.Context, actor *domain.UserAccount, in ports.TrainerInput) (*domain.UserAccount, error) {
	return s.addFn(ctx, actor, in)
}

func (s *stubAdminService) UpdateTrainer(ctx context.Context, actor *domain.UserAccount, id int64, in ports.TrainerUpdate) (*domain.UserAccount, error) {
	return s.updateFn(ctx, actor, id, in)
}

func (s *stubAdminService) RequestTrainerDeletion(ctx context.Context, actor *domain.UserAccount, id int64) (*ports.DeletionTicket, error) {
	return s.requestFn(ctx, actor, id)
}

func (s *stubAdminService) DeleteTrainer(ctx context.Context, actor *domain.UserAccount, id int64, token, answer string) error {
	return s.deleteFn(ctx, actor, id, token, answer)
}

func (s *stubAdminService) DeleteAnyClass(ctx context.Context, actor *domain.UserAccount, classID int64) error {
	return s.classDelFn(ctx, actor, classID)
}

func (s *stubAdminService) RevenueReport(ctx context.Context) (*domain.RevenueReport, error) {
	return s.revenueFn(ctx)
}

type stubClassService struct {
	createFn   func(ctx context.Context, trainer *domain.UserAccount, in ports.ClassInput) (*domain.WorkoutClass, error)
	listFn     func(ctx context.Context, trainer *domain.UserAccount) ([]*domain.WorkoutClass, error)
	updateFn   func(ctx context.Context, trainer *domain.UserAccount, id int64, in ports.ClassInput) (*domain.WorkoutClass, error)
	deleteFn   func(ctx context.Context, trainer *domain.UserAccount, id int64) error
	upcomingFn func(ctx context.Context) ([]*domain.WorkoutClass, error)
}

func (s *stubClassService) CreateClass(ctx context.Context, trainer *domain.UserAccount, in ports.ClassInput) (*domain.WorkoutClass, error) {
	return s.createFn(ctx, trainer, in)
}

func (s *stubClassService) ListOwnClasses(ctx context.Context, trainer *domain.UserAccount) ([]*domain.WorkoutClass, error) {
	return s.listFn(ctx, trainer)
}

func (s *stubClassService) UpdateOwnClass(ctx context.Context, trainer *domain.UserAccount, id int64, in ports.ClassInput) (*domain.WorkoutClass, error) {
	return s.updateFn(ctx, trainer, id, in)
}

func (s *stubClassService) DeleteOwnClass(ctx context.Context, trainer *domain.UserAccount, id int64) error {
	return s.deleteFn(ctx, trainer, id)
}

func (s *stubClassService) ListUpcomingClasses(ctx context.Context) ([]*domain.WorkoutClass, error) {
	return s.upcomingFn(ctx)
}

type stubMembershipService struct {
	purchaseFn func(ctx context.Context, member *domain.UserAccount, plan string) (*domain.Membership, error)
	listFn     func(ctx context.Context, member *domain.UserAccount) ([]*domain.Membership, error)
	cancelFn   func(ctx context.Context, member *domain.UserAccount, id int64) error
}

func (s *stubMembershipService) Purchase(ctx context.Context, member *domain.UserAccount, plan string) (*domain.Membership, error) {
	return s.purchaseFn(ctx, member, plan)
}

func (s *stubMembershipService) ListOwn(ctx context.Context, member *domain.UserAccount) ([]*domain.Membership, error) {
	return s.listFn(ctx, member)
}

func (s *stubMembershipService) CancelOwn(ctx context.Context, member *domain.UserAccount, id int64) error {
	return s.cancelFn(ctx, member, id)
}
