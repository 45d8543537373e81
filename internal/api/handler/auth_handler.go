package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsegym/gym-system/internal/api/metrics"
	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	dispatcher  ports.RoleDispatcher
}

func NewAuthHandler(authService ports.AuthService, dispatcher ports.RoleDispatcher) *AuthHandler {
	return &AuthHandler{authService: authService, dispatcher: dispatcher}
}

// Register creates a new account with one of the Admin, Trainer or Member roles.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.toInput())
	if err != nil {
		result := "error"
		if domain.IsValidation(err) {
			result = "rejected"
		}
		metrics.RegistrationsTotal.WithLabelValues(result, "").Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("created", user.Role.String()).Inc()

	return c.JSON(http.StatusCreated, accountResponse{Account: user})
}

// Login checks the credentials and returns the account with its capabilities.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrInvalidCredentials) {
			result = "invalid"
		}
		metrics.LoginsTotal.WithLabelValues("login", result).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("login", "success").Inc()

	caps, err := h.dispatcher.CapabilitiesFor(user.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Account: user, Capabilities: caps})
}

// Capabilities returns the capability set of the authenticated account.
//
// @Summary      Current capabilities
// @Tags         auth
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  domain.CapabilitySet
// @Failure      401  {object}  map[string]string
// @Router       /me/capabilities [get]
func (h *AuthHandler) Capabilities(c echo.Context) error {
	user, err := ctxAccount(c)
	if err != nil {
		return err
	}
	caps, err := h.dispatcher.CapabilitiesFor(user.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, caps)
}
