package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/pulsegym/gym-system/internal/api/metrics"
	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

const (
	// AccountKey holds the authenticated *domain.UserAccount.
	AccountKey = "account"
	// CapabilitiesKey holds the domain.CapabilitySet resolved by RequireCapability.
	CapabilitiesKey = "capabilities"

	realm = "gym"
)

// Auth authenticates every request with HTTP Basic credentials checked by
// the authentication service. Wrong credentials get a 401 challenge; storage
// and integrity failures are passed on to the error handler.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return echomiddleware.BasicAuthWithConfig(echomiddleware.BasicAuthConfig{
		Realm: realm,
		Validator: func(username, password string, c echo.Context) (bool, error) {
			user, err := auth.Login(c.Request().Context(), username, password)
			if errors.Is(err, domain.ErrInvalidCredentials) {
				metrics.LoginsTotal.WithLabelValues("basic", "invalid").Inc()
				return false, nil
			}
			if err != nil {
				metrics.LoginsTotal.WithLabelValues("basic", "error").Inc()
				return false, err
			}
			metrics.LoginsTotal.WithLabelValues("basic", "success").Inc()
			c.Set(AccountKey, user)
			return true, nil
		},
	})
}

// Account returns the user stored by Auth or a 401 error.
func Account(c echo.Context) (*domain.UserAccount, error) {
	user, ok := c.Get(AccountKey).(*domain.UserAccount)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
