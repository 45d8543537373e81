package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

// RequireCapability lets the request through only when the account's role
// grants every listed capability. An unknown stored role is an integrity
// failure and surfaces as an error, never as a denial.
func RequireCapability(dispatcher ports.RoleDispatcher, required ...domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := Account(c)
			if err != nil {
				return err
			}

			set, err := dispatcher.CapabilitiesFor(user.Role)
			if err != nil {
				return err
			}
			for _, capability := range required {
				if !set.Has(capability) {
					return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
				}
			}

			c.Set(CapabilitiesKey, set)
			return next(c)
		}
	}
}
