package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pulsegym/gym-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if jerr := json.Unmarshal(rec.Body.Bytes(), &resp); jerr != nil {
		t.Fatalf("invalid json: %v", jerr)
	}
	return rec.Code, resp
}

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	storage := fmt.Errorf("find user: %w: %w", domain.ErrStorageUnavailable, errors.New("dial tcp: refused"))

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest},
		{"basic auth challenge", echo.ErrUnauthorized, http.StatusUnauthorized},
		{"password policy", domain.ErrPasswordMissingDigit, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict},
		{"email taken", fmt.Errorf("update trainer: %w", domain.ErrEmailTaken), http.StatusConflict},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"class not found", domain.ErrClassNotFound, http.StatusNotFound},
		{"membership not found", domain.ErrMembershipNotFound, http.StatusNotFound},
		{"invalid class", errors.Join(domain.ErrInvalidClass, errors.New("name is required")), http.StatusBadRequest},
		{"invalid plan", domain.ErrInvalidPlan, http.StatusBadRequest},
		{"invalid confirmation", domain.ErrInvalidConfirmation, http.StatusBadRequest},
		{"confirmation required", domain.ErrConfirmationRequired, http.StatusConflict},
		{"storage unavailable", storage, http.StatusServiceUnavailable},
		{"corrupted digest", domain.ErrInvalidCredentialFormat, http.StatusInternalServerError},
		{"unknown role", domain.ErrUnknownRole, http.StatusInternalServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := renderError(t, tc.err)
			if code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, code)
			}
		})
	}
}

func TestHTTPErrorHandler_Body(t *testing.T) {
	_, resp := renderError(t, domain.ErrEmailTaken)
	if resp.Code != "email_taken" || resp.Error != "email is empty or already taken" {
		t.Fatalf("unexpected validation body: %+v", resp)
	}

	_, resp = renderError(t, errors.Join(domain.ErrInvalidClass, errors.New("capacity must be greater than 0")))
	if resp.Error != "capacity must be greater than 0" {
		t.Fatalf("unexpected class body: %+v", resp)
	}

	_, resp = renderError(t, fmt.Errorf("find user: %w: %w", domain.ErrStorageUnavailable, errors.New("secret dsn")))
	if resp.Error != "service temporarily unavailable" {
		t.Fatalf("storage details leaked: %+v", resp)
	}

	_, resp = renderError(t, domain.ErrInvalidCredentialFormat)
	if resp.Error != "internal server error" || resp.Code != "" {
		t.Fatalf("integrity failure leaked: %+v", resp)
	}
}
