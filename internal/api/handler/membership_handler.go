package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsegym/gym-system/internal/api/metrics"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

type MembershipHandler struct {
	memberships ports.MembershipService
}

func NewMembershipHandler(memberships ports.MembershipService) *MembershipHandler {
	return &MembershipHandler{memberships: memberships}
}

// Purchase godoc
//
// @Summary      Buy a membership
// @Tags         member
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      purchaseRequest  true  "monthly, quarterly or annual"
// @Success      201   {object}  domain.Membership
// @Failure      400   {object}  map[string]string
// @Router       /member/memberships [post]
func (h *MembershipHandler) Purchase(c echo.Context) error {
	member, err := ctxAccount(c)
	if err != nil {
		return err
	}
	var req purchaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.memberships.Purchase(c.Request().Context(), member, req.Plan)
	if err != nil {
		return err
	}
	metrics.MembershipsPurchasedTotal.WithLabelValues(string(m.Plan)).Inc()
	return c.JSON(http.StatusCreated, m)
}

// ListOwn godoc
//
// @Summary      List the member's memberships
// @Tags         member
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  membershipListResponse
// @Router       /member/memberships [get]
func (h *MembershipHandler) ListOwn(c echo.Context) error {
	member, err := ctxAccount(c)
	if err != nil {
		return err
	}
	list, err := h.memberships.ListOwn(c.Request().Context(), member)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, membershipListResponse{Memberships: list})
}

// Cancel godoc
//
// @Summary      Cancel one of the member's memberships
// @Tags         member
// @Security     BasicAuth
// @Param        id   path  int  true  "Membership ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /member/memberships/{id} [delete]
func (h *MembershipHandler) Cancel(c echo.Context) error {
	member, err := ctxAccount(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.memberships.CancelOwn(c.Request().Context(), member, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
