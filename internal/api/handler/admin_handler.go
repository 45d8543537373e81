package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsegym/gym-system/internal/api/metrics"
	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

// AdminHandler serves the /admin routes. Capability checks happen in the
// router; the service re-checks the actor.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListTrainers godoc
//
// @Summary      List trainers
// @Tags         admin
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  trainerListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/trainers [get]
func (h *AdminHandler) ListTrainers(c echo.Context) error {
	trainers, err := h.admin.ListTrainers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trainerListResponse{Trainers: trainers})
}

// AddTrainer godoc
//
// @Summary      Add a trainer account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      trainerRequest  true  "Trainer details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/trainers [post]
func (h *AdminHandler) AddTrainer(c echo.Context) error {
	actor, err := ctxAccount(c)
	if err != nil {
		return err
	}
	var req trainerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	trainer, err := h.admin.AddTrainer(c.Request().Context(), actor, ports.TrainerInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}
	metrics.AdminMutationsTotal.WithLabelValues("trainer_added").Inc()
	return c.JSON(http.StatusCreated, accountResponse{Account: trainer})
}

// UpdateTrainer godoc
//
// @Summary      Update a trainer account
// @Description  Only the supplied fields change.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path      int                   true  "Trainer ID"
// @Param        body  body      trainerUpdateRequest  true  "Fields to change"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/trainers/{id} [patch]
func (h *AdminHandler) UpdateTrainer(c echo.Context) error {
	actor, err := ctxAccount(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req trainerUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	trainer, err := h.admin.UpdateTrainer(c.Request().Context(), actor, id, ports.TrainerUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}
	metrics.AdminMutationsTotal.WithLabelValues("trainer_updated").Inc()
	return c.JSON(http.StatusOK, accountResponse{Account: trainer})
}

// RequestTrainerDeletion godoc
//
// @Summary      Ask to delete a trainer
// @Description  Returns a short-lived ticket that must be confirmed with DELETE /admin/trainers/{id}.
// @Tags         admin
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      int  true  "Trainer ID"
// @Success      202  {object}  ports.DeletionTicket
// @Failure      404  {object}  map[string]string
// @Router       /admin/trainers/{id}/deletion [post]
func (h *AdminHandler) RequestTrainerDeletion(c echo.Context) error {
	actor, err := ctxAccount(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ticket, err := h.admin.RequestTrainerDeletion(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, ticket)
}

// DeleteTrainer godoc
//
// @Summary      Confirm or cancel a trainer deletion
// @Tags         admin
// @Produce      json
// @Security     BasicAuth
// @Param        id       path      int     true  "Trainer ID"
// @Param        token    query     string  true  "Ticket token"
// @Param        confirm  query     string  true  "yes or no"
// @Success      204
// @Success      200  {object}  statusResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/trainers/{id} [delete]
func (h *AdminHandler) DeleteTrainer(c echo.Context) error {
	actor, err := ctxAccount(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.admin.DeleteTrainer(c.Request().Context(), actor, id, c.QueryParam("token"), c.QueryParam("confirm"))
	metrics.TrainerDeletionAnswersTotal.WithLabelValues(deletionAnswer(err)).Inc()
	switch {
	case errors.Is(err, domain.ErrDeletionCancelled):
		return c.JSON(http.StatusOK, statusResponse{Status: "cancelled"})
	case err != nil:
		return err
	}
	metrics.AdminMutationsTotal.WithLabelValues("trainer_deleted").Inc()
	return c.NoContent(http.StatusNoContent)
}

func deletionAnswer(err error) string {
	switch {
	case err == nil:
		return "yes"
	case errors.Is(err, domain.ErrDeletionCancelled):
		return "no"
	case errors.Is(err, domain.ErrInvalidConfirmation):
		return "invalid"
	case errors.Is(err, domain.ErrConfirmationRequired):
		return "missing_ticket"
	default:
		return "error"
	}
}

// DeleteClass godoc
//
// @Summary      Delete any workout class
// @Tags         admin
// @Security     BasicAuth
// @Param        id   path  int  true  "Class ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/classes/{id} [delete]
func (h *AdminHandler) DeleteClass(c echo.Context) error {
	actor, err := ctxAccount(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.admin.DeleteAnyClass(c.Request().Context(), actor, id); err != nil {
		return err
	}
	metrics.AdminMutationsTotal.WithLabelValues("class_deleted").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Revenue godoc
//
// @Summary      Membership revenue by plan
// @Tags         admin
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  domain.RevenueReport
// @Router       /admin/revenue [get]
func (h *AdminHandler) Revenue(c echo.Context) error {
	report, err := h.admin.RevenueReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
