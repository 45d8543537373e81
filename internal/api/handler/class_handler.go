package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsegym/gym-system/internal/core/ports"
)

type ClassHandler struct {
	classes ports.ClassService
}

func NewClassHandler(classes ports.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// Create godoc
//
// @Summary      Schedule a workout class
// @Tags         trainer
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      classRequest  true  "Class details"
// @Success      201   {object}  domain.WorkoutClass
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /trainer/classes [post]
func (h *ClassHandler) Create(c echo.Context) error {
	trainer, err := ctxAccount(c)
	if err != nil {
		return err
	}
	var req classRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	class, err := h.classes.CreateClass(c.Request().Context(), trainer, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, class)
}

// ListOwn godoc
//
// @Summary      List the trainer's own classes
// @Tags         trainer
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  classListResponse
// @Router       /trainer/classes [get]
func (h *ClassHandler) ListOwn(c echo.Context) error {
	trainer, err := ctxAccount(c)
	if err != nil {
		return err
	}
	classes, err := h.classes.ListOwnClasses(c.Request().Context(), trainer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classListResponse{Classes: classes})
}

// Update godoc
//
// @Summary      Update one of the trainer's classes
// @Tags         trainer
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path      int                 true  "Class ID"
// @Param        body  body      classUpdateRequest  true  "Fields to change"
// @Success      200   {object}  domain.WorkoutClass
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /trainer/classes/{id} [patch]
func (h *ClassHandler) Update(c echo.Context) error {
	trainer, err := ctxAccount(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req classUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	class, err := h.classes.UpdateOwnClass(c.Request().Context(), trainer, id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, class)
}

// Delete godoc
//
// @Summary      Delete one of the trainer's classes
// @Tags         trainer
// @Security     BasicAuth
// @Param        id   path  int  true  "Class ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /trainer/classes/{id} [delete]
func (h *ClassHandler) Delete(c echo.Context) error {
	trainer, err := ctxAccount(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.classes.DeleteOwnClass(c.Request().Context(), trainer, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Upcoming godoc
//
// @Summary      Browse upcoming classes
// @Tags         classes
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  classListResponse
// @Router       /classes [get]
func (h *ClassHandler) Upcoming(c echo.Context) error {
	classes, err := h.classes.ListUpcomingClasses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classListResponse{Classes: classes})
}
