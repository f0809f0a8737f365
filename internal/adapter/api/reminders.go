package api

import (
	"errors"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/reminder"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (s *Server) MountReminders() {
	routes := s.handler.Group("/reminders", s.SessionRequired)

	routes.POST("/refresh", s.RefreshReminders)
	routes.GET("/toasts", s.ListToasts)
	routes.DELETE("/toasts/:toast_id", s.DismissToast)
	routes.POST("/toasts/:toast_id/snooze", s.SnoozeToast)
}

type RefreshRemindersResponse struct {
	Scheduled int `json:"scheduled"`
}

func (s *Server) RefreshReminders(c echo.Context) error {
	n, err := s.plannerService.RefreshReminders(c.Request().Context(), currentUser(c).OwnerID())
	if err != nil {
		return s.fail(c, err, "Failed to load reminders")
	}
	return c.JSON(http.StatusOK, RefreshRemindersResponse{Scheduled: n})
}

type ToastsResponse struct {
	Toasts []reminder.Toast `json:"toasts"`
}

func (s *Server) ListToasts(c echo.Context) error {
	return c.JSON(http.StatusOK, ToastsResponse{
		Toasts: s.reminderService.Toasts(currentUser(c).OwnerID()),
	})
}

func (s *Server) DismissToast(c echo.Context) error {
	err := s.reminderService.Dismiss(currentUser(c).OwnerID(), c.Param("toast_id"))
	if err != nil {
		return s.toastError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type SnoozeRequest struct {
	Minutes int `json:"minutes" validate:"required,min=1,max=1440"`
}

func (s *Server) SnoozeToast(c echo.Context) error {
	var req SnoozeRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err, "")
	}

	err := s.reminderService.Snooze(currentUser(c).OwnerID(), c.Param("toast_id"), req.Minutes)
	if err != nil {
		return s.toastError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) toastError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, reminder.ErrToastNotFound):
		return JsonError(c, http.StatusNotFound, err)
	case errors.Is(err, reminder.ErrInvalidSnooze):
		return JsonError(c, http.StatusUnprocessableEntity, err)
	default:
		s.logger.Error("toast action failed", "err", err)
		return JsonError(c, http.StatusInternalServerError, err)
	}
}
