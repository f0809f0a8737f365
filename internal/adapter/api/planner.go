package api

import (
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/backend"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/form"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (s *Server) MountPlanner() {
	routes := s.handler.Group("/planner", s.SessionRequired)

	routes.GET("/events/suggestions", s.EventSuggestions)
	routes.GET("/tasks/suggestions", s.TaskSuggestions)
	routes.GET("/preferences", s.GetPreferences)
	routes.PUT("/preferences", s.UpdatePreferences)
}

func (s *Server) EventSuggestions(c echo.Context) error {
	var q backend.EventSuggestionQuery
	if err := s.bind(c, &q); err != nil {
		return s.fail(c, err, "Invalid search criteria")
	}

	res, err := s.plannerService.EventSuggestions(c.Request().Context(), q)
	if err != nil {
		return s.fail(c, err, "Failed to get schedule suggestions")
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) TaskSuggestions(c echo.Context) error {
	var q backend.TaskSuggestionQuery
	if err := s.bind(c, &q); err != nil {
		return s.fail(c, err, "Invalid search criteria")
	}

	res, err := s.plannerService.TaskSuggestions(c.Request().Context(), q)
	if err != nil {
		return s.fail(c, err, "Failed to get task schedule suggestions")
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) GetPreferences(c echo.Context) error {
	prefs, err := s.plannerService.Preferences(c.Request().Context())
	if err != nil {
		return s.fail(c, err, "Failed to load preferences")
	}
	return c.JSON(http.StatusOK, prefs)
}

func (s *Server) UpdatePreferences(c echo.Context) error {
	var req form.PreferencesForm
	if err := s.decode(c, &req); err != nil {
		return s.fail(c, err, "")
	}

	ctx := c.Request().Context()
	before, err := s.plannerService.Preferences(ctx)
	if err != nil {
		return s.fail(c, err, "Failed to load preferences")
	}

	prefs, err := s.plannerService.UpdatePreferences(ctx, form.PreferencesFormFrom(before), req)
	if err != nil {
		return s.fail(c, err, "Failed to update preferences")
	}
	return c.JSON(http.StatusOK, prefs)
}
