package api

import (
	"errors"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/backend"
	reminderapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/reminder"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/form"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/reminder"
	"github.com/labstack/echo/v4"
	"net/http"
	"strconv"
)

func (s *Server) MountForms() {
	routes := s.handler.Group("/forms", s.SessionRequired)

	routes.GET("/auto-reply/defaults", s.AutoReplyDefaults)
	routes.POST("/auto-reply", s.NormalizeAutoReply)
	routes.POST("/auto-reply/exclusions", s.EditAutoReplyExclusions)
	routes.POST("/filters", s.ValidateFilter)
	routes.POST("/health-reminders", s.CreateHealthReminder)
}

func (s *Server) AutoReplyDefaults(c echo.Context) error {
	return c.JSON(http.StatusOK, form.DefaultAutoReplySettings())
}

// NormalizeAutoReply clamps the posted settings. Fields left out of the body
// keep their default values.
func (s *Server) NormalizeAutoReply(c echo.Context) error {
	settings := form.DefaultAutoReplySettings()
	if err := s.decode(c, &settings); err != nil {
		return s.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, settings.Normalize())
}

type ExclusionRequest struct {
	Settings form.AutoReplySettings `json:"settings"`
	Op       string                 `json:"op" validate:"oneof=add remove"`
	Kind     string                 `json:"kind" validate:"oneof=contact domain"`
	Value    string                 `json:"value" validate:"required"`
}

// EditAutoReplyExclusions adds or removes one excluded contact or domain.
func (s *Server) EditAutoReplyExclusions(c echo.Context) error {
	req := ExclusionRequest{Settings: form.DefaultAutoReplySettings()}
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err, "")
	}

	settings := req.Settings
	switch {
	case req.Op == "add" && req.Kind == "contact":
		settings = settings.AddExcludeContact(req.Value)
	case req.Op == "add":
		settings = settings.AddExcludeDomain(req.Value)
	case req.Kind == "contact":
		settings = settings.RemoveExcludeContact(req.Value)
	default:
		settings = settings.RemoveExcludeDomain(req.Value)
	}
	return c.JSON(http.StatusOK, settings.Normalize())
}

func (s *Server) ValidateFilter(c echo.Context) error {
	var f form.FilterForm
	if err := s.decode(c, &f); err != nil {
		return s.fail(c, err, "")
	}

	if err := f.Validate(); err != nil {
		return s.fail(c, err, "")
	}
	return c.JSON(http.StatusOK, f.Normalize())
}

type HealthReminderResponse struct {
	backend.HealthReminder
	ToastScheduled bool `json:"toast_scheduled"`
}

// CreateHealthReminder stores the reminder remotely and, when it is active,
// raises an in-app toast ahead of its next occurrence.
func (s *Server) CreateHealthReminder(c echo.Context) error {
	var f form.HealthReminderForm
	if err := s.decode(c, &f); err != nil {
		return s.fail(c, err, "")
	}

	f = f.Normalize()
	if err := f.Validate(); err != nil {
		return s.fail(c, err, "")
	}

	out, err := s.backend.CreateHealthReminder(c.Request().Context(), backend.HealthReminder{
		UserID:       currentUser(c).ID,
		Title:        f.Title,
		Type:         f.Type,
		Time:         f.Time,
		ReminderDate: f.Date,
		Frequency:    f.Frequency,
		Notes:        f.Notes,
		Active:       f.Active,
	})
	if err != nil {
		return s.fail(c, err, "Failed to create reminder")
	}

	res := HealthReminderResponse{HealthReminder: *out}
	if f.Active {
		res.ToastScheduled = s.scheduleHealthToast(currentUser(c).OwnerID(), f, out.ID)
	}
	return c.JSON(http.StatusCreated, res)
}

func (s *Server) scheduleHealthToast(ownerID string, f form.HealthReminderForm, reminderID int) bool {
	at, err := f.At(s.location)
	if err != nil {
		return false
	}

	r := reminder.ForHealth(ownerID, strconv.Itoa(reminderID), f.Title, f.Notes, at)
	err = s.reminderService.Add(ownerID, reminderapp.ScopeHealth, r)
	switch {
	case errors.Is(err, reminderapp.ErrAlreadyPassed):
		return false
	case err != nil:
		s.logger.Warn("failed to schedule health reminder toast", "owner_id", ownerID, "err", err)
		return false
	}
	return true
}
