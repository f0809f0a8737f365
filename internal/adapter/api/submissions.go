package api

import (
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/form"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (s *Server) MountSubmissions() {
	events := s.handler.Group("/events", s.SessionRequired)
	events.POST("", s.CreateEvent)
	events.PUT("/:event_id", s.UpdateEvent)

	tasks := s.handler.Group("/tasks", s.SessionRequired)
	tasks.POST("", s.CreateTask)
	tasks.PUT("/:task_id", s.UpdateTask)
}

func (s *Server) CreateEvent(c echo.Context) error {
	return s.submitEvent(c, 0, http.StatusCreated, "Failed to create event")
}

func (s *Server) UpdateEvent(c echo.Context) error {
	eventID, err := intParam(c, "event_id")
	if err != nil {
		return s.fail(c, err, "")
	}
	return s.submitEvent(c, eventID, http.StatusOK, "Failed to update event")
}

func (s *Server) submitEvent(c echo.Context, eventID, status int, fallback string) error {
	var f form.EventForm
	if err := s.decode(c, &f); err != nil {
		return s.fail(c, err, "")
	}

	res, err := s.plannerService.SubmitEvent(c.Request().Context(), currentUser(c).OwnerID(), f, eventID, s.today())
	if err != nil {
		return s.fail(c, err, fallback)
	}
	return c.JSON(status, res)
}

func (s *Server) CreateTask(c echo.Context) error {
	return s.submitTask(c, 0, http.StatusCreated, "Failed to create task")
}

func (s *Server) UpdateTask(c echo.Context) error {
	taskID, err := intParam(c, "task_id")
	if err != nil {
		return s.fail(c, err, "")
	}
	return s.submitTask(c, taskID, http.StatusOK, "Failed to update task")
}

func (s *Server) submitTask(c echo.Context, taskID, status int, fallback string) error {
	var f form.TaskForm
	if err := s.decode(c, &f); err != nil {
		return s.fail(c, err, "")
	}

	res, err := s.plannerService.SubmitTask(c.Request().Context(), currentUser(c).OwnerID(), f, taskID, s.today())
	if err != nil {
		return s.fail(c, err, fallback)
	}
	return c.JSON(status, res)
}
