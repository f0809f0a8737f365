package api

import (
	"context"
	"errors"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/backend"
	plannerapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/planner"
	reminderapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/reminder"
	wellnessapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/wellness"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/form"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

var ErrBadRequest = errors.New("bad request")

type Server struct {
	handler         *echo.Echo
	logger          *slog.Logger
	addr            string
	backend         *backend.Client
	wellnessService *wellnessapp.Service
	plannerService  *plannerapp.Service
	reminderService *reminderapp.Service
	cookieName      string
	location        *time.Location
	now             func() time.Time
}

func NewServer(opt ...Option) *Server {
	e := echo.New()
	e.HideBanner = true

	s := &Server{
		handler:    e,
		logger:     slog.Default(),
		cookieName: backend.DefaultCookieName,
		location:   time.Local,
		now:        time.Now,
	}

	for _, opt := range opt {
		opt(s)
	}

	e.Server.WriteTimeout = 30 * time.Second
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.IdleTimeout = 60 * time.Second
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.MaxHeaderBytes = 8192

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(slogecho.NewWithConfig(s.logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelInfo,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	}))
	e.Use(middleware.Recover())
	s.Mount()
	return s
}

func (s *Server) Mount() {
	s.handler.GET("/healthz", s.Healthz)
	s.MountWellness()
	s.MountPlanner()
	s.MountSubmissions()
	s.MountForms()
	s.MountReminders()
}

func (s *Server) Start() error {
	return s.handler.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.handler.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// decode binds path, query and body without running any validation.
func (s *Server) decode(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		return ErrBadRequest
	}
	return nil
}

// bind decodes the request and checks its struct rules. Rule violations come
// back as *form.ValidationError.
func (s *Server) bind(c echo.Context, i interface{}) error {
	if err := s.decode(c, i); err != nil {
		return err
	}
	return form.Struct(i)
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, ErrBadRequest
	}
	return v, nil
}

func (s *Server) today() time.Time {
	return s.now().In(s.location)
}
