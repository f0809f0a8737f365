package api

import (
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/backend"
	plannerapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/planner"
	reminderapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/reminder"
	wellnessapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/wellness"
	"log/slog"
	"net"
	"strconv"
	"time"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func Backend(c *backend.Client) Option {
	return func(s *Server) {
		s.backend = c
	}
}

func WellnessService(service *wellnessapp.Service) Option {
	return func(s *Server) {
		s.wellnessService = service
	}
}

func PlannerService(service *plannerapp.Service) Option {
	return func(s *Server) {
		s.plannerService = service
	}
}

func ReminderService(service *reminderapp.Service) Option {
	return func(s *Server) {
		s.reminderService = service
	}
}

// SessionCookie names the cookie that carries the session of the remote API.
func SessionCookie(name string) Option {
	return func(s *Server) {
		s.cookieName = name
	}
}

// Location is the zone in which form dates without an offset are read.
func Location(loc *time.Location) Option {
	return func(s *Server) {
		s.location = loc
	}
}

func Clock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}
