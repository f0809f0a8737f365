package api

import (
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/backend"
	"github.com/labstack/echo/v4"
	"github.com/mileusna/useragent"
	slogecho "github.com/samber/slog-echo"
	"log/slog"
	"net/http"
)

const KeyCurrentUser = "current_user"

// SessionRequired resolves the user behind the session cookie through the
// remote API and keeps the session on the request context for every call
// the handler makes.
func (s *Server) SessionRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(s.cookieName)
		if err != nil || cookie.Value == "" {
			return JsonError(c, http.StatusUnauthorized, "Not authenticated")
		}

		ctx := backend.WithSession(c.Request().Context(), cookie.Value)
		c.SetRequest(c.Request().WithContext(ctx))

		user, err := s.backend.CurrentUser(ctx)
		if err != nil {
			return s.fail(c, err, "Failed to load user")
		}

		slogecho.AddCustomAttributes(c, slog.Int("user_id", user.ID))
		slogecho.AddCustomAttributes(c, clientAttr(c.Request().UserAgent()))

		c.Set(KeyCurrentUser, user)
		if err := next(c); err != nil {
			c.Error(err)
		}
		return nil
	}
}

// clientAttr describes the caller's browser for the request log line.
func clientAttr(ua string) slog.Attr {
	agent := useragent.Parse(ua)
	return slog.Group("client",
		slog.String("browser", agent.Name),
		slog.String("version", agent.Version),
		slog.String("os", agent.OS),
		slog.String("device", deviceType(agent)),
	)
}

func deviceType(agent useragent.UserAgent) string {
	switch {
	case agent.Bot:
		return "bot"
	case agent.Tablet:
		return "tablet"
	case agent.Mobile:
		return "mobile"
	case agent.Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

func currentUser(c echo.Context) *backend.User {
	return c.Get(KeyCurrentUser).(*backend.User)
}

func (s *Server) clearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
