package backend

import (
	"log/slog"
	"net/http"
)

type Option func(*Client)

func BaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

func HTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

func Logger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func SessionCookie(name string) Option {
	return func(c *Client) {
		c.cookieName = name
	}
}

func Breaker(settings BreakerSettings) Option {
	return func(c *Client) {
		c.settings = settings
	}
}
