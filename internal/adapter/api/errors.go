package api

import (
	"context"
	"errors"
	"fmt"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/backend"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/form"
	"github.com/labstack/echo/v4"
	"net/http"
)

type JsonErrorModel struct {
	Message string `json:"message"`
}

func JsonError(c echo.Context, status int, content any) error {
	data := &JsonErrorModel{Message: fmt.Sprintf("%v", content)}
	return c.JSON(status, data)
}

type ValidationErrorModel struct {
	Errors form.FieldErrors `json:"errors"`
}

// BannerModel is a page level error the dashboard shows above the content
// until the user dismisses it.
type BannerModel struct {
	Message     string `json:"message"`
	Variant     string `json:"variant"`
	Dismissible bool   `json:"dismissible"`
}

func Banner(c echo.Context, status int, message string) error {
	return c.JSON(status, &BannerModel{
		Message:     message,
		Variant:     "danger",
		Dismissible: true,
	})
}

// fail answers a failed action. Validation problems go back per field, an
// expired session ends the session, and everything the remote API rejected
// becomes a banner carrying its detail or the fallback message.
func (s *Server) fail(c echo.Context, err error, fallback string) error {
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusUnprocessableEntity, &ValidationErrorModel{Errors: verr.Fields})
	}

	if errors.Is(err, ErrBadRequest) {
		return JsonError(c, http.StatusBadRequest, err)
	}

	if backend.IsUnauthorized(err) {
		s.clearSession(c)
		return JsonError(c, http.StatusUnauthorized, "Session expired, please log in again")
	}

	if errors.Is(err, context.Canceled) {
		s.logger.Debug("request cancelled", "path", c.Path())
		return JsonError(c, http.StatusServiceUnavailable, "Request cancelled")
	}

	if errors.Is(err, backend.ErrUnavailable) {
		s.logger.Warn("backend unavailable", "path", c.Path(), "err", err)
		return Banner(c, http.StatusServiceUnavailable, fallback)
	}

	message := fallback
	if detail := backend.Detail(err); detail != "" {
		message = detail
	}

	status := http.StatusBadGateway
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		status = apiErr.Status
	}

	s.logger.Warn("action failed", "path", c.Path(), "status", status, "err", err)
	return Banner(c, status, message)
}
