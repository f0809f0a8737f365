package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/samber/lo"
	"io"
	"net/http"
	"strings"
)

var (
	ErrUnavailable = errors.New("backend unavailable")
	ErrNoSession   = errors.New("no session")
)

// APIError is a non-2xx answer of the remote API.
type APIError struct {
	Status int
	Detail string
	Path   string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Path, e.Status, e.Detail)
}

// IsUnauthorized reports a rejected session. A 401 from the Google
// integrations only means the integration was disconnected and does not
// count.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		return false
	}
	return !strings.Contains(apiErr.Path, "/google-calendar/") && !strings.Contains(apiErr.Path, "/gmail/")
}

// Detail returns the message the API attached to an error, if any.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

func responseError(resp *http.Response, path string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return &APIError{
		Status: resp.StatusCode,
		Detail: parseDetail(body),
		Path:   path,
	}
}

// parseDetail reads the "detail" field of an error body. It is either a
// string or a list of validation issues carrying a "msg".
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		return text
	}

	var issues []validationIssue
	if err := json.Unmarshal(payload.Detail, &issues); err == nil {
		msgs := lo.Map(issues, func(i validationIssue, _ int) string { return i.Msg })
		return strings.Join(lo.Without(msgs, ""), "; ")
	}
	return ""
}

type validationIssue struct {
	Msg string `json:"msg"`
}
