package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/form"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/schedule"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/wellness"
	"github.com/r3labs/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{
		BaseURL(server.URL + "/api/"),
		Logger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)
	return New(opts...)
}

func sessionCtx() context.Context {
	return WithSession(context.Background(), "sess-1")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_SendsSessionCookie(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/users/me", r.URL.Path)
		cookie, err := r.Cookie("session_id")
		require.NoError(t, err)
		assert.Equal(t, "sess-1", cookie.Value)
		writeJSON(w, http.StatusOK, map[string]any{"id": 42, "email": "a@b.c", "username": "ann"})
	})

	user, err := client.CurrentUser(sessionCtx())
	require.NoError(t, err)
	assert.Equal(t, 42, user.ID)
	assert.Equal(t, "42", user.OwnerID())
}

func TestClient_CustomCookieName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("sid")
		require.NoError(t, err)
		assert.Equal(t, "sess-1", cookie.Value)
		writeJSON(w, http.StatusOK, []Event{})
	}, SessionCookie("sid"))

	_, err := client.ActiveEvents(sessionCtx())
	require.NoError(t, err)
}

func TestClient_RequiresSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.Tasks(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "Title already used"})
	})

	_, err := client.CreateEvent(sessionCtx(), form.EventForm{Title: "x"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "/events/create", apiErr.Path)
	assert.Equal(t, "Title already used", Detail(err))
}

func TestParseDetail(t *testing.T) {
	assert.Equal(t, "boom", parseDetail([]byte(`{"detail":"boom"}`)))
	assert.Equal(t, "field required; too short",
		parseDetail([]byte(`{"detail":[{"msg":"field required"},{"msg":"too short"}]}`)))
	assert.Equal(t, "", parseDetail([]byte(`<html>oops</html>`)))
	assert.Equal(t, "", parseDetail([]byte(`{"message":"x"}`)))
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{Status: 401, Path: "/events/active"}))
	assert.False(t, IsUnauthorized(&APIError{Status: 401, Path: "/google-calendar/events"}))
	assert.False(t, IsUnauthorized(&APIError{Status: 401, Path: "/gmail/inbox"}))
	assert.False(t, IsUnauthorized(&APIError{Status: 403, Path: "/events/active"}))
	assert.False(t, IsUnauthorized(errors.New("other")))
}

func TestClient_EventSuggestionsQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/smart-prioritization/schedule-suggestions", r.URL.Path)
		assert.Equal(t, "60", r.URL.Query().Get("event_duration"))
		assert.Equal(t, "high", r.URL.Query().Get("priority"))
		assert.False(t, r.URL.Query().Has("category"))
		writeJSON(w, http.StatusOK, map[string]any{
			"suggestions": []map[string]any{
				{"start_hour": 9, "start_time": "09:00", "end_hour": 10, "end_time": "10:00", "score": 100, "final_score": 100},
			},
			"total_slots_found": 1,
		})
	})

	out, err := client.EventSuggestions(sessionCtx(), EventSuggestionQuery{EventDuration: 60, Priority: "high"})
	require.NoError(t, err)
	require.Len(t, out.Suggestions, 1)
	assert.Equal(t, 100, out.Suggestions[0].FinalScore)
}

func TestClient_UpdatePreferencesSendsChangedFields(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, map[string]any{"message": "Preferences updated successfully"})
	})

	before := schedule.DefaultPreferences()
	after := before
	after.MinGapBetweenEvents = 30
	after.EnergyLevels.Evening = schedule.LevelMedium

	changes, err := diff.Diff(before.Update(), after.Update())
	require.NoError(t, err)
	require.NoError(t, client.UpdatePreferences(sessionCtx(), changes))

	assert.Equal(t, map[string]any{
		"min_gap_between_events": float64(30),
		"evening_energy_level":   "medium",
	}, body)
}

func TestClient_UpdateHealthRecord(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/health/records/7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, map[string]any{"id": 7, "steps": 9000})
	})

	bmi := 22.0
	before := HealthFieldsFrom(wellness.MetricSet{Steps: 5000, MoodScore: 5}, 40)
	after := HealthFieldsFrom(wellness.MetricSet{BMI: &bmi, Steps: 9000, MoodScore: 5}, 55)

	changes, err := diff.Diff(before, after)
	require.NoError(t, err)

	rec, err := client.UpdateHealthRecord(sessionCtx(), 7, changes)
	require.NoError(t, err)
	assert.Equal(t, 9000, rec.Steps)
	assert.Equal(t, map[string]any{
		"bmi":            22.0,
		"steps":          float64(9000),
		"wellness_score": float64(55),
	}, body)
}

func TestClient_RecommendationsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": "model offline"})
	})

	_, err := client.Recommendations(sessionCtx(), RecommendationsRequest{MoodScore: 5})
	require.Error(t, err)
	assert.Equal(t, "model offline", Detail(err))
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(w, http.StatusInternalServerError, map[string]any{"detail": "db down"})
	}, Breaker(BreakerSettings{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, FailureThreshold: 2}))

	for i := 0; i < 2; i++ {
		_, err := client.Tasks(sessionCtx())
		assert.Equal(t, "db down", Detail(err))
	}

	_, err := client.Tasks(sessionCtx())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 2, calls)
}

func TestClient_BreakerIgnoresClientErrors(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "no record"})
	}, Breaker(BreakerSettings{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, FailureThreshold: 1}))

	for i := 0; i < 3; i++ {
		_, err := client.LatestHealthRecord(sessionCtx(), 1)
		assert.Equal(t, "no record", Detail(err))
	}
	assert.Equal(t, 3, calls)
}

func TestClient_CancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []Task{})
	})

	ctx, cancel := context.WithCancel(sessionCtx())
	cancel()

	_, err := client.Tasks(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpdatePayload_RejectsNested(t *testing.T) {
	_, err := UpdatePayload(diff.Changelog{{Type: diff.UPDATE, Path: []string{"energy_levels", "evening"}, To: "low"}})
	assert.ErrorIs(t, err, ErrNestedChange)
}
