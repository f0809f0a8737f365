package backend

import (
	"context"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/schedule"
	"github.com/r3labs/diff"
	"net/url"
	"strconv"
)

func (q EventSuggestionQuery) Values() url.Values {
	v := url.Values{}
	v.Set("event_duration", strconv.Itoa(q.EventDuration))
	setIf(v, "preferred_date", q.PreferredDate)
	setIf(v, "preferred_time_start", q.PreferredTimeStart)
	setIf(v, "preferred_time_end", q.PreferredTimeEnd)
	setIf(v, "priority", q.Priority)
	setIf(v, "category", q.Category)
	return v
}

func (q TaskSuggestionQuery) Values() url.Values {
	v := url.Values{}
	v.Set("task_duration", strconv.Itoa(q.TaskDuration))
	setIf(v, "task_priority", q.TaskPriority)
	setIf(v, "task_urgency", q.TaskUrgency)
	setIf(v, "preferred_date", q.PreferredDate)
	setIf(v, "preferred_time_start", q.PreferredTimeStart)
	setIf(v, "preferred_time_end", q.PreferredTimeEnd)
	return v
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func (c *Client) EventSuggestions(ctx context.Context, q EventSuggestionQuery) (*Suggestions, error) {
	out := &Suggestions{}
	if err := c.get(ctx, "/smart-prioritization/schedule-suggestions", q.Values(), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TaskSuggestions(ctx context.Context, q TaskSuggestionQuery) (*Suggestions, error) {
	out := &Suggestions{}
	if err := c.get(ctx, "/smart-prioritization/task-schedule-suggestions", q.Values(), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Preferences(ctx context.Context) (schedule.Preferences, error) {
	var out schedule.Preferences
	if err := c.get(ctx, "/smart-prioritization/user-preferences", nil, &out); err != nil {
		return schedule.Preferences{}, err
	}
	return out, nil
}

// UpdatePreferences sends the changed fields of a schedule.PreferencesUpdate.
func (c *Client) UpdatePreferences(ctx context.Context, changes diff.Changelog) error {
	payload, err := UpdatePayload(changes)
	if err != nil {
		return err
	}
	return c.post(ctx, "/smart-prioritization/user-preferences", payload, nil)
}

func (c *Client) UserTasks(ctx context.Context) (*UserTasks, error) {
	out := &UserTasks{}
	if err := c.get(ctx, "/smart-prioritization/user-tasks", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
