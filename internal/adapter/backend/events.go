package backend

import (
	"context"
	"fmt"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/form"
)

func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	out := &User{}
	if err := c.get(ctx, "/auth/users/me", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActiveEvents lists the events that have not ended or been archived.
func (c *Client) ActiveEvents(ctx context.Context) ([]Event, error) {
	var out []Event
	if err := c.get(ctx, "/events/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEvent(ctx context.Context, f form.EventForm) (*Event, error) {
	out := &Event{}
	if err := c.post(ctx, "/events/create", f, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, eventID int, f form.EventForm) (*Event, error) {
	out := &Event{}
	if err := c.put(ctx, fmt.Sprintf("/events/update/%d", eventID), f, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := c.get(ctx, "/tasks/get-tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTask(ctx context.Context, f form.TaskForm) (*Task, error) {
	out := &Task{}
	if err := c.post(ctx, "/tasks/create", f, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateTask(ctx context.Context, taskID int, f form.TaskForm) (*Task, error) {
	out := &Task{}
	if err := c.put(ctx, fmt.Sprintf("/tasks/update/%d", taskID), f, out); err != nil {
		return nil, err
	}
	return out, nil
}
