package backend

import (
	"context"
	"fmt"
	"github.com/r3labs/diff"
	"net/http"
)

func (c *Client) CreateHealthRecord(ctx context.Context, rec NewHealthRecord) (*HealthRecord, error) {
	out := &HealthRecord{}
	if err := c.post(ctx, "/health/records", rec, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LatestHealthRecord(ctx context.Context, userID int) (*HealthRecord, error) {
	out := &HealthRecord{}
	if err := c.get(ctx, fmt.Sprintf("/health/records/%d/latest", userID), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateHealthRecord sends the changed fields of a HealthFields value.
func (c *Client) UpdateHealthRecord(ctx context.Context, recordID int, changes diff.Changelog) (*HealthRecord, error) {
	payload, err := UpdatePayload(changes)
	if err != nil {
		return nil, err
	}

	out := &HealthRecord{}
	if err := c.put(ctx, fmt.Sprintf("/health/records/%d", recordID), payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Recommendations(ctx context.Context, req RecommendationsRequest) (*Recommendations, error) {
	const path = "/health/ai-recommendations"

	var out recommendationsResponse
	if err := c.post(ctx, path, req, &out); err != nil {
		return nil, err
	}
	if !out.Success || out.Data == nil {
		detail := out.Error
		if detail == "" {
			detail = "Failed to generate recommendations"
		}
		return nil, &APIError{Status: http.StatusBadGateway, Detail: detail, Path: path}
	}
	return out.Data, nil
}

func (c *Client) CreateHealthReminder(ctx context.Context, r HealthReminder) (*HealthReminder, error) {
	out := &HealthReminder{}
	if err := c.post(ctx, "/health/reminders", r, out); err != nil {
		return nil, err
	}
	return out, nil
}
