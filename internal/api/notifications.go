package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smartrecruiter/smartrec/internal/domain"
)

// ListNotifications returns the logged-in user's notifications.
func (c *Client) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.send(ctx, http.MethodGet, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type markReadRequest struct {
	IsRead bool `json:"is_read"`
}

// MarkNotificationRead flags a notification as read server-side.
func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	path := fmt.Sprintf("/notifications/%d", id)
	return c.send(ctx, http.MethodPatch, path, markReadRequest{IsRead: true}, nil)
}
