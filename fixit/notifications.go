package fixit

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// NotificationsService wraps per-user notifications, returning bare arrays.
// UnreadCount is the endpoint the background poller hits.
type NotificationsService service

const notificationsShape = ShapeBareArray

// NotificationListOptions filters notification listings.
type NotificationListOptions struct {
	Unread bool
	Limit  int
}

func (o *NotificationListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Unread {
		q.Set("unread", "true")
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}

func (s *NotificationsService) List(ctx context.Context, opts *NotificationListOptions) (*Page[Notification], error) {
	return getPage[Notification](ctx, s.client, "/notifications", opts.values(), notificationsShape)
}

// UnreadCount returns the number of unread notifications. A 401 here tears
// down the session exactly like any foreground call.
func (s *NotificationsService) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := s.client.getJSON(ctx, "/notifications/unread-count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// MarkRead marks one notification read.
func (s *NotificationsService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.client.patchJSON(ctx, "/notifications/"+id.String()+"/read", nil, nil)
}

// MarkAllRead marks every notification read.
func (s *NotificationsService) MarkAllRead(ctx context.Context) error {
	return s.client.postJSON(ctx, "/notifications/read-all", nil, nil)
}
