package fixit

import (
	"context"
	"time"
)

// Poller periodically fetches the unread notification count in the
// background. It runs on the client's clock so tests can drive it with a
// fake clock. A 401 during a poll triggers the same full session teardown
// as a foreground call.
type Poller struct {
	client   *Client
	interval time.Duration
	onCount  func(count int)
}

// NewUnreadPoller creates a poller that calls onCount after every
// successful fetch.
func (c *Client) NewUnreadPoller(interval time.Duration, onCount func(count int)) *Poller {
	return &Poller{client: c, interval: interval, onCount: onCount}
}

// Run polls until ctx is cancelled. The first fetch happens after one full
// interval. Fetch failures are logged and polling continues; an aborted
// fetch (caller cancellation) ends the loop.
func (p *Poller) Run(ctx context.Context) error {
	ticker := p.client.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
		}

		count, err := p.client.Notifications.UnreadCount(ctx)
		if err != nil {
			if IsAborted(err) {
				return err
			}
			p.client.log.Warn("unread count poll failed", "error", err)
			continue
		}
		p.onCount(count)
	}
}
