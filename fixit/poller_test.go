package fixit

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller_FetchesOnEachTick(t *testing.T) {
	fc := clockwork.NewFakeClock()
	counts := make(chan int, 1)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications/unread-count", r.URL.Path)
		w.Write([]byte(`{"count":3}`))
	}), WithClock(fc))

	poller := client.NewUnreadPoller(30*time.Second, func(c int) { counts <- c })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx) }()

	fc.BlockUntil(1)
	fc.Advance(30 * time.Second)

	select {
	case c := <-counts:
		assert.Equal(t, 3, c)
	case <-time.After(2 * time.Second):
		t.Fatal("poller never delivered a count")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestPoller_KeepsPollingAfterFailures(t *testing.T) {
	fc := clockwork.NewFakeClock()
	counts := make(chan int, 1)
	var calls atomic.Int32

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"flaky"}`))
			return
		}
		w.Write([]byte(`{"count":1}`))
	}), WithClock(fc))

	poller := client.NewUnreadPoller(time.Minute, func(c int) { counts <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx) }()

	// First tick fails, second succeeds.
	fc.BlockUntil(1)
	fc.Advance(time.Minute)
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	fc.Advance(time.Minute)

	select {
	case c := <-counts:
		assert.Equal(t, 1, c)
	case <-time.After(2 * time.Second):
		t.Fatal("poller stopped after a transient failure")
	}

	cancel()
	<-done
}
