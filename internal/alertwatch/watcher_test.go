package alertwatch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
)

type fakeCounter struct {
	count atomic.Int64
	calls atomic.Int64
	err   error
}

func (c *fakeCounter) CountUnreadAlerts(context.Context) (int, error) {
	c.calls.Add(1)
	if c.err != nil {
		return 0, c.err
	}
	return int(c.count.Load()), nil
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatcherPoll(t *testing.T) {
	var logs syncBuffer
	counter := &fakeCounter{}
	counter.count.Store(3)

	w := New(config.AlertWatch{Interval: time.Hour}, slog.New(slog.NewTextHandler(&logs, nil)), counter)

	n, err := w.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, w.Unread())
	assert.InDelta(t, 3, testutil.ToFloat64(unreadAlerts), 0)

	_, err = w.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(logs.String(), "unread alerts changed"))

	counter.count.Store(1)
	_, err = w.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(logs.String(), "unread alerts changed"))
	assert.InDelta(t, 1, testutil.ToFloat64(unreadAlerts), 0)
}

func TestWatcherPollError(t *testing.T) {
	counter := &fakeCounter{err: errors.New("db down")}
	w := New(config.AlertWatch{Interval: time.Hour}, slog.New(slog.NewTextHandler(&syncBuffer{}, nil)), counter)

	_, err := w.Poll(context.Background())
	assert.Error(t, err)
	assert.Zero(t, w.Unread())
}

func TestWatcherRun(t *testing.T) {
	counter := &fakeCounter{}
	counter.count.Store(2)
	w := New(config.AlertWatch{Interval: 10 * time.Millisecond}, slog.New(slog.NewTextHandler(&syncBuffer{}, nil)), counter)

	cleanup := w.Run(context.Background())

	require.Eventually(t, func() bool { return counter.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cleanup()

	calls := counter.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, counter.calls.Load())
	assert.Equal(t, 2, w.Unread())
}
