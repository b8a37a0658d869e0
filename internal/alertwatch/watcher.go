// Package alertwatch periodically re-reads the number of unread stock
// alerts so dashboards can show it without querying the store.
package alertwatch

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
)

var unreadAlerts = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "inventory",
	Name:      "unread_alerts",
	Help:      "Number of unread stock alerts at the last poll.",
})

func init() {
	prometheus.MustRegister(unreadAlerts)
}

// Counter reports the number of unread alerts. It is read only.
type Counter interface {
	CountUnreadAlerts(ctx context.Context) (int, error)
}

type Watcher struct {
	cfg     config.AlertWatch
	logger  *slog.Logger
	counter Counter

	unread   atomic.Int64
	polled   atomic.Bool
	stopChan chan struct{}
}

func New(cfg config.AlertWatch, logger *slog.Logger, counter Counter) *Watcher {
	return &Watcher{
		cfg:      cfg,
		logger:   logger.With(slog.String("service", "alertwatch")),
		counter:  counter,
		stopChan: make(chan struct{}),
	}
}

type CleanupFunc func()

// Run polls once immediately and then every configured interval until the
// returned cleanup is called.
func (w *Watcher) Run(ctx context.Context) CleanupFunc {
	ctx, cancel := context.WithCancel(ctx)

	stoppedChan := make(chan struct{})
	go func() {
		defer close(stoppedChan)
		w.run(ctx)
	}()

	return func() {
		close(w.stopChan)
		cancel()
		<-stoppedChan
	}
}

func (w *Watcher) run(ctx context.Context) {
	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-time.After(w.cfg.Interval):
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	if _, err := w.Poll(ctx); err != nil && ctx.Err() == nil {
		w.logger.ErrorContext(ctx, "error polling unread alerts", slog.Any("error", err))
	}
}

// Poll reads the unread alert count once and publishes it.
func (w *Watcher) Poll(ctx context.Context) (int, error) {
	count, err := w.counter.CountUnreadAlerts(ctx)
	if err != nil {
		return 0, err
	}

	prev := w.unread.Swap(int64(count))
	first := !w.polled.Swap(true)
	unreadAlerts.Set(float64(count))

	if first || prev != int64(count) {
		w.logger.InfoContext(ctx, "unread alerts changed",
			slog.Int64("previous", prev),
			slog.Int("unread", count),
		)
	}

	return count, nil
}

// Unread returns the count seen by the last successful poll.
func (w *Watcher) Unread() int {
	return int(w.unread.Load())
}
