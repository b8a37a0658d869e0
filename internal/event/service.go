package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tuanvumaihuynh/inventory-pos/internal/log"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/mq"
)

var eventsHandled = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "inventory",
	Name:      "events_handled_total",
	Help:      "Number of consumed events by topic and result.",
}, []string{"topic", "result"})

func init() {
	prometheus.MustRegister(eventsHandled)
}

// Service consumes the events relayed from the outbox.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.mqConsumer.RegisterHandler(TopicAlertRaised, jsonHandler(s.handleAlertRaisedEvent)); err != nil {
		return nil, fmt.Errorf("register alert raised event handler: %w", err)
	}

	if err := s.mqConsumer.RegisterHandler(TopicSaleCreated, jsonHandler(s.handleSaleCreatedEvent)); err != nil {
		return nil, fmt.Errorf("register sale created event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}

// jsonHandler decodes the payload into T before calling fn.
func jsonHandler[T any](fn func(context.Context, T) error) mq.HandlerFunc {
	return func(ctx context.Context, topic string, payload []byte) error {
		ctx = log.ContextWithAttrs(ctx, slog.String("topic", topic))

		var ev T
		if err := json.Unmarshal(payload, &ev); err != nil {
			eventsHandled.WithLabelValues(topic, "decode_error").Inc()
			return fmt.Errorf("unmarshal %s event: %w", topic, err)
		}

		if err := fn(ctx, ev); err != nil {
			eventsHandled.WithLabelValues(topic, "error").Inc()
			return fmt.Errorf("handle %s event: %w", topic, err)
		}

		eventsHandled.WithLabelValues(topic, "ok").Inc()
		return nil
	}
}
