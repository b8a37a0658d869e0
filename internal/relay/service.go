package relay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/mq"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/ptr"
)

var relayedMsgs = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "inventory",
	Subsystem: "outbox",
	Name:      "relayed_messages_total",
	Help:      "Number of outbox messages handed to the broker by result.",
}, []string{"result"})

var prunedMsgs = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "inventory",
	Subsystem: "outbox",
	Name:      "pruned_messages_total",
	Help:      "Number of relayed outbox messages deleted after the retention period.",
})

func init() {
	prometheus.MustRegister(relayedMsgs, prunedMsgs)
}

// Service moves outbox rows written by the domain services to Kafka.
type Service struct {
	cfg           config.Relay
	logger        *slog.Logger
	db            db.DB
	outboxMsgRepo repository.OutboxMsgRepository
	mqProducer    mq.Producer
	now           func() time.Time

	stopChan chan struct{}
}

func NewService(
	cfg config.Relay,
	logger *slog.Logger,
	db db.DB,
	outboxMsgRepo repository.OutboxMsgRepository,
	mqProducer mq.Producer,
) *Service {
	return &Service{
		cfg:           cfg,
		logger:        logger.With(slog.String("service", "relay")),
		db:            db,
		outboxMsgRepo: outboxMsgRepo,
		mqProducer:    mqProducer,
		now:           time.Now,
		stopChan:      make(chan struct{}),
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) CleanupFunc {
	ctx, cancel := context.WithCancel(ctx)

	stoppedChan := make(chan struct{})
	go func() {
		defer close(stoppedChan)
		s.run(ctx)
	}()

	return func() {
		close(s.stopChan)
		select {
		case <-stoppedChan:
		case <-time.After(5 * time.Second):
			cancel()
			<-stoppedChan
		}
		cancel()
	}
}

func (s *Service) run(ctx context.Context) {
	var lastPrune time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-time.After(s.cfg.Interval):
			if _, err := s.RelayBatch(ctx); err != nil {
				s.logger.ErrorContext(ctx, "error relaying outbox msgs", slog.Any("error", err))
			}

			if s.cfg.Retention > 0 && s.now().Sub(lastPrune) >= s.cfg.PruneInterval {
				lastPrune = s.now()
				if _, err := s.Prune(ctx); err != nil {
					s.logger.ErrorContext(ctx, "error pruning outbox msgs", slog.Any("error", err))
				}
			}
		}
	}
}

// Prune deletes messages relayed without error more than the retention
// period ago and returns how many were removed.
func (s *Service) Prune(ctx context.Context) (int64, error) {
	if s.cfg.Retention <= 0 {
		return 0, nil
	}

	deleted, err := s.outboxMsgRepo.DeleteRelayedOutboxMsgs(ctx, repository.DeleteRelayedOutboxMsgsParams{
		ProcessedBefore: s.now().Add(-s.cfg.Retention),
	})
	if err != nil {
		return 0, fmt.Errorf("delete relayed outbox msgs: %w", err)
	}

	if deleted > 0 {
		prunedMsgs.Add(float64(deleted))
		s.logger.InfoContext(ctx, "pruned relayed outbox msgs", slog.Int64("count", deleted))
	}

	return deleted, nil
}

// RelayBatch produces one batch of unprocessed outbox messages and marks
// them processed, recording the broker error of each failed message. It
// returns the number of messages handled.
func (s *Service) RelayBatch(ctx context.Context) (int, error) {
	handled := 0

	if err := s.db.WithTx(ctx, func(tx db.DB) error {
		outboxMsgRepo := s.outboxMsgRepo.WithDB(tx)

		outboxMsgs, err := outboxMsgRepo.ListUnprocessedOutboxMsgs(ctx, repository.ListUnprocessedOutboxMsgsParams{
			//nolint:gosec
			BatchSize: int32(s.cfg.BatchSize),
		})
		if err != nil {
			return fmt.Errorf("list unprocessed outbox msgs: %w", err)
		}

		if len(outboxMsgs) == 0 {
			return nil
		}

		s.logger.InfoContext(ctx, "relaying outbox msgs", slog.Int("count", len(outboxMsgs)))

		produceMsgs := make([]mq.ProduceMsg, 0, len(outboxMsgs))
		for _, msg := range outboxMsgs {
			produceMsgs = append(produceMsgs, mq.ProduceMsg{
				Topic:        msg.Topic,
				Headers:      msg.Headers,
				Payload:      msg.Payload,
				PartitionKey: msg.PartitionKey,
			})
		}

		produceErrs := s.mqProducer.Produce(ctx, produceMsgs...)

		items := make([]repository.BulkUpdateOutboxMsgsItem, 0, len(outboxMsgs))
		for i, msg := range outboxMsgs {
			item := repository.BulkUpdateOutboxMsgsItem{ID: msg.ID}

			if i < len(produceErrs) && produceErrs[i] != nil {
				s.logger.ErrorContext(ctx,
					"error producing message",
					slog.String("outbox_msg_id", msg.ID.String()),
					slog.String("topic", msg.Topic),
					slog.Any("error", produceErrs[i]),
				)
				item.Error = ptr.New(produceErrs[i].Error())
				relayedMsgs.WithLabelValues("error").Inc()
			} else {
				relayedMsgs.WithLabelValues("ok").Inc()
			}

			items = append(items, item)
		}

		if err := outboxMsgRepo.BulkUpdateOutboxMsgs(ctx, repository.BulkUpdateOutboxMsgsParams{
			Items: items,
		}); err != nil {
			return fmt.Errorf("bulk update outbox msgs: %w", err)
		}

		handled = len(items)
		return nil
	}); err != nil {
		return 0, fmt.Errorf("db with tx: %w", err)
	}

	return handled, nil
}
