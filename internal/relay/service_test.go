package relay

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/repository"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/mq"
)

// txDB only supports WithTx; the fake repository never touches it.
type txDB struct{ db.DB }

func (d txDB) WithTx(_ context.Context, fn func(db.DB) error) error { return fn(d) }

type fakeOutboxRepo struct {
	pending []repository.ListUnprocessedOutboxMsgsResult
	updated []repository.BulkUpdateOutboxMsgsItem
	cutoffs []time.Time
}

func (r *fakeOutboxRepo) WithDB(db.DB) repository.OutboxMsgRepository { return r }

func (r *fakeOutboxRepo) CreateOutboxMsg(context.Context, repository.CreateOutboxMsgParams) error {
	return nil
}

func (r *fakeOutboxRepo) ListUnprocessedOutboxMsgs(_ context.Context, params repository.ListUnprocessedOutboxMsgsParams) ([]repository.ListUnprocessedOutboxMsgsResult, error) {
	n := min(int(params.BatchSize), len(r.pending))
	return r.pending[:n], nil
}

func (r *fakeOutboxRepo) BulkUpdateOutboxMsgs(_ context.Context, params repository.BulkUpdateOutboxMsgsParams) error {
	r.updated = append(r.updated, params.Items...)
	return nil
}

func (r *fakeOutboxRepo) DeleteRelayedOutboxMsgs(_ context.Context, params repository.DeleteRelayedOutboxMsgsParams) (int64, error) {
	r.cutoffs = append(r.cutoffs, params.ProcessedBefore)
	return 4, nil
}

type fakeProducer struct {
	fail map[string]error
	sent []mq.ProduceMsg
}

func (p *fakeProducer) Produce(_ context.Context, msgs ...mq.ProduceMsg) []error {
	errs := make([]error, len(msgs))
	for i, msg := range msgs {
		p.sent = append(p.sent, msg)
		errs[i] = p.fail[msg.Topic]
	}
	return errs
}

func TestRelayBatch(t *testing.T) {
	ok := uuid.New()
	bad := uuid.New()
	skipped := uuid.New()

	repo := &fakeOutboxRepo{pending: []repository.ListUnprocessedOutboxMsgsResult{
		{ID: ok, Topic: "sales.sale.created", Payload: []byte(`{}`)},
		{ID: bad, Topic: "inventory.alert.raised", Payload: []byte(`{}`)},
		{ID: skipped, Topic: "sales.sale.created", Payload: []byte(`{}`)},
	}}
	producer := &fakeProducer{fail: map[string]error{"inventory.alert.raised": errors.New("broker down")}}

	svc := NewService(
		config.Relay{BatchSize: 2},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		txDB{},
		repo,
		producer,
	)

	n, err := svc.RelayBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, producer.sent, 2)
	require.Len(t, repo.updated, 2)
	assert.Equal(t, ok, repo.updated[0].ID)
	assert.Nil(t, repo.updated[0].Error)
	assert.Equal(t, bad, repo.updated[1].ID)
	require.NotNil(t, repo.updated[1].Error)
	assert.Equal(t, "broker down", *repo.updated[1].Error)
}

func TestRelayBatchEmpty(t *testing.T) {
	repo := &fakeOutboxRepo{}
	producer := &fakeProducer{}
	svc := NewService(config.Relay{BatchSize: 10}, slog.New(slog.NewTextHandler(io.Discard, nil)), txDB{}, repo, producer)

	n, err := svc.RelayBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, producer.sent)
	assert.Empty(t, repo.updated)
}

func TestPrune(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Should delete rows relayed before the retention cutoff", func(t *testing.T) {
		repo := &fakeOutboxRepo{}
		svc := NewService(config.Relay{Retention: 24 * time.Hour}, logger, txDB{}, repo, &fakeProducer{})
		svc.now = func() time.Time { return now }

		deleted, err := svc.Prune(context.Background())
		require.NoError(t, err)

		assert.EqualValues(t, 4, deleted)
		require.Len(t, repo.cutoffs, 1)
		assert.Equal(t, now.Add(-24*time.Hour), repo.cutoffs[0])
	})

	t.Run("Should keep every row when retention is disabled", func(t *testing.T) {
		repo := &fakeOutboxRepo{}
		svc := NewService(config.Relay{}, logger, txDB{}, repo, &fakeProducer{})

		deleted, err := svc.Prune(context.Background())
		require.NoError(t, err)

		assert.Zero(t, deleted)
		assert.Empty(t, repo.cutoffs)
	})
}
