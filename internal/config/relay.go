package config

import "time"

// Relay controls how outbox rows reach Kafka and how long relayed rows are kept.
type Relay struct {
	BatchSize uint32        `env:"RELAY_BATCH_SIZE" envDefault:"100"`
	Interval  time.Duration `env:"RELAY_INTERVAL" envDefault:"1s"`

	// Retention is how long successfully relayed rows stay in outbox_messages.
	// Zero disables pruning. Rows that failed to produce are never pruned.
	Retention     time.Duration `env:"RELAY_RETENTION" envDefault:"168h"`
	PruneInterval time.Duration `env:"RELAY_PRUNE_INTERVAL" envDefault:"1h"`

	// MetricsPort serves /metrics from the standalone relay. Zero disables it.
	MetricsPort uint32 `env:"RELAY_METRICS_PORT" envDefault:"9102"`
}
