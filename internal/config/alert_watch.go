package config

import "time"

// AlertWatch configures the background poll of the unread alert count.
type AlertWatch struct {
	Interval time.Duration `env:"ALERT_POLL_INTERVAL" envDefault:"30s"`
}
