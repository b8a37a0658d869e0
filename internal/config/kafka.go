package config

type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES,required" envSeparator:","`
	Group     string   `env:"KAFKA_GROUP" envDefault:"inventory-pos"`
	// ClientID identifies this process in broker logs and quotas.
	ClientID string `env:"KAFKA_CLIENT_ID" envDefault:"inventory-pos"`
}
