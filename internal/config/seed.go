package config

type Seed struct {
	SampleData bool `env:"SEED_SAMPLE_DATA" envDefault:"false"`
}
