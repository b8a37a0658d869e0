package config

type Sale struct {
	// AllowOversell lets a sale drive a product's stock below zero.
	// Turning it off rejects the whole sale instead.
	AllowOversell bool `env:"SALE_ALLOW_OVERSELL" envDefault:"true"`
}
