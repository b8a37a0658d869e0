package config

type HTTP struct {
	Port    uint32 `env:"HTTP_PORT" envDefault:"8000"`
	Swagger bool   `env:"HTTP_SWAGGER" envDefault:"true"`
	// RequestValidation validates incoming requests against the embedded OpenAPI contract.
	RequestValidation bool     `env:"HTTP_REQUEST_VALIDATION" envDefault:"true"`
	AllowedOrigins    []string `env:"HTTP_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}
