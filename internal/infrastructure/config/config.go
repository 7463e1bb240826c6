package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Config is the process configuration, parsed from the environment once at
// startup and handed down through constructors. Nothing below the wiring
// layer reads env vars directly.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	// Optional local endpoint, e.g. http://dynamodb:8000.
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`

	ServicesTable string `env:"SERVICES_TABLE" envDefault:"services"`
	QuotesTable   string `env:"QUOTES_TABLE" envDefault:"quotes"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
