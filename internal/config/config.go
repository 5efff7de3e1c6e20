package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Server struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	AsJSON bool   `env:"LOG_JSON" envDefault:"false"`
}

type Pricing struct {
	BaseURL     string        `env:"PRICING_BASE_URL,required,notEmpty"`
	Timeout     time.Duration `env:"PRICING_TIMEOUT" envDefault:"10s"`
	Concurrency int           `env:"PRICING_CONCURRENCY" envDefault:"4"`
}

type DynamoDB struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	SessionsTable   string `env:"SESSIONS_TABLE" envDefault:"estimate_sessions"`
	OrdersTable     string `env:"ORDERS_TABLE" envDefault:"composite_orders"`
	PaymentsTable   string `env:"PAYMENTS_TABLE" envDefault:"payments"`
}

type Payments struct {
	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock                   bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
	// Sandbox helpers: a known test payer used when the request carries none.
	TestPayerEmail  string `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	TestPayerUserID string `env:"MERCADOPAGO_TEST_PAYER_USER_ID"`
}

// Sandbox reports whether the access token belongs to a Mercado Pago test account.
func (p Payments) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(p.MercadoPagoAccessToken), "TEST-")
}

type Config struct {
	Server   Server
	Logger   Logger
	Pricing  Pricing
	DynamoDB DynamoDB
	Payments Payments
}

var cfg *Config

// Load reads the environment (and .env when APP_ENV=local) into the process config.
func Load(path ...string) error {
	const op = "config.Load"

	if os.Getenv("APP_ENV") == "local" {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	c, err := Parse()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	cfg = c
	return nil
}

// Parse builds a Config from the current environment without touching the global.
func Parse() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, err
	}
	if c.Pricing.Concurrency <= 0 {
		c.Pricing.Concurrency = 1
	}
	return &c, nil
}

func C() *Config { return cfg }
