package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
)

// Pricing holds every rate and threshold the pricing engine and cart
// store read. Amounts are configured as plain decimal strings ("50.00")
// so the environment stays readable.
type Pricing struct {
	BulkThreshold         string `yaml:"BULK_THRESHOLD" env:"KART_BULK_THRESHOLD" env-default:"50.00"`
	BulkRate              string `yaml:"BULK_RATE" env:"KART_BULK_RATE" env-default:"0.10"`
	ServiceChargeRate     string `yaml:"SERVICE_CHARGE_RATE" env:"KART_SERVICE_CHARGE_RATE" env-default:"0.05"`
	TaxRate               string `yaml:"TAX_RATE" env:"KART_TAX_RATE" env-default:"0.06"`
	DeliveryFee           string `yaml:"DELIVERY_FEE" env:"KART_DELIVERY_FEE" env-default:"5.00"`
	FreeDeliveryThreshold string `yaml:"FREE_DELIVERY_THRESHOLD" env:"KART_FREE_DELIVERY_THRESHOLD" env-default:"30.00"`
	QuantityCap           int    `yaml:"QUANTITY_CAP" env:"KART_QUANTITY_CAP" env-default:"10"`
}

type RedisConnect struct {
	Addr     string `yaml:"REDIS_ADDR" env:"KART_REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"REDIS_PASSWORD" env:"KART_REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"KART_REDIS_DB" env-default:"0"`
}

type Config struct {
	Pricing Pricing      `yaml:"pricing"`
	Redis   RedisConnect `yaml:"redis"`
}

// Load reads configuration from the environment, falling back to the
// compiled defaults.
func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}

	if _, err := cfg.Pricing.Rates(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the compiled defaults without touching the
// environment, for embedding the engine in tests or other programs.
func Default() *Config {
	return &Config{
		Pricing: Pricing{
			BulkThreshold:         "50.00",
			BulkRate:              "0.10",
			ServiceChargeRate:     "0.05",
			TaxRate:               "0.06",
			DeliveryFee:           "5.00",
			FreeDeliveryThreshold: "30.00",
			QuantityCap:           10,
		},
		Redis: RedisConnect{
			Addr: "localhost:6379",
		},
	}
}

// Rates is the parsed, decimal form of Pricing the engine computes with.
type Rates struct {
	BulkThreshold         decimal.Decimal
	BulkRate              decimal.Decimal
	ServiceChargeRate     decimal.Decimal
	TaxRate               decimal.Decimal
	DeliveryFee           decimal.Decimal
	FreeDeliveryThreshold decimal.Decimal
	QuantityCap           int
}

func (p Pricing) Rates() (*Rates, error) {
	rates := &Rates{QuantityCap: p.QuantityCap}

	for _, field := range []struct {
		name  string
		raw   string
		value *decimal.Decimal
	}{
		{"BULK_THRESHOLD", p.BulkThreshold, &rates.BulkThreshold},
		{"BULK_RATE", p.BulkRate, &rates.BulkRate},
		{"SERVICE_CHARGE_RATE", p.ServiceChargeRate, &rates.ServiceChargeRate},
		{"TAX_RATE", p.TaxRate, &rates.TaxRate},
		{"DELIVERY_FEE", p.DeliveryFee, &rates.DeliveryFee},
		{"FREE_DELIVERY_THRESHOLD", p.FreeDeliveryThreshold, &rates.FreeDeliveryThreshold},
	} {
		parsed, err := decimal.NewFromString(field.raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s %q: %w", field.name, field.raw, err)
		}

		*field.value = parsed
	}

	return rates, nil
}
