// Package config defines the environment variables supported by the
// paypal-query tool and includes default values for particular fields.
package config

import (
	"fmt"
	"sync"

	"github.com/companieshouse/gofigure"
	"github.com/go-playground/validator/v10"
)

var cfg *Config
var mtx sync.Mutex

// Config holds the PayPal API credentials and target site. Site is either a
// known site alias (sandbox or live) or a full base-URL override.
//
// Command-line flags are deliberately left to the CLI's own flag set, so the
// fields here bind to the environment only.
type Config struct {
	ClientID     string `env:"PAYPAL_CLIENT_ID"     validate:"required"`
	ClientSecret string `env:"PAYPAL_CLIENT_SECRET" validate:"required"`
	Site         string `env:"PAYPAL_SITE"`
}

// DefaultConfig returns a pointer to a Config instance that has been
// populated with default values.
func DefaultConfig() *Config {
	return &Config{
		Site: "sandbox",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment, or with default values if none are
// provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	loaded := DefaultConfig()

	err := gofigure.Gofigure(loaded)
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	if err = validate.Struct(loaded); err != nil {
		return nil, fmt.Errorf("invalid configuration: [%v]", err)
	}

	cfg = loaded
	return cfg, nil
}
