package glacier

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	DefaultBaseURL = "https://glacier-api.avax.network/v1/chains/43114"
	DefaultAddress = "0x69155e7ca2e688ccdc247f6c4ddf374b3ae77bd6"
)

type Config struct {
	BaseURL      string        `envconfig:"GLACIER_BASE_URL" default:"https://glacier-api.avax.network/v1/chains/43114"`
	Address      string        `envconfig:"GLACIER_ADDRESS" default:"0x69155e7ca2e688ccdc247f6c4ddf374b3ae77bd6"`
	APIKey       string        `envconfig:"GLACIER_API_KEY"`
	RetryMax     int           `envconfig:"GLACIER_RETRY_MAX" default:"2"`
	RetryWaitMin time.Duration `envconfig:"GLACIER_RETRY_WAIT_MIN" default:"200ms"`
	RetryWaitMax time.Duration `envconfig:"GLACIER_RETRY_WAIT_MAX" default:"2s"`
	Timeout      time.Duration `envconfig:"GLACIER_TIMEOUT" default:"10s"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Address, validation.Required),
		validation.Field(&c.RetryMax, validation.Min(0), validation.Max(10)),
		validation.Field(&c.Timeout, validation.Required),
	)
}
