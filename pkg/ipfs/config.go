package ipfs

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultProbeTimeout  = 3 * time.Second
	DefaultFetchTimeout  = 5 * time.Second
	DefaultProbeCacheTTL = 5 * time.Minute
)

// DefaultGateways is probed in order; the first entry is also the optimistic fallback.
var DefaultGateways = []string{
	"https://dweb.link/ipfs/",
	"https://gateway.pinata.cloud/ipfs/",
	"https://cloudflare-ipfs.com/ipfs/",
	"https://ipfs.io/ipfs/",
	"https://gateway.ipfs.io/ipfs/",
}

type Config struct {
	Gateways      []string      `envconfig:"IPFS_GATEWAYS"`
	ProbeTimeout  time.Duration `envconfig:"IPFS_PROBE_TIMEOUT" default:"3s"`
	FetchTimeout  time.Duration `envconfig:"IPFS_FETCH_TIMEOUT" default:"5s"`
	ProbeCacheTTL time.Duration `envconfig:"IPFS_PROBE_CACHE_TTL" default:"5m"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.Gateways, validation.Required, validation.Each(validation.By(gatewayBase))),
		validation.Field(&c.ProbeTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.FetchTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.ProbeCacheTTL, validation.Required, validation.Min(time.Millisecond)),
	)
}

// WithDefaults fills zero values with the package defaults.
func (c Config) WithDefaults() Config {
	if len(c.Gateways) == 0 {
		c.Gateways = append([]string(nil), DefaultGateways...)
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = DefaultProbeTimeout
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.ProbeCacheTTL <= 0 {
		c.ProbeCacheTTL = DefaultProbeCacheTTL
	}
	return c
}

func gatewayBase(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an absolute http(s) URL")
	}
	if !strings.HasSuffix(s, "/") {
		return errors.New("must end with '/'")
	}
	return nil
}
