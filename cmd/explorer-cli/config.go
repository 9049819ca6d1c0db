package main

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/vladislavprovich/nft-explorer/pkg/client/glacier"
	"github.com/vladislavprovich/nft-explorer/pkg/ipfs"
	"github.com/vladislavprovich/nft-explorer/pkg/logger"
	"github.com/vladislavprovich/nft-explorer/pkg/placeholder"
)

// Config is the server configuration without the HTTP listener.
type Config struct {
	Client      glacier.Config
	IPFS        ipfs.Config
	Placeholder placeholder.Config
	Logger      *logger.Config
}

func LoadConfig(ctx context.Context) (*Config, error) {
	var cfg Config

	// A missing .env is normal for the CLI.
	_ = godotenv.Load()

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load cli config: %w", err)
	}

	cfg.IPFS = cfg.IPFS.WithDefaults()

	if err := cfg.ValidateWithContext(ctx); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, c,
		validation.Field(&c.Client),
		validation.Field(&c.IPFS),
		validation.Field(&c.Placeholder),
		validation.Field(&c.Logger),
	)
}
