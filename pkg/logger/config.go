package logger

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Config struct {
	Level       string `envconfig:"LOGGER_LEVEL" default:"info"`
	Format      string `envconfig:"LOGGER_FORMAT" default:"json"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"nft-explorer"`
	WithSource  bool   `envconfig:"LOGGER_WITH_SOURCE" default:"false"`
}

func (c Config) ValidateWithContext(_ context.Context) error {
	if _, ok := getLevelMap()[strings.ToLower(c.Level)]; !ok {
		return fmt.Errorf("invalid log level: %s", c.Level)
	}

	switch strings.ToLower(c.Format) {
	case "json", "text":
	default:
		return errors.New("invalid logger format")
	}

	return nil
}
