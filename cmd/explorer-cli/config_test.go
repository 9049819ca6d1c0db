package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RejectsBadGateways(t *testing.T) {
	t.Setenv("IPFS_GATEWAYS", "not-a-url,ftp://x")

	cfg, err := LoadConfig(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gateways")
	assert.Nil(t, cfg)
}

func TestLoadConfig_RejectsBadGlacierURL(t *testing.T) {
	t.Setenv("GLACIER_BASE_URL", "::::bad")

	_, err := LoadConfig(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BaseURL")
}
