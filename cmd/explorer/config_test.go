package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/nft-explorer/pkg/client/glacier"
	"github.com/vladislavprovich/nft-explorer/pkg/ipfs"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ipfs.DefaultGateways, cfg.IPFS.Gateways)
	assert.Equal(t, glacier.DefaultBaseURL, cfg.Client.BaseURL)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfig_InvalidNestedConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "bad_ipfs_gateways",
			env:     map[string]string{"IPFS_GATEWAYS": "not-a-url,ftp://x"},
			wantErr: "Gateways",
		},
		{
			name:    "sub_millisecond_probe_cache_ttl",
			env:     map[string]string{"IPFS_PROBE_CACHE_TTL": "1us"},
			wantErr: "ProbeCacheTTL",
		},
		{
			name:    "bad_glacier_base_url",
			env:     map[string]string{"GLACIER_BASE_URL": "::::bad"},
			wantErr: "BaseURL",
		},
		{
			name:    "placeholder_size_too_large",
			env:     map[string]string{"PLACEHOLDER_SIZE": "99999"},
			wantErr: "Size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}
