package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/nft-explorer/pkg/logger"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.NewWithWriter(context.Background(), &logger.Config{
		Level:       "warn",
		Format:      "json",
		ServiceName: "explorer-test",
	}, &buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "id", "0xA-1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "explorer-test", entry["service"])
	assert.Equal(t, "0xA-1", entry["id"])
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.NewWithWriter(context.Background(), &logger.Config{Level: "DEBUG", Format: "text"}, &buf)
	require.NoError(t, err)

	l.Printf("request %s", "GET /health")

	assert.Contains(t, buf.String(), `msg="request GET /health"`)
}

func TestNewWithWriter_NilConfig(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.NewWithWriter(context.Background(), nil, &buf)
	require.NoError(t, err)

	l.Println("hello")
	assert.Contains(t, buf.String(), `"service":"nft-explorer"`)
}

func TestConfig_ValidateWithContext(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{name: "valid", cfg: logger.Config{Level: "info", Format: "json"}},
		{name: "upper case", cfg: logger.Config{Level: "ERROR", Format: "TEXT"}},
		{name: "bad level", cfg: logger.Config{Level: "verbose", Format: "json"}, wantErr: true},
		{name: "bad format", cfg: logger.Config{Level: "info", Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateWithContext(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
