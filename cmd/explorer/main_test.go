package main

import (
	"context"
	"net"
	"os"
	"strconv"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/nft-explorer/pkg/logger"
)

func TestRun_GracefulShutdown(t *testing.T) {
	t.Setenv("HTTP_SERVER_PORT", "0")
	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)

	stop := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- run(context.Background(), logger.Discard(), cfg, stop) }()

	time.Sleep(50 * time.Millisecond)
	stop <- syscall.SIGTERM

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()

	t.Setenv("HTTP_SERVER_PORT", strconv.Itoa(busy.Addr().(*net.TCPAddr).Port))
	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)

	err = run(context.Background(), logger.Discard(), cfg, make(chan os.Signal))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not listen on port")
}
