package glacier

import (
	"context"
	"log/slog"

	"github.com/hashicorp/go-retryablehttp"
)

type Client interface {
	ListCollectibles(
		ctx context.Context,
		req *ListCollectiblesRequest,
	) (*ListCollectiblesResponse, error)
}

var _ Client = (*BasicClient)(nil)

type BasicClient struct {
	client *retryablehttp.Client
	logger *slog.Logger
	cfg    *Config
}

func NewBasicClient(httpClient *retryablehttp.Client, cfg *Config, log *slog.Logger) *BasicClient {
	return &BasicClient{
		client: httpClient,
		logger: log,
		cfg:    cfg,
	}
}

// NewRetryableClient wires the retry policy and logger from cfg onto a retryablehttp client.
func NewRetryableClient(cfg *Config, log *slog.Logger) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = cfg.RetryWaitMin
	rc.RetryWaitMax = cfg.RetryWaitMax
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = log

	return rc
}
