package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/vladislavprovich/nft-explorer/internal/worker"
	"github.com/vladislavprovich/nft-explorer/pkg/client/glacier"
	"github.com/vladislavprovich/nft-explorer/pkg/metadata"
	"github.com/vladislavprovich/nft-explorer/pkg/placeholder"
)

type ExplorerService interface {
	FetchPage(ctx context.Context, req *FetchPageRequest) *Page
	GetPlaceholderImage(id string) string
	IsVideoMedia(mediaType string) bool
	ResolveURI(ctx context.Context, uri string) string
	Health(ctx context.Context) (*HealthResponse, error)
}

type MetadataFetcher interface {
	Fetch(ctx context.Context, tokenURI string) (*metadata.Metadata, error)
}

type URIResolver interface {
	Resolve(ctx context.Context, uri string) string
}

type Service struct {
	logger              *slog.Logger
	client              glacier.Client
	resolver            URIResolver
	placeholder         *placeholder.Generator
	convectorToClient   *ConvectorToClient
	convectorFromClient *ConvectorFromClient
	metrics             *worker.Metrics
}

type Options struct {
	Address     string
	Fetcher     MetadataFetcher
	Resolver    URIResolver
	Placeholder *placeholder.Generator
}

func NewExplorerService(_ context.Context, log *slog.Logger, client glacier.Client, opts Options) *Service {
	ph := opts.Placeholder
	if ph == nil {
		ph = placeholder.New(placeholder.Config{})
	}

	return &Service{
		logger:              log,
		client:              client,
		resolver:            opts.Resolver,
		placeholder:         ph,
		convectorToClient:   NewConvectorToClient(opts.Address),
		convectorFromClient: NewConvectorFromClient(log, opts.Fetcher, opts.Resolver, ph),
		metrics:             &worker.Metrics{},
	}
}

// WithClock replaces the time source used for createdAt.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.convectorFromClient.now = now
	return s
}

func (s *Service) Metrics() worker.MetricsSnapshot {
	return s.metrics.Snapshot()
}
