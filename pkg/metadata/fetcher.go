package metadata

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vladislavprovich/nft-explorer/pkg/ipfs"
)

const maxDocumentSize = 2 << 20

// GatewayResolver is the part of ipfs.Resolver the fetcher depends on.
type GatewayResolver interface {
	Resolve(ctx context.Context, uri string) string
	Candidates(uri string) []string
}

// FetchError reports that no attempt produced a usable document.
type FetchError struct {
	URI      string
	Attempts []error
}

func (e *FetchError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("metadata fetch failed for %q: nothing to fetch", e.URI)
	}
	return fmt.Sprintf("metadata fetch failed for %q after %d attempt(s): %v",
		e.URI, len(e.Attempts), errors.Join(e.Attempts...))
}

func (e *FetchError) Unwrap() []error {
	return e.Attempts
}

type Fetcher struct {
	client   *http.Client
	resolver GatewayResolver
	logger   *slog.Logger
	timeout  time.Duration
}

func NewFetcher(httpClient *http.Client, resolver GatewayResolver, timeout time.Duration, log *slog.Logger) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = ipfs.DefaultFetchTimeout
	}
	if log == nil {
		log = slog.Default()
	}

	return &Fetcher{
		client:   httpClient,
		resolver: resolver,
		logger:   log,
		timeout:  timeout,
	}
}

// Fetch retrieves and parses the document behind tokenURI. IPFS documents are retried
// against every remaining gateway in order; each attempt is bounded by the fetch timeout.
func (f *Fetcher) Fetch(ctx context.Context, tokenURI string) (*Metadata, error) {
	tokenURI = strings.TrimSpace(tokenURI)
	if tokenURI == "" {
		return nil, &FetchError{URI: tokenURI}
	}

	if strings.HasPrefix(tokenURI, "data:") {
		md, err := decodeDataURI(tokenURI)
		if err != nil {
			return nil, &FetchError{URI: tokenURI, Attempts: []error{err}}
		}
		return md, nil
	}

	first := f.resolver.Resolve(ctx, tokenURI)
	tried := map[string]struct{}{first: {}}

	md, err := f.get(ctx, first)
	if err == nil {
		return md, nil
	}
	attempts := []error{err}

	if ipfs.IsIPFS(tokenURI) {
		for _, candidate := range f.resolver.Candidates(tokenURI) {
			if _, ok := tried[candidate]; ok {
				continue
			}
			if ctx.Err() != nil {
				attempts = append(attempts, ctx.Err())
				break
			}
			tried[candidate] = struct{}{}

			md, err = f.get(ctx, candidate)
			if err == nil {
				return md, nil
			}
			attempts = append(attempts, err)
		}
	}

	f.logger.DebugContext(ctx, "metadata fetch failed",
		slog.String("tokenUri", tokenURI),
		slog.Int("attempts", len(attempts)),
	)

	return nil, &FetchError{URI: tokenURI, Attempts: attempts}
}

func (f *Fetcher) get(ctx context.Context, target string) (*Metadata, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating metadata request for %s: %w", target, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	res, err := f.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error doing metadata request for %s: %w", target, err)
	}
	defer func() {
		if err = res.Body.Close(); err != nil {
			f.logger.DebugContext(ctx, "error closing metadata response body", slog.Any("error", err))
		}
	}()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d for %s", res.StatusCode, target)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("error reading metadata body for %s: %w", target, err)
	}

	md, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}

	return md, nil
}

// decodeDataURI handles on-chain documents of the form data:application/json[;base64],<payload>.
func decodeDataURI(uri string) (*Metadata, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, errors.New("malformed data URI")
	}

	params := strings.Split(header, ";")
	if mime := strings.ToLower(strings.TrimSpace(params[0])); mime != "" && !strings.HasSuffix(mime, "json") {
		return nil, fmt.Errorf("unsupported data URI media type %q", mime)
	}

	var body []byte
	if strings.EqualFold(params[len(params)-1], "base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("error decoding base64 data URI: %w", err)
		}
		body = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			unescaped = payload
		}
		body = []byte(unescaped)
	}

	return Parse(body)
}
