package ipfs

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/vladislavprovich/nft-explorer/pkg/cache"
)

const scheme = "ipfs://"

var cidV0 = regexp.MustCompile(`(Qm[1-9A-HJ-NP-Za-km-z]{44}.*$)`)

// GatewayUnreachableError is a single failed probe. The resolver recovers from it
// by moving on to the next gateway.
type GatewayUnreachableError struct {
	Gateway string
	URL     string
	Err     error
}

func (e *GatewayUnreachableError) Error() string {
	return fmt.Sprintf("gateway %s unreachable for %s: %v", e.Gateway, e.URL, e.Err)
}

func (e *GatewayUnreachableError) Unwrap() error {
	return e.Err
}

// Resolver turns content URIs into HTTP URLs served by one of a fixed list of gateways.
type Resolver struct {
	client *http.Client
	logger *slog.Logger
	cfg    Config
	memo   cache.Service
}

func NewResolver(httpClient *http.Client, cfg Config, memo cache.Service, log *slog.Logger) *Resolver {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	cfg = cfg.WithDefaults()
	if memo == nil {
		memo = cache.NewMemory(cfg.ProbeCacheTTL, 2*cfg.ProbeCacheTTL)
	}

	return &Resolver{
		client: httpClient,
		logger: log,
		cfg:    cfg,
		memo:   memo,
	}
}

func (r *Resolver) Gateways() []string {
	return append([]string(nil), r.cfg.Gateways...)
}

func (r *Resolver) Config() Config {
	return r.cfg
}

// Resolve never fails: HTTP(S) and unknown schemes pass through, IPFS content is
// mapped to the first gateway that answers a probe, or to the first gateway when
// none does.
func (r *Resolver) Resolve(ctx context.Context, uri string) string {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return ""
	}

	cid, ok := CID(uri)
	if !ok {
		return uri
	}

	if gateway, hit := r.memo.Get(cid); hit {
		return gateway + cid
	}

	for _, gateway := range r.cfg.Gateways {
		target := gateway + cid
		if err := r.probe(ctx, gateway, target); err != nil {
			r.logger.DebugContext(ctx, "ipfs gateway probe failed", slog.Any("error", err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		r.memo.Set(cid, gateway, r.cfg.ProbeCacheTTL)
		return target
	}

	return r.cfg.Gateways[0] + cid
}

// Candidates lists the URL of the content under every configured gateway, in order.
func (r *Resolver) Candidates(uri string) []string {
	cid, ok := CID(strings.TrimSpace(uri))
	if !ok {
		return nil
	}

	urls := make([]string, 0, len(r.cfg.Gateways))
	for _, gateway := range r.cfg.Gateways {
		urls = append(urls, gateway+cid)
	}
	return urls
}

func (r *Resolver) probe(ctx context.Context, gateway, target string) error {
	probeCtx, cancel := context.WithTimeout(ctx, r.cfg.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, target, nil)
	if err != nil {
		return &GatewayUnreachableError{Gateway: gateway, URL: target, Err: err}
	}

	res, err := r.client.Do(req)
	if err != nil {
		return &GatewayUnreachableError{Gateway: gateway, URL: target, Err: err}
	}
	defer func() {
		if err = res.Body.Close(); err != nil {
			r.logger.DebugContext(ctx, "error closing probe response body", slog.Any("error", err))
		}
	}()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		return &GatewayUnreachableError{
			Gateway: gateway,
			URL:     target,
			Err:     fmt.Errorf("unexpected status %d", res.StatusCode),
		}
	}

	return nil
}

// IsIPFS reports whether uri addresses IPFS content.
func IsIPFS(uri string) bool {
	_, ok := CID(uri)
	return ok
}

// CID extracts the content path (CID plus optional sub-path) from an ipfs:// URI,
// an /ipfs/<cid> path or a bare CIDv0. HTTP(S) URLs are never treated as IPFS
// content, even when they embed a CID, so gateway URLs pass through unchanged.
func CID(uri string) (string, bool) {
	switch {
	case strings.HasPrefix(uri, scheme):
		cid := strings.TrimPrefix(uri, scheme)
		cid = strings.TrimPrefix(cid, "ipfs/")
		if cid == "" {
			return "", false
		}
		return cid, true
	case isHTTP(uri):
		return "", false
	case strings.HasPrefix(uri, "/ipfs/"):
		cid := strings.TrimPrefix(uri, "/ipfs/")
		return cid, cid != ""
	}

	if strings.Contains(uri, ":") {
		return "", false
	}
	if parts := cidV0.FindStringSubmatch(uri); len(parts) == 2 && strings.HasPrefix(uri, "Qm") {
		return parts[1], true
	}

	return "", false
}

// IsHTTPURL reports whether s is an absolute http or https URL.
func IsHTTPURL(s string) bool {
	if !isHTTP(s) {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Host != ""
}

func isHTTP(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
