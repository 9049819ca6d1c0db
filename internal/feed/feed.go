package feed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/vladislavprovich/nft-explorer/internal/service"
)

type PageSource interface {
	FetchPage(ctx context.Context, req *service.FetchPageRequest) *service.Page
}

// Feed accumulates pages of collectibles for one browsing session. Refresh supersedes
// any fetch in flight; More is dropped while another fetch is running.
type Feed struct {
	id       string
	source   PageSource
	pageSize int
	logger   *slog.Logger
	alerts   *Alerts

	mu         sync.Mutex
	items      []service.NFT
	index      map[string]int
	nextToken  string
	hasMore    bool
	loaded     bool
	page       int
	lastErr    string
	loading    bool
	generation uint64
	cancel     context.CancelFunc
}

func New(source PageSource, pageSize int, log *slog.Logger) *Feed {
	id := uuid.NewString()
	if log == nil {
		log = slog.Default()
	}

	return &Feed{
		id:       id,
		source:   source,
		pageSize: pageSize,
		logger:   log.With(slog.String("feed", id)),
		alerts:   &Alerts{},
		index:    map[string]int{},
		hasMore:  true,
	}
}

func (f *Feed) ID() string {
	return f.id
}

func (f *Feed) Alerts() *Alerts {
	return f.alerts
}

// Refresh drops everything loaded so far and fetches the first page. A fetch that
// was still running is cancelled and its result discarded.
func (f *Feed) Refresh(ctx context.Context) *service.Page {
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	f.generation++
	gen := f.generation
	f.items = nil
	f.index = map[string]int{}
	f.nextToken = ""
	f.hasMore = true
	f.loaded = false
	f.page = 0
	f.lastErr = ""
	fetchCtx := f.begin(ctx)
	f.mu.Unlock()

	f.logger.InfoContext(ctx, "feed refresh")
	page := f.source.FetchPage(fetchCtx, &service.FetchPageRequest{PageSize: f.pageSize, Page: 1})
	f.apply(gen, page)

	return page
}

// More fetches the next page and returns how many items were appended. It does
// nothing before the first Refresh, after the last page, or while a fetch is running.
func (f *Feed) More(ctx context.Context) int {
	f.mu.Lock()
	if !f.loaded || !f.hasMore || f.nextToken == "" || f.loading {
		f.mu.Unlock()
		return 0
	}
	gen := f.generation
	req := &service.FetchPageRequest{PageSize: f.pageSize, PageToken: f.nextToken, Page: f.page + 1}
	fetchCtx := f.begin(ctx)
	f.mu.Unlock()

	page := f.source.FetchPage(fetchCtx, req)
	return f.apply(gen, page)
}

// begin marks a fetch as running. Callers hold f.mu.
func (f *Feed) begin(ctx context.Context) context.Context {
	fetchCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.loading = true
	return fetchCtx
}

func (f *Feed) apply(gen uint64, page *service.Page) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		f.logger.Debug("discarding superseded page")
		return 0
	}

	f.loading = false
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.loaded = true

	if page == nil {
		f.hasMore = false
		return 0
	}

	f.lastErr = page.Error
	f.nextToken = page.NextPageToken
	f.hasMore = page.HasMore
	f.page = page.Page

	added := 0
	for _, nft := range page.Collectibles {
		if _, dup := f.index[nft.ID]; dup {
			continue
		}
		f.index[nft.ID] = len(f.items)
		f.items = append(f.items, nft)
		added++
	}

	return added
}

func (f *Feed) Items() []service.NFT {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]service.NFT(nil), f.items...)
}

func (f *Feed) Get(id string) (service.NFT, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i, ok := f.index[id]
	if !ok {
		return service.NFT{}, false
	}
	return f.items[i], true
}

func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

func (f *Feed) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *Feed) PageNumber() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// Err is the error reported by the most recent page, if any.
func (f *Feed) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}
