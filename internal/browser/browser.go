package browser

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"agentverse-browser/internal/model"
)

// Catalog is the slice of the API client the browser drives. The full
// client satisfies it; tests substitute fakes.
type Catalog interface {
	Search(ctx context.Context, params model.SearchParams) (*model.ResultPage, error)
	Content(ctx context.Context, id int) (*model.ContentItem, error)
}

// Sink receives the browser's render events. Loading brackets every
// dispatched search; exactly one of Results or Error follows for the
// request that is still the latest when it resolves.
type Sink interface {
	Loading(active bool)
	Results(page *model.ResultPage)
	Error(err error)
}

// DetailSink is optionally implemented by a Sink that renders the
// single-item overlay.
type DetailSink interface {
	Detail(item *model.ContentItem)
}

// Browser owns the filter state and turns its mutations into catalog
// searches. Responses are tagged with a sequence number at dispatch; a
// response that is no longer the latest when it arrives is discarded, so a
// slow earlier request can never clobber a faster later one.
type Browser struct {
	ctx    context.Context
	client Catalog
	sink   Sink
	log    zerolog.Logger

	mu         sync.Mutex
	filters    Filters
	totalPages int
	latest     uint64
	inflight   bool
}

// New creates a browser. ctx bounds every request the browser issues.
func New(ctx context.Context, client Catalog, sink Sink, log zerolog.Logger, pageSize int) *Browser {
	return &Browser{
		ctx:     ctx,
		client:  client,
		sink:    sink,
		log:     log,
		filters: newFilters(pageSize),
	}
}

// SetQuery stores the trimmed query text and rewinds to page 1. It does not
// dispatch a search by itself; Submit does.
func (b *Browser) SetQuery(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters.setQuery(text)
}

// Submit dispatches a search for the current filters. With an empty query
// it is a no-op: the catalog is never asked for the full, unfiltered set.
func (b *Browser) Submit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dispatchLocked()
}

// SetQuickFilter sets or clears the content-type quick filter and rewinds
// to page 1. The search dispatches only when a query is active; otherwise
// the filter is stored and takes effect with the next Submit.
func (b *Browser) SetQuickFilter(contentType string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters.setContentType(contentType)
	b.dispatchLocked()
}

// SetFacets sets the agent-type and platform facets and the sort order,
// rewinds to page 1, and dispatches when a query is active.
func (b *Browser) SetFacets(agentType, platform, sortBy string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters.setFacets(agentType, platform, sortBy)
	b.dispatchLocked()
}

// SetPage navigates to page n of the last result set. Out-of-range pages
// and the current page are no-ops; no refetch happens for either.
func (b *Browser) SetPage(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 1 || n > b.totalPages || n == b.filters.page {
		return
	}
	b.filters.page = n
	b.dispatchLocked()
}

// Filters returns a snapshot of the current filter state.
func (b *Browser) Filters() Filters {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filters
}

// Loading reports whether the latest dispatched search is still pending.
func (b *Browser) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inflight
}

// TotalPages returns the page count from the last successful search.
func (b *Browser) TotalPages() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalPages
}

// dispatchLocked issues one search for the current filters. Callers hold
// b.mu. Empty query suppresses the fetch entirely.
func (b *Browser) dispatchLocked() {
	if !b.filters.active() {
		return
	}

	b.latest++
	seq := b.latest
	params := b.filters.params()
	b.inflight = true
	b.sink.Loading(true)

	b.log.Debug().
		Uint64("seq", seq).
		Str("query", params.Query).
		Int("page", params.Page).
		Msg("search dispatched")

	go func() {
		page, err := b.client.Search(b.ctx, params)
		b.resolve(seq, page, err)
	}()
}

// resolve applies a search response unless a newer request was issued in
// the meantime.
func (b *Browser) resolve(seq uint64, page *model.ResultPage, err error) {
	b.mu.Lock()
	if seq != b.latest {
		b.mu.Unlock()
		b.log.Debug().Uint64("seq", seq).Msg("stale response discarded")
		return
	}
	b.inflight = false
	if err == nil {
		b.totalPages = page.TotalPages
	}
	b.mu.Unlock()

	b.sink.Loading(false)
	if err != nil {
		b.log.Error().Err(err).Uint64("seq", seq).Msg("search failed")
		b.sink.Error(err)
		return
	}
	b.sink.Results(page)
}

// Detail fetches a single item for the overlay. A failure is logged and
// surfaced through the sink's Error without touching the result state.
func (b *Browser) Detail(id int) {
	go func() {
		item, err := b.client.Content(b.ctx, id)
		if err != nil {
			b.log.Error().Err(err).Int("id", id).Msg("detail fetch failed")
			b.sink.Error(err)
			return
		}
		if ds, ok := b.sink.(DetailSink); ok {
			ds.Detail(item)
		}
	}()
}
