package browser

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentverse-browser/internal/model"
)

// fakeCatalog scripts one response per call, optionally gated on a channel
// so tests can control arrival order.
type fakeCatalog struct {
	mu      sync.Mutex
	calls   []model.SearchParams
	steps   []fakeStep
	byQuery map[string]fakeStep // takes precedence; for overlapping requests
}

type fakeStep struct {
	gate chan struct{} // when non-nil, Search blocks until it closes
	page *model.ResultPage
	err  error
}

func (f *fakeCatalog) Search(ctx context.Context, params model.SearchParams) (*model.ResultPage, error) {
	f.mu.Lock()
	n := len(f.calls)
	f.calls = append(f.calls, params)
	var step fakeStep
	if s, ok := f.byQuery[params.Query]; ok {
		step = s
	} else if n < len(f.steps) {
		step = f.steps[n]
	}
	f.mu.Unlock()

	if step.gate != nil {
		<-step.gate
	}
	if step.err != nil {
		return nil, step.err
	}
	if step.page != nil {
		return step.page, nil
	}
	return &model.ResultPage{Query: params.Query, Page: params.Page, TotalPages: 1}, nil
}

func (f *fakeCatalog) Content(ctx context.Context, id int) (*model.ContentItem, error) {
	return &model.ContentItem{ID: id, Title: "item"}, nil
}

func (f *fakeCatalog) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeCatalog) call(n int) model.SearchParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[n]
}

// recordingSink collects events and signals each Results/Error arrival.
type recordingSink struct {
	mu       sync.Mutex
	results  []*model.ResultPage
	errs     []error
	loading  []bool
	resolved chan struct{}
}

func newRecordingSink() *recordingSink {
	return &recordingSink{resolved: make(chan struct{}, 16)}
}

func (s *recordingSink) Loading(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = append(s.loading, active)
}

func (s *recordingSink) Results(page *model.ResultPage) {
	s.mu.Lock()
	s.results = append(s.results, page)
	s.mu.Unlock()
	s.resolved <- struct{}{}
}

func (s *recordingSink) Error(err error) {
	s.mu.Lock()
	s.errs = append(s.errs, err)
	s.mu.Unlock()
	s.resolved <- struct{}{}
}

func (s *recordingSink) await(t *testing.T) {
	t.Helper()
	select {
	case <-s.resolved:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a browser event")
	}
}

func (s *recordingSink) lastResult(t *testing.T) *model.ResultPage {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.results)
	return s.results[len(s.results)-1]
}

func (s *recordingSink) resultCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

func newTestBrowser(fake *fakeCatalog, sink Sink) *Browser {
	return New(context.Background(), fake, sink, zerolog.Nop(), 20)
}

func TestEmptyQueryNeverDispatches(t *testing.T) {
	fake := &fakeCatalog{}
	b := newTestBrowser(fake, newRecordingSink())

	b.Submit()
	b.SetQuickFilter("artwork")
	b.SetFacets("artist", "civitai", model.SortPopular)
	b.SetPage(2)
	b.SetQuery("   ")
	b.Submit()

	assert.Zero(t, fake.callCount())
}

func TestSubmitDispatchesCurrentFilters(t *testing.T) {
	fake := &fakeCatalog{}
	sink := newRecordingSink()
	b := newTestBrowser(fake, sink)

	b.SetQuery("  robot art  ")
	b.SetQuickFilter("artwork") // dispatches: query is active
	sink.await(t)

	require.Equal(t, 1, fake.callCount())
	params := fake.call(0)
	assert.Equal(t, "robot art", params.Query)
	assert.Equal(t, "artwork", params.ContentType)
	assert.Equal(t, model.SortRelevance, params.SortBy)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
}

func TestQuickFilterInertWithoutQuery(t *testing.T) {
	fake := &fakeCatalog{}
	sink := newRecordingSink()
	b := newTestBrowser(fake, sink)

	b.SetQuickFilter("video")
	assert.Zero(t, fake.callCount())

	// The stored filter takes effect once a query is submitted.
	b.SetQuery("drones")
	b.Submit()
	sink.await(t)

	require.Equal(t, 1, fake.callCount())
	assert.Equal(t, "video", fake.call(0).ContentType)
}

func TestFacetChangeResetsPage(t *testing.T) {
	fake := &fakeCatalog{steps: []fakeStep{
		{page: &model.ResultPage{Page: 1, TotalPages: 5, Query: "q"}},
		{page: &model.ResultPage{Page: 3, TotalPages: 5, Query: "q"}},
		{page: &model.ResultPage{Page: 1, TotalPages: 5, Query: "q"}},
	}}
	sink := newRecordingSink()
	b := newTestBrowser(fake, sink)

	b.SetQuery("q")
	b.Submit()
	sink.await(t)

	b.SetPage(3)
	sink.await(t)
	assert.Equal(t, 3, fake.call(1).Page)

	b.SetFacets("artist", "", model.SortRecent)
	sink.await(t)
	assert.Equal(t, 1, fake.call(2).Page)
	assert.Equal(t, 1, b.Filters().Page())
}

func TestSetPageBounds(t *testing.T) {
	fake := &fakeCatalog{steps: []fakeStep{
		{page: &model.ResultPage{Page: 1, TotalPages: 3, Query: "q"}},
	}}
	sink := newRecordingSink()
	b := newTestBrowser(fake, sink)

	b.SetQuery("q")
	b.Submit()
	sink.await(t)
	require.Equal(t, 1, fake.callCount())

	b.SetPage(0)  // below range
	b.SetPage(4)  // above known total_pages
	b.SetPage(1)  // unchanged page
	assert.Equal(t, 1, fake.callCount(), "no refetch for invalid or identical pages")

	b.SetPage(2)
	sink.await(t)
	assert.Equal(t, 2, fake.callCount())
	assert.Equal(t, 2, fake.call(1).Page)
}

func TestStaleResponseDiscarded(t *testing.T) {
	slow := make(chan struct{})
	r1 := &model.ResultPage{Page: 1, TotalPages: 2, Query: "old"}
	r2 := &model.ResultPage{Page: 1, TotalPages: 7, Query: "new"}
	fake := &fakeCatalog{byQuery: map[string]fakeStep{
		"old": {gate: slow, page: r1},
		"new": {page: r2},
	}}
	sink := newRecordingSink()
	b := newTestBrowser(fake, sink)

	b.SetQuery("old")
	b.Submit() // R1, held back by the gate
	b.SetQuery("new")
	b.Submit() // R2, returns immediately
	sink.await(t)

	assert.Equal(t, "new", sink.lastResult(t).Query)

	// Let R1 finish late; it must be discarded, not rendered.
	close(slow)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, sink.resultCount())
	assert.Equal(t, "new", sink.lastResult(t).Query)
	assert.Equal(t, 7, b.TotalPages())
}

func TestSearchFailureSurfacesError(t *testing.T) {
	boom := errors.New("boom")
	fake := &fakeCatalog{steps: []fakeStep{
		{page: &model.ResultPage{Page: 1, TotalPages: 2, Query: "q"}},
		{err: boom},
	}}
	sink := newRecordingSink()
	b := newTestBrowser(fake, sink)

	b.SetQuery("q")
	b.Submit()
	sink.await(t)

	b.SetPage(2)
	sink.await(t)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Len(t, sink.errs, 1)
	assert.ErrorIs(t, sink.errs[0], boom)
	// The earlier successful page is untouched.
	require.Len(t, sink.results, 1)
	assert.Equal(t, "q", sink.results[0].Query)
}

func TestLoadingBracketsDispatch(t *testing.T) {
	fake := &fakeCatalog{}
	sink := newRecordingSink()
	b := newTestBrowser(fake, sink)

	b.SetQuery("q")
	b.Submit()
	sink.await(t)

	assert.False(t, b.Loading())
	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, []bool{true, false}, sink.loading)
}

func TestDetailDeliversItem(t *testing.T) {
	fake := &fakeCatalog{}
	sink := &detailSink{recordingSink: newRecordingSink(), got: make(chan *model.ContentItem, 1)}
	b := newTestBrowser(fake, sink)

	b.Detail(42)

	select {
	case item := <-sink.got:
		assert.Equal(t, 42, item.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for detail")
	}
}

type detailSink struct {
	*recordingSink
	got chan *model.ContentItem
}

func (s *detailSink) Detail(item *model.ContentItem) { s.got <- item }
