package browser

import (
	"strings"

	"agentverse-browser/internal/model"
)

// Filters is the single source of truth for what the user is asking for:
// query text, facet selections, sort order and page. Fields are unexported
// so every mutation goes through the Browser and the page-reset invariant
// cannot be bypassed.
type Filters struct {
	query          string
	contentType    string
	agentType      string
	sourcePlatform string
	sortBy         string
	page           int
	pageSize       int
}

func newFilters(pageSize int) Filters {
	if pageSize < 1 {
		pageSize = model.DefaultPageSize
	}
	return Filters{
		sortBy:   model.SortRelevance,
		page:     1,
		pageSize: pageSize,
	}
}

// setQuery trims and stores the query text and rewinds to page 1.
func (f *Filters) setQuery(text string) {
	f.query = strings.TrimSpace(text)
	f.page = 1
}

// setContentType stores or clears the quick filter and rewinds to page 1.
func (f *Filters) setContentType(contentType string) {
	f.contentType = contentType
	f.page = 1
}

// setFacets stores the advanced facets and rewinds to page 1.
func (f *Filters) setFacets(agentType, platform, sortBy string) {
	f.agentType = agentType
	f.sourcePlatform = platform
	if sortBy == "" {
		sortBy = model.SortRelevance
	}
	f.sortBy = sortBy
	f.page = 1
}

func (f *Filters) active() bool { return f.query != "" }

// params snapshots the filters into a wire-ready request.
func (f *Filters) params() model.SearchParams {
	return model.SearchParams{
		Query:          f.query,
		ContentType:    f.contentType,
		AgentType:      f.agentType,
		SourcePlatform: f.sourcePlatform,
		SortBy:         f.sortBy,
		Page:           f.page,
		PageSize:       f.pageSize,
	}
}

// Query returns the current query text.
func (f Filters) Query() string { return f.query }

// ContentType returns the current quick-filter value, empty when unset.
func (f Filters) ContentType() string { return f.contentType }

// AgentType returns the agent-type facet, empty when unset.
func (f Filters) AgentType() string { return f.agentType }

// SourcePlatform returns the platform facet, empty when unset.
func (f Filters) SourcePlatform() string { return f.sourcePlatform }

// SortBy returns the current sort order.
func (f Filters) SortBy() string { return f.sortBy }

// Page returns the current page number.
func (f Filters) Page() int { return f.page }

// PageSize returns the fixed page size.
func (f Filters) PageSize() int { return f.pageSize }
