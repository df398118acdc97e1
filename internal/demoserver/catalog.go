package demoserver

import (
	"sort"
	"strings"

	"agentverse-browser/internal/model"
)

// Catalog is the in-memory content store behind the stub API. It is seeded
// once and read-only afterwards, so handlers need no locking.
type Catalog struct {
	items []model.ContentItem
}

// NewCatalog builds a catalog from the given items.
func NewCatalog(items []model.ContentItem) *Catalog {
	return &Catalog{items: items}
}

// Search applies the same matching rules the real catalog uses: substring
// match on title, description, content and tags, exact content-type and
// agent-type facets, substring platform facet, then a descending sort on
// the column sort_by selects.
func (c *Catalog) Search(params model.SearchParams) *model.ResultPage {
	term := strings.ToLower(params.Query)

	matched := make([]model.ContentItem, 0)
	for _, item := range c.items {
		if !matchesTerm(item, term) {
			continue
		}
		if params.ContentType != "" && item.ContentType != params.ContentType {
			continue
		}
		if params.SourcePlatform != "" &&
			!strings.Contains(strings.ToLower(item.SourcePlatform), strings.ToLower(params.SourcePlatform)) {
			continue
		}
		if params.AgentType != "" && (item.Agent == nil || item.Agent.AgentType != params.AgentType) {
			continue
		}
		if !matchesTags(item, params.Tags) {
			continue
		}
		matched = append(matched, item)
	}

	sortItems(matched, params.SortBy)

	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = model.DefaultPageSize
	}
	page := params.Page
	if page < 1 {
		page = 1
	}

	total := len(matched)
	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &model.ResultPage{
		Results:    matched[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Query:      params.Query,
	}
}

// ByID returns the item with the given id, or false.
func (c *Catalog) ByID(id int) (model.ContentItem, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.ContentItem{}, false
}

// Recent returns up to limit items, newest indexed first.
func (c *Catalog) Recent(limit int) []model.ContentItem {
	out := make([]model.ContentItem, len(c.items))
	copy(out, c.items)
	sortItems(out, model.SortRecent)
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// Featured returns up to limit featured items, best quality first.
func (c *Catalog) Featured(limit int) []model.ContentItem {
	out := make([]model.ContentItem, 0)
	for _, item := range c.items {
		if item.IsFeatured {
			out = append(out, item)
		}
	}
	sortItems(out, model.SortRelevance)
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// Stats counts the catalog the way GET /stats reports it.
func (c *Catalog) Stats() model.Stats {
	stats := model.Stats{TotalContents: len(c.items)}
	agents := make(map[int]bool)
	for _, item := range c.items {
		if item.Agent != nil {
			agents[item.Agent.ID] = true
		}
		switch item.ContentType {
		case "document":
			stats.TotalDocuments++
		case "video":
			stats.TotalVideos++
		case "post":
			stats.TotalPosts++
		case "code":
			stats.TotalCode++
		}
	}
	stats.TotalAgents = len(agents)
	return stats
}

// ContentTypes lists the distinct content types, sorted.
func (c *Catalog) ContentTypes() []string {
	return c.distinct(func(item model.ContentItem) string { return item.ContentType })
}

// Platforms lists the distinct source platforms, sorted.
func (c *Catalog) Platforms() []string {
	return c.distinct(func(item model.ContentItem) string { return item.SourcePlatform })
}

// AgentTypes lists the distinct agent types, sorted.
func (c *Catalog) AgentTypes() []string {
	return c.distinct(func(item model.ContentItem) string {
		if item.Agent == nil {
			return ""
		}
		return item.Agent.AgentType
	})
}

// Tags lists the distinct tags, sorted.
func (c *Catalog) Tags() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, item := range c.items {
		for _, tag := range item.Tags {
			if tag != "" && !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) distinct(key func(model.ContentItem) string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, item := range c.items {
		k := key(item)
		if k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func matchesTerm(item model.ContentItem, term string) bool {
	if term == "" {
		return false
	}
	if strings.Contains(strings.ToLower(item.Title), term) ||
		strings.Contains(strings.ToLower(item.Description), term) ||
		strings.Contains(strings.ToLower(item.Content), term) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.ToLower(tag) == term {
			return true
		}
	}
	return false
}

func matchesTags(item model.ContentItem, tags []string) bool {
	for _, want := range tags {
		found := false
		for _, have := range item.Tags {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sortItems(items []model.ContentItem, sortBy string) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch sortBy {
		case model.SortRecent:
			at, bt := timeOf(a), timeOf(b)
			return at > bt
		case model.SortPopular:
			return a.ViewCount > b.ViewCount
		case model.SortLiked:
			return a.LikeCount > b.LikeCount
		default:
			return a.QualityScore > b.QualityScore
		}
	})
}

func timeOf(item model.ContentItem) int64 {
	if item.IndexedAt == nil {
		return 0
	}
	return item.IndexedAt.Unix()
}
