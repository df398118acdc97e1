package model

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Agent is the creator associated with a content item. The catalog API may
// omit it entirely, in which case the item carries a nil *Agent.
type Agent struct {
	ID              int      `json:"id"`
	AgentID         string   `json:"agent_id"`
	Name            string   `json:"name"`
	DisplayName     string   `json:"display_name,omitempty"`
	AvatarURL       string   `json:"avatar_url,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	AgentType       string   `json:"agent_type,omitempty"`
	Framework       string   `json:"framework,omitempty"`
	Capabilities    []string `json:"capabilities,omitempty"`
	Creator         string   `json:"creator,omitempty"`
	CreatorURL      string   `json:"creator_url,omitempty"`
	IsVerified      bool     `json:"is_verified"`
	ReputationScore float64  `json:"reputation_score"`
	TotalCreations  int      `json:"total_creations"`
}

// ContentItem is one indexed artifact returned by the catalog API. It is
// owned by the API and never mutated locally. Counts the API omits decode
// as zero.
type ContentItem struct {
	ID             int        `json:"id"`
	ContentType    string     `json:"content_type"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Content        string     `json:"content,omitempty"`
	ContentURL     string     `json:"content_url,omitempty"`
	ThumbnailURL   string     `json:"thumbnail_url,omitempty"`
	SourcePlatform string     `json:"source_platform,omitempty"`
	SourceURL      string     `json:"source_url,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Categories     []string   `json:"categories,omitempty"`
	Language       string     `json:"language,omitempty"`
	License        string     `json:"license,omitempty"`
	QualityScore   float64    `json:"quality_score"`
	ViewCount      int        `json:"view_count"`
	LikeCount      int        `json:"like_count"`
	ShareCount     int        `json:"share_count"`
	DownloadCount  int        `json:"download_count"`
	IsFeatured     bool       `json:"is_featured"`
	IndexedAt      *time.Time `json:"indexed_at,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	Agent          *Agent     `json:"agent,omitempty"`
}

// Stats is the catalog-wide counter set from GET /stats. Fields the server
// leaves out stay zero.
type Stats struct {
	TotalAgents    int `json:"total_agents"`
	TotalContents  int `json:"total_contents"`
	TotalDocuments int `json:"total_documents"`
	TotalVideos    int `json:"total_videos"`
	TotalPosts     int `json:"total_posts"`
	TotalCode      int `json:"total_code"`
	RecentIndexed  int `json:"recent_indexed"`
}

// Sort orders accepted by the search endpoint.
const (
	SortRelevance = "relevance"
	SortRecent    = "recent"
	SortPopular   = "popular"
	SortLiked     = "liked"
)

// DefaultPageSize is the fixed result-page size the browser requests.
const DefaultPageSize = 20

// SearchParams describes one search request. Query must be non-empty; all
// facet fields are optional and omitted from the wire when blank.
type SearchParams struct {
	Query          string
	ContentType    string
	AgentType      string
	SourcePlatform string
	Tags           []string
	SortBy         string
	Page           int
	PageSize       int
}

// Values encodes the parameters for the /search query string, omitting
// empty facets rather than sending blank values.
func (p SearchParams) Values() url.Values {
	v := url.Values{}
	v.Set("query", p.Query)
	if p.ContentType != "" {
		v.Set("content_type", p.ContentType)
	}
	if p.AgentType != "" {
		v.Set("agent_type", p.AgentType)
	}
	if p.SourcePlatform != "" {
		v.Set("source_platform", p.SourcePlatform)
	}
	if len(p.Tags) > 0 {
		v.Set("tags", strings.Join(p.Tags, ","))
	}
	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = SortRelevance
	}
	v.Set("sort_by", sortBy)
	page := p.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	v.Set("page_size", strconv.Itoa(pageSize))
	return v
}

// ResultPage is one page of search hits.
type ResultPage struct {
	Results    []ContentItem `json:"results"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	Query      string        `json:"query"`
}

// ErrorResponse is the JSON error body the catalog API returns.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
