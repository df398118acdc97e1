package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParamsValuesOmitsEmptyFacets(t *testing.T) {
	p := SearchParams{
		Query:       "robot art",
		ContentType: "artwork",
		SortBy:      SortRelevance,
		Page:        1,
		PageSize:    20,
	}

	v := p.Values()

	assert.Equal(t, "robot art", v.Get("query"))
	assert.Equal(t, "artwork", v.Get("content_type"))
	assert.Equal(t, "relevance", v.Get("sort_by"))
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "20", v.Get("page_size"))

	// Blank facets must be omitted, not sent as empty values.
	_, hasAgent := v["agent_type"]
	_, hasPlatform := v["source_platform"]
	_, hasTags := v["tags"]
	assert.False(t, hasAgent)
	assert.False(t, hasPlatform)
	assert.False(t, hasTags)
}

func TestSearchParamsValuesDefaults(t *testing.T) {
	v := SearchParams{Query: "x"}.Values()

	assert.Equal(t, SortRelevance, v.Get("sort_by"))
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "20", v.Get("page_size"))
}

func TestSearchParamsValuesJoinsTags(t *testing.T) {
	v := SearchParams{Query: "x", Tags: []string{"robot", "art"}}.Values()
	assert.Equal(t, "robot,art", v.Get("tags"))
}

func TestContentItemDecodeMissingFields(t *testing.T) {
	raw := `{"id": 7, "content_type": "artwork", "title": "Untitled"}`

	var item ContentItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))

	assert.Equal(t, 7, item.ID)
	assert.Zero(t, item.ViewCount)
	assert.Zero(t, item.LikeCount)
	assert.Zero(t, item.DownloadCount)
	assert.Nil(t, item.Agent)
	assert.Nil(t, item.IndexedAt)
}

func TestStatsDecodeMissingFieldsAreZero(t *testing.T) {
	var stats Stats
	require.NoError(t, json.Unmarshal([]byte(`{"total_agents": 3}`), &stats))

	assert.Equal(t, 3, stats.TotalAgents)
	assert.Zero(t, stats.TotalContents)
	assert.Zero(t, stats.TotalVideos)
	assert.Zero(t, stats.TotalCode)
}
