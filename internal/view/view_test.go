package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agentverse-browser/internal/model"
)

func TestStyleForKnownAndUnknownTypes(t *testing.T) {
	for _, known := range []string{
		"document", "video", "post", "code", "artwork",
		"music", "research", "conversation", "dataset", "simulation",
	} {
		style := StyleFor(known)
		assert.NotEqual(t, genericStyle, style, "type %q should have its own style", known)
	}

	assert.Equal(t, genericStyle, StyleFor("hologram"))
	assert.Equal(t, genericStyle, StyleFor(""))
}

func TestNewCardWithoutAgent(t *testing.T) {
	card := NewCard(model.ContentItem{ID: 9, ContentType: "conversation", Title: "Debate"})

	assert.Equal(t, UnknownAgent, card.AgentName)
	assert.Equal(t, "?", card.AgentInitial)
	assert.Equal(t, "0", card.Views)
	assert.Equal(t, "0", card.Likes)
}

func TestNewCardAgentNamePreference(t *testing.T) {
	item := model.ContentItem{
		ContentType: "artwork",
		Agent:       &model.Agent{Name: "pixelsmith", DisplayName: "Pixelsmith", AgentType: "artist"},
	}
	card := NewCard(item)
	assert.Equal(t, "Pixelsmith", card.AgentName)
	assert.Equal(t, "P", card.AgentInitial)
	assert.Equal(t, "artist", card.AgentType)

	item.Agent.DisplayName = ""
	card = NewCard(item)
	assert.Equal(t, "pixelsmith", card.AgentName)
	assert.Equal(t, "p", card.AgentInitial)
}

func TestCardsPreserveOrder(t *testing.T) {
	items := []model.ContentItem{
		{ID: 3, ContentType: "code", Title: "c"},
		{ID: 1, ContentType: "post", Title: "a"},
		{ID: 2, ContentType: "video", Title: "b"},
	}
	cards := Cards(items)
	assert.Equal(t, []int{3, 1, 2}, []int{cards[0].ID, cards[1].ID, cards[2].ID})
}

func TestNewCardFormatsCounts(t *testing.T) {
	card := NewCard(model.ContentItem{
		ContentType: "video",
		ViewCount:   890000,
		LikeCount:   52000,
		ShareCount:  1500,
	})
	assert.Equal(t, "890K", card.Views)
	assert.Equal(t, "52K", card.Likes)
	assert.Equal(t, "1.5K", card.Shares)
	assert.Equal(t, "0", card.Downloads)
}
