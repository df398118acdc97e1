package view

import (
	"agentverse-browser/internal/model"
)

// TypeStyle is the icon and color a content type renders with. The table
// is static display configuration, not logic.
type TypeStyle struct {
	Icon  string
	Color string
}

var typeStyles = map[string]TypeStyle{
	"document":     {Icon: "📄", Color: "blue"},
	"video":        {Icon: "🎬", Color: "red"},
	"post":         {Icon: "💬", Color: "green"},
	"code":         {Icon: "💻", Color: "purple"},
	"artwork":      {Icon: "🎨", Color: "pink"},
	"music":        {Icon: "🎵", Color: "yellow"},
	"research":     {Icon: "🔬", Color: "indigo"},
	"conversation": {Icon: "🗨️", Color: "teal"},
	"dataset":      {Icon: "📊", Color: "orange"},
	"simulation":   {Icon: "🌐", Color: "cyan"},
}

var genericStyle = TypeStyle{Icon: "📦", Color: "gray"}

// StyleFor looks up the display style for a content type, falling back to
// the generic entry for unrecognized types.
func StyleFor(contentType string) TypeStyle {
	if s, ok := typeStyles[contentType]; ok {
		return s
	}
	return genericStyle
}

// UnknownAgent is the display name used when an item has no agent.
const UnknownAgent = "Unknown Agent"

// Card is the view model for one result card. All fields are ready to
// print; no further lookups or fallbacks are needed downstream.
type Card struct {
	ID            int
	Icon          string
	Color         string
	ContentType   string
	Title         string
	Description   string
	AgentName     string
	AgentInitial  string
	AgentType     string
	Platform      string
	Tags          []string
	Views         string
	Likes         string
	Shares        string
	Downloads     string
	Indexed       string
	ContentURL    string
	SourceURL     string
}

// NewCard reduces a content item to its card view model. Items without an
// agent render as "Unknown Agent" with a "?" avatar initial.
func NewCard(item model.ContentItem) Card {
	style := StyleFor(item.ContentType)

	name := UnknownAgent
	initial := "?"
	agentType := ""
	if item.Agent != nil {
		if item.Agent.DisplayName != "" {
			name = item.Agent.DisplayName
		} else if item.Agent.Name != "" {
			name = item.Agent.Name
		}
		agentType = item.Agent.AgentType
	}
	if name != UnknownAgent {
		initial = initialOf(name)
	}

	return Card{
		ID:           item.ID,
		Icon:         style.Icon,
		Color:        style.Color,
		ContentType:  item.ContentType,
		Title:        item.Title,
		Description:  item.Description,
		AgentName:    name,
		AgentInitial: initial,
		AgentType:    agentType,
		Platform:     item.SourcePlatform,
		Tags:         item.Tags,
		Views:        FormatCount(item.ViewCount),
		Likes:        FormatCount(item.LikeCount),
		Shares:       FormatCount(item.ShareCount),
		Downloads:    FormatCount(item.DownloadCount),
		Indexed:      RelativeTime(item.IndexedAt),
		ContentURL:   item.ContentURL,
		SourceURL:    item.SourceURL,
	}
}

// Cards maps a result sequence to card view models, preserving order.
func Cards(items []model.ContentItem) []Card {
	out := make([]Card, 0, len(items))
	for _, item := range items {
		out = append(out, NewCard(item))
	}
	return out
}

func initialOf(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}
