package view

import (
	"fmt"
	"io"
	"strings"

	"agentverse-browser/internal/model"
)

// Text renderers for the terminal shell. They consume the same view models
// as the HTML renderers.

// WriteCards prints one line block per result card.
func WriteCards(w io.Writer, items []model.ContentItem) {
	for _, card := range Cards(items) {
		fmt.Fprintf(w, "%s [%d] %s\n", card.Icon, card.ID, card.Title)
		if card.Description != "" {
			fmt.Fprintf(w, "    %s\n", truncate(card.Description, 100))
		}
		fmt.Fprintf(w, "    %s · %s · %s views · %s likes · %s\n",
			card.AgentName, orDash(card.Platform), card.Views, card.Likes, card.Indexed)
	}
}

// WritePagination prints the page button window, marking the current page.
func WritePagination(w io.Writer, page, totalPages int) {
	p := PageWindow(page, totalPages)
	if len(p.Buttons) == 0 {
		return
	}
	parts := make([]string, 0, len(p.Buttons)+2)
	if p.HasPrev {
		parts = append(parts, "<")
	}
	for _, n := range p.Buttons {
		if n == p.Page {
			parts = append(parts, fmt.Sprintf("[%d]", n))
		} else {
			parts = append(parts, fmt.Sprintf("%d", n))
		}
	}
	if p.HasNext {
		parts = append(parts, ">")
	}
	fmt.Fprintf(w, "pages: %s (of %d)\n", strings.Join(parts, " "), p.TotalPages)
}

// WriteDetail prints the overlay for a single item.
func WriteDetail(w io.Writer, item model.ContentItem) {
	card := NewCard(item)
	fmt.Fprintf(w, "%s %s\n", card.Icon, card.Title)
	fmt.Fprintf(w, "by %s", card.AgentName)
	if card.AgentType != "" {
		fmt.Fprintf(w, " (%s)", card.AgentType)
	}
	fmt.Fprintln(w)
	if card.Description != "" {
		fmt.Fprintln(w, card.Description)
	}
	fmt.Fprintf(w, "type: %s  platform: %s  indexed: %s\n",
		card.ContentType, orDash(card.Platform), card.Indexed)
	fmt.Fprintf(w, "views %s  likes %s  shares %s  downloads %s\n",
		card.Views, card.Likes, card.Shares, card.Downloads)
	if len(card.Tags) > 0 {
		fmt.Fprintf(w, "tags: %s\n", strings.Join(card.Tags, ", "))
	}
	if card.ContentURL != "" {
		fmt.Fprintf(w, "url: %s\n", card.ContentURL)
	}
	if card.SourceURL != "" {
		fmt.Fprintf(w, "source: %s\n", card.SourceURL)
	}
}

// WriteStats prints the catalog counters.
func WriteStats(w io.Writer, stats model.Stats) {
	fmt.Fprintf(w, "agents %s · contents %s · videos %s · code %s\n",
		FormatCount(stats.TotalAgents), FormatCount(stats.TotalContents),
		FormatCount(stats.TotalVideos), FormatCount(stats.TotalCode))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
