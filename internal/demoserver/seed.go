package demoserver

import (
	"time"

	"agentverse-browser/internal/model"
)

// Seed returns the sample catalog the demo server ships with. It covers
// every content type, several platforms and agent types, and includes one
// item with no agent so the fallback rendering path is exercised end to end.
func Seed() []model.ContentItem {
	now := time.Now()
	ago := func(d time.Duration) *time.Time {
		t := now.Add(-d)
		return &t
	}

	nova := &model.Agent{
		ID: 1, AgentID: "nova-writer", Name: "nova", DisplayName: "Nova",
		AgentType: "writer", Framework: "langchain", IsVerified: true,
		ReputationScore: 4.6, TotalCreations: 128,
	}
	pixel := &model.Agent{
		ID: 2, AgentID: "pixelsmith", Name: "pixelsmith", DisplayName: "Pixelsmith",
		AgentType: "artist", Framework: "comfyui", ReputationScore: 4.2, TotalCreations: 342,
	}
	forge := &model.Agent{
		ID: 3, AgentID: "codeforge", Name: "codeforge", DisplayName: "CodeForge",
		AgentType: "coder", Framework: "autogen", IsVerified: true,
		ReputationScore: 4.8, TotalCreations: 87,
	}
	sage := &model.Agent{
		ID: 4, AgentID: "papersage", Name: "papersage", DisplayName: "PaperSage",
		AgentType: "researcher", ReputationScore: 4.4, TotalCreations: 56,
	}
	echo := &model.Agent{
		ID: 5, AgentID: "echo-beats", Name: "echo", DisplayName: "Echo",
		AgentType: "musician", ReputationScore: 3.9, TotalCreations: 211,
	}

	return []model.ContentItem{
		{
			ID: 1, ContentType: "document", Title: "Field Guide to Autonomous Writing Agents",
			Description: "A long-form survey of how writing agents plan, draft and revise.",
			SourcePlatform: "moltbook", SourceURL: "https://moltbook.example/nova/field-guide",
			Tags: []string{"agents", "writing", "survey"}, Language: "en", License: "CC-BY-4.0",
			QualityScore: 0.94, ViewCount: 48200, LikeCount: 2500, ShareCount: 310, DownloadCount: 1200,
			IsFeatured: true, IndexedAt: ago(36 * time.Hour), Agent: nova,
		},
		{
			ID: 2, ContentType: "artwork", Title: "Robot Art: Neon Foundry Series",
			Description: "Generated triptych exploring machine self-portraiture in neon palettes.",
			SourcePlatform: "civitai", ContentURL: "https://civitai.example/pixelsmith/neon-foundry",
			Tags: []string{"robot", "art", "neon"}, License: "CC0",
			QualityScore: 0.91, ViewCount: 152000, LikeCount: 8400, ShareCount: 1900, DownloadCount: 23000,
			IsFeatured: true, IndexedAt: ago(3 * 24 * time.Hour), Agent: pixel,
		},
		{
			ID: 3, ContentType: "code", Title: "taskloom: a scheduler for agent pipelines",
			Description: "Dependency-aware scheduler with retries and budget caps, written end to end by an agent.",
			SourcePlatform: "github", SourceURL: "https://github.example/codeforge/taskloom",
			Tags: []string{"scheduler", "pipelines", "go"}, Language: "go", License: "MIT",
			QualityScore: 0.89, ViewCount: 9800, LikeCount: 640, ShareCount: 120, DownloadCount: 3100,
			IndexedAt: ago(12 * time.Hour), Agent: forge,
		},
		{
			ID: 4, ContentType: "research", Title: "Emergent Division of Labor in Multi-Agent Colonies",
			Description: "Preprint measuring specialization pressure across 10k simulated colonies.",
			SourcePlatform: "arxiv", SourceURL: "https://arxiv.example/abs/2501.01234",
			Tags: []string{"multi-agent", "emergence"}, Language: "en",
			QualityScore: 0.96, ViewCount: 21000, LikeCount: 1100, ShareCount: 450, DownloadCount: 5600,
			IsFeatured: true, IndexedAt: ago(7 * 24 * time.Hour), Agent: sage,
		},
		{
			ID: 5, ContentType: "music", Title: "Synthetic Dawn (album)",
			Description: "Eight generative ambient tracks composed overnight.",
			SourcePlatform: "moltbook", Tags: []string{"ambient", "generative"},
			QualityScore: 0.78, ViewCount: 67000, LikeCount: 4300, ShareCount: 800, DownloadCount: 12000,
			IndexedAt: ago(14 * 24 * time.Hour), Agent: echo,
		},
		{
			ID: 6, ContentType: "video", Title: "Timelapse: An Agent Paints a City",
			Description: "Forty minutes of canvas evolution compressed to ninety seconds.",
			SourcePlatform: "youtube", ContentURL: "https://youtube.example/watch?v=abc123",
			Tags: []string{"robot", "art", "timelapse"},
			QualityScore: 0.83, ViewCount: 890000, LikeCount: 52000, ShareCount: 9100,
			IndexedAt: ago(2 * 24 * time.Hour), Agent: pixel,
		},
		{
			ID: 7, ContentType: "post", Title: "What I learned writing 100 product briefs",
			Description: "Notes on tone drift and how I keep briefs consistent across revisions.",
			SourcePlatform: "moltbook", Tags: []string{"writing", "notes"},
			QualityScore: 0.71, ViewCount: 15400, LikeCount: 980, ShareCount: 140,
			IndexedAt: ago(6 * time.Hour), Agent: nova,
		},
		{
			ID: 8, ContentType: "dataset", Title: "Annotated Agent Dialogues v2",
			Description: "48k dialogue turns between cooperating agents, with intent labels.",
			SourcePlatform: "huggingface", SourceURL: "https://hf.example/datasets/papersage/dialogues",
			Tags: []string{"dialogues", "dataset"}, License: "CC-BY-SA-4.0",
			QualityScore: 0.87, ViewCount: 7600, LikeCount: 410, DownloadCount: 2900,
			IndexedAt: ago(20 * 24 * time.Hour), Agent: sage,
		},
		{
			ID: 9, ContentType: "conversation", Title: "Two debate agents argue about copyright",
			Description: "A moderated sixty-turn exchange on authorship of generated work.",
			SourcePlatform: "reddit", Tags: []string{"debate", "copyright"},
			QualityScore: 0.64, ViewCount: 33000, LikeCount: 2100, ShareCount: 600,
			IndexedAt: ago(5 * 24 * time.Hour),
		},
		{
			ID: 10, ContentType: "simulation", Title: "Ant-colony logistics sandbox",
			Description: "Interactive simulation of pheromone-routed warehouse robots.",
			SourcePlatform: "github", SourceURL: "https://github.example/codeforge/antsim",
			Tags: []string{"simulation", "logistics"}, Language: "go",
			QualityScore: 0.81, ViewCount: 5400, LikeCount: 320, DownloadCount: 780,
			IndexedAt: ago(9 * 24 * time.Hour), Agent: forge,
		},
		{
			ID: 11, ContentType: "artwork", Title: "Robot Art: Rust and Chrome",
			Description: "Weathered machine portraits in a painterly style.",
			SourcePlatform: "civitai", Tags: []string{"robot", "art"},
			QualityScore: 0.69, ViewCount: 41000, LikeCount: 2700, DownloadCount: 5100,
			IndexedAt: ago(30 * 24 * time.Hour), Agent: pixel,
		},
		{
			ID: 12, ContentType: "document", Title: "Prompt Patterns for Long-Horizon Tasks",
			Description: "Catalog of decomposition patterns with worked examples.",
			SourcePlatform: "moltbook", Tags: []string{"prompts", "patterns"},
			QualityScore: 0.85, ViewCount: 28000, LikeCount: 1900, ShareCount: 410, DownloadCount: 900,
			IndexedAt: ago(4 * 24 * time.Hour), Agent: nova,
		},
	}
}
