package model

// Built-in categories used by the default shortcut set. Categories are free
// strings; these constants only name the seeded ones. Focus mode hides
// CategoryEntertainment.
const (
	// CategoryEntertainment groups leisure shortcuts ("Giải trí").
	CategoryEntertainment = "Giải trí"

	// CategoryWork groups work shortcuts ("Công việc").
	CategoryWork = "Công việc"

	// CategoryAITools groups AI assistant shortcuts ("Công cụ AI").
	CategoryAITools = "Công cụ AI"
)

// DefaultShortcuts returns the seed shortcut collection shown on first run:
// 13 entries across the three built-in categories. A fresh slice is returned
// on every call so callers can mutate their copy freely.
func DefaultShortcuts() []Shortcut {
	return []Shortcut{
		{
			ID:          "youtube",
			Title:       "YouTube",
			Icon:        "Youtube",
			Category:    CategoryEntertainment,
			Description: "Watch videos, tutorials, music, and entertainment content",
			URL:         "https://www.youtube.com",
			Type:        ShortcutTypeWeb,
			Keywords:    []string{"video", "watch", "music", "entertainment"},
		},
		{
			ID:          "facebook",
			Title:       "Facebook",
			Icon:        "Facebook",
			Category:    CategoryEntertainment,
			Description: "Connect with friends and family, share updates and photos",
			URL:         "https://www.facebook.com",
			Type:        ShortcutTypeWeb,
			Keywords:    []string{"social", "friends", "photos"},
		},
		{
			ID:          "tiktok",
			Title:       "TikTok",
			Icon:        "Video",
			Category:    CategoryEntertainment,
			Description: "Short-form video content and trending challenges",
			URL:         "https://www.tiktok.com",
			Type:        ShortcutTypeWeb,
			Keywords:    []string{"video", "shorts", "trending"},
		},
		{
			ID:          "discord",
			Title:       "Discord",
			Icon:        "MessageSquare",
			Category:    CategoryEntertainment,
			Description: "Voice, video, and text chat with communities and friends",
			URL:         "discord://",
			Type:        ShortcutTypeApp,
			FallbackURL: "https://discord.com/app",
			Keywords:    []string{"chat", "voice", "community", "gaming"},
		},
		{
			ID:          "revoltpc",
			Title:       "RevoltPC",
			Icon:        "MessageCircle",
			Category:    CategoryEntertainment,
			Description: "Privacy-focused Discord alternative with end-to-end encryption",
			URL:         "revoltPC://",
			Type:        ShortcutTypeApp,
			FallbackURL: "https://app.revolt.chat",
			Keywords:    []string{"chat", "privacy", "community"},
		},
		{
			ID:          "zalo",
			Title:       "Zalo",
			Icon:        "MessageSquare",
			Category:    CategoryWork,
			Description: "Vietnamese messaging and collaboration platform",
			URL:         "Zalo://",
			Type:        ShortcutTypeApp,
			FallbackURL: "https://chat.zalo.me",
			Keywords:    []string{"chat", "messaging", "vietnam", "work"},
		},
		{
			ID:          "github",
			Title:       "GitHub",
			Icon:        "Github",
			Category:    CategoryWork,
			Description: "Code repository hosting, version control, and collaboration",
			URL:         "https://github.com",
			Type:        ShortcutTypeWeb,
			Keywords:    []string{"code", "git", "repository", "developer"},
		},
		{
			ID:          "antigravity",
			Title:       "Antigravity",
			Icon:        "Sparkles",
			Category:    CategoryWork,
			Description: "AI-powered development platform and coding assistant",
			URL:         "Antigravity://",
			Type:        ShortcutTypeApp,
			FallbackURL: "https://antigravity.dev",
			Keywords:    []string{"ai", "coding", "assistant", "development"},
		},
		{
			ID:       "chatgpt",
			Title:    "ChatGPT",
			Icon:     "MessageSquare",
			Category: CategoryAITools,
			Description: "Versatile AI assistant for writing, coding, brainstorming, and general tasks.\n\n" +
				"Best for: Creative writing, code explanation, tutoring, brainstorming ideas.\n\n" +
				"Use when: You need conversational help with diverse topics or want high-quality text generation.",
			URL:      "https://chat.openai.com",
			Type:     ShortcutTypeWeb,
			Keywords: []string{"ai", "chat", "assistant", "gpt", "openai"},
		},
		{
			ID:       "claude",
			Title:    "Claude",
			Icon:     "Bot",
			Category: CategoryAITools,
			Description: "Advanced AI assistant with strong reasoning and long-context understanding.\n\n" +
				"Best for: Analyzing long documents, nuanced reasoning, ethical guidance, coding with context.\n\n" +
				"Use when: You need to process large texts or require thoughtful, detailed responses.",
			URL:      "https://claude.ai",
			Type:     ShortcutTypeWeb,
			Keywords: []string{"ai", "chat", "assistant", "anthropic", "reasoning"},
		},
		{
			ID:       "gemini",
			Title:    "Gemini",
			Icon:     "Sparkles",
			Category: CategoryAITools,
			Description: "Google's multimodal AI with deep integration to Google services.\n\n" +
				"Best for: Research, fact-checking, Google Workspace integration, multimodal tasks (text + images).\n\n" +
				"Use when: You need access to Google's knowledge graph or want to work within Google ecosystem.",
			URL:      "https://gemini.google.com",
			Type:     ShortcutTypeWeb,
			Keywords: []string{"ai", "chat", "assistant", "google", "research"},
		},
		{
			ID:       "perplexity",
			Title:    "Perplexity",
			Icon:     "Search",
			Category: CategoryAITools,
			Description: "AI-powered search engine with cited sources and real-time information.\n\n" +
				"Best for: Research with citations, fact-checking, getting current information with sources.\n\n" +
				"Use when: You need accurate, up-to-date answers with verifiable sources.",
			URL:      "https://www.perplexity.ai",
			Type:     ShortcutTypeWeb,
			Keywords: []string{"ai", "search", "research", "sources", "citations"},
		},
		{
			ID:       "deepseek",
			Title:    "DeepSeek",
			Icon:     "Brain",
			Category: CategoryAITools,
			Description: "Open-source AI focused on coding and technical tasks.\n\n" +
				"Best for: Code generation, debugging, technical documentation, algorithm design.\n\n" +
				"Use when: You need specialized help with programming and technical problem-solving.",
			URL:      "https://chat.deepseek.com",
			Type:     ShortcutTypeWeb,
			Keywords: []string{"ai", "chat", "coding", "programming", "technical"},
		},
	}
}

// DefaultProfile returns the profile record shown before the user edits it.
func DefaultProfile() Profile {
	return Profile{
		Name: "Your Name",
		Bio:  "Developer • Designer • Creative Thinker",
		Avatar: AvatarConfig{
			Mode:      AvatarModeURL,
			URL:       "/avatar.png",
			MediaType: MediaTypeImage,
		},
	}
}

// DefaultBackground returns the empty background configuration.
func DefaultBackground() BackgroundConfig {
	return BackgroundConfig{
		Type:  BackgroundNone,
		Value: "",
		Blur:  0,
		Dim:   0,
	}
}
