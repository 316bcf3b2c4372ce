package render

import (
	"strings"
	"testing"
)

func TestResolveEmbedTemplates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		widgetType string
		config     map[string]string
		wantURL    string
	}{
		{
			name:       "youtube",
			widgetType: "youtube",
			config:     map[string]string{"videoId": "xyz"},
			wantURL:    "https://www.youtube.com/embed/xyz",
		},
		{
			name:       "youtube missing id substitutes empty string",
			widgetType: "youtube",
			config:     map[string]string{},
			wantURL:    "https://www.youtube.com/embed/",
		},
		{
			name:       "spotify",
			widgetType: "spotify",
			config:     map[string]string{"trackId": "4uLU6hMCjMI75M1A2tKUQC"},
			wantURL:    "https://open.spotify.com/embed/track/4uLU6hMCjMI75M1A2tKUQC",
		},
		{
			name:       "discord",
			widgetType: "discord",
			config:     map[string]string{"serverId": "81384788765712384"},
			wantURL:    "https://discord.com/widget?id=81384788765712384&theme=dark",
		},
		{
			name:       "nil config does not panic",
			widgetType: "spotify",
			config:     nil,
			wantURL:    "https://open.spotify.com/embed/track/",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			embed, ok := ResolveEmbed(tt.widgetType, tt.config)
			if !ok {
				t.Fatalf("expected widget type %q to resolve", tt.widgetType)
			}
			if embed.EmbedURL != tt.wantURL {
				t.Fatalf("expected URL %q, got %q", tt.wantURL, embed.EmbedURL)
			}
		})
	}
}

func TestResolveEmbedUnknownTypesSkipped(t *testing.T) {
	t.Parallel()

	for _, widgetType := range []string{"soundcloud", "twitter", "custom", "vimeo", ""} {
		if _, ok := ResolveEmbed(widgetType, map[string]string{"videoId": "x"}); ok {
			t.Fatalf("widget type %q should be skipped", widgetType)
		}
	}
}

func TestEmbedHTML(t *testing.T) {
	t.Parallel()

	embed, ok := ResolveEmbed("discord", map[string]string{"serverId": "123"})
	if !ok {
		t.Fatalf("discord widget should resolve")
	}

	html := EmbedHTML(embed, "100%", "500px")
	if !strings.Contains(html, `src="https://discord.com/widget?id=123&amp;theme=dark"`) {
		t.Fatalf("expected escaped embed src, got: %s", html)
	}
	if !strings.Contains(html, `sandbox="`) {
		t.Fatalf("discord embed should carry a sandbox attribute: %s", html)
	}
	if !strings.Contains(html, "width: 100%; height: 500px;") {
		t.Fatalf("expected declared dimensions, got: %s", html)
	}
}

func TestEmbedHTMLDefaultsDimensions(t *testing.T) {
	t.Parallel()

	embed, _ := ResolveEmbed("youtube", map[string]string{"videoId": "abc"})
	html := EmbedHTML(embed, "", "")
	if !strings.Contains(html, "width: 100%; height: 100%;") {
		t.Fatalf("blank dimensions should default to 100%%: %s", html)
	}
}
