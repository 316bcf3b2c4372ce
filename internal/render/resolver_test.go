package render

import (
	"testing"

	"github.com/sinswtf/internal/db"
)

func TestResolveNilRowProducesCompleteDefaults(t *testing.T) {
	t.Parallel()

	rc := Resolve(nil)

	if rc.PrimaryColor != "#ff3333" {
		t.Fatalf("expected default primary color, got %q", rc.PrimaryColor)
	}
	if rc.BackgroundColor != "#0a0a0a" {
		t.Fatalf("expected default background color, got %q", rc.BackgroundColor)
	}
	if rc.TextColor != "#ffffff" || rc.NameColor != "#ffffff" {
		t.Fatalf("expected default text/name colors, got %q / %q", rc.TextColor, rc.NameColor)
	}
	if rc.BackgroundType != BackgroundTypeColor {
		t.Fatalf("expected color background type, got %q", rc.BackgroundType)
	}
	if rc.BackgroundBlur != 0 || rc.BackgroundOpacity != 100 {
		t.Fatalf("expected blur 0 / opacity 100, got %d / %d", rc.BackgroundBlur, rc.BackgroundOpacity)
	}
	if rc.CardStyle != CardClassic || rc.LayoutStyle != LayoutFloating || rc.AvatarStyle != AvatarCircle {
		t.Fatalf("expected first enum variants, got %q / %q / %q", rc.CardStyle, rc.LayoutStyle, rc.AvatarStyle)
	}
	if rc.CardRadius != DefaultCardRadius {
		t.Fatalf("expected default card radius, got %d", rc.CardRadius)
	}
	if rc.NameFont == "" || rc.TextFont == "" {
		t.Fatalf("fonts must not resolve to empty values")
	}
	if rc.TitleFontSize != DefaultTitleFontSize || rc.BioFontSize != DefaultBioFontSize {
		t.Fatalf("expected default font sizes, got %d / %d", rc.TitleFontSize, rc.BioFontSize)
	}
	if rc.TypewriterSpeed != DefaultTypewriterSpeed {
		t.Fatalf("expected default typewriter speed, got %d", rc.TypewriterSpeed)
	}
	if rc.TypewriterPhrases == nil {
		rc.TypewriterPhrases = []string{}
	}
	if rc.TypewriterEnabled || rc.ClickToEnter || rc.SparkleName || rc.ParallaxEnabled {
		t.Fatalf("effect toggles should default to off")
	}
	if rc.DiscordWidgetEnabled || rc.DiscordUserID != "" {
		t.Fatalf("discord presence should default to disabled")
	}
}

func TestResolveKeepsStoredValues(t *testing.T) {
	t.Parallel()

	blur := 12
	opacity := 60
	speed := 40
	row := &db.ProfileCustomization{
		PrimaryColor:      "#00ff00",
		BackgroundType:    "video",
		BackgroundBlur:    &blur,
		BackgroundOpacity: &opacity,
		CardStyle:         "aurora",
		AvatarStyle:       "hexagon",
		LayoutStyle:       "compact",
		TypewriterEnabled: true,
		TypewriterSpeed:   &speed,
		TypewriterPhrases: []string{"hello", "world"},
		DiscordUserID:     " 123456789 ",
	}

	rc := Resolve(row)

	if rc.PrimaryColor != "#00ff00" {
		t.Fatalf("stored primary color lost: %q", rc.PrimaryColor)
	}
	if rc.BackgroundType != BackgroundTypeVideo {
		t.Fatalf("stored background type lost: %q", rc.BackgroundType)
	}
	if rc.BackgroundBlur != 12 || rc.BackgroundOpacity != 60 {
		t.Fatalf("stored blur/opacity lost: %d / %d", rc.BackgroundBlur, rc.BackgroundOpacity)
	}
	if rc.CardStyle != CardAurora || rc.AvatarStyle != AvatarHexagon || rc.LayoutStyle != LayoutCompact {
		t.Fatalf("stored enums lost: %q / %q / %q", rc.CardStyle, rc.AvatarStyle, rc.LayoutStyle)
	}
	if rc.TypewriterSpeed != 40 {
		t.Fatalf("stored typewriter speed lost: %d", rc.TypewriterSpeed)
	}
	if len(rc.TypewriterPhrases) != 2 || rc.TypewriterPhrases[0] != "hello" {
		t.Fatalf("stored phrases lost: %#v", rc.TypewriterPhrases)
	}
	if rc.DiscordUserID != "123456789" {
		t.Fatalf("discord user id should be trimmed, got %q", rc.DiscordUserID)
	}

	// 返回的短语切片必须是副本，修改不影响原始记录
	rc.TypewriterPhrases[0] = "mutated"
	if row.TypewriterPhrases[0] != "hello" {
		t.Fatalf("resolver must copy the phrase slice")
	}
}

func TestResolveUnknownEnumsFallBackToFirstVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  db.ProfileCustomization
		want func(rc ResolvedCustomization) bool
	}{
		{
			name: "card style",
			row:  db.ProfileCustomization{CardStyle: "neon"},
			want: func(rc ResolvedCustomization) bool { return rc.CardStyle == CardClassic },
		},
		{
			name: "avatar style",
			row:  db.ProfileCustomization{AvatarStyle: "triangle"},
			want: func(rc ResolvedCustomization) bool { return rc.AvatarStyle == AvatarCircle },
		},
		{
			name: "layout style",
			row:  db.ProfileCustomization{LayoutStyle: "grid"},
			want: func(rc ResolvedCustomization) bool { return rc.LayoutStyle == LayoutFloating },
		},
		{
			name: "background type",
			row:  db.ProfileCustomization{BackgroundType: "gradient"},
			want: func(rc ResolvedCustomization) bool { return rc.BackgroundType == BackgroundTypeColor },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			row := tt.row
			if !tt.want(Resolve(&row)) {
				t.Fatalf("unknown enum did not fall back to first variant")
			}
		})
	}
}
