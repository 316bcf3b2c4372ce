package service

import (
	"errors"
	"testing"
)

func TestSocialLinkServiceCreateNormalizesPlatform(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewSocialLinkService(gdb)

	link, err := svc.Create(1, SocialLinkInput{Platform: " Twitter ", Username: " sinner ", URL: "twitter.com/sinner"})
	if err != nil {
		t.Fatalf("create social link failed: %v", err)
	}
	if link.Platform != "twitter" {
		t.Fatalf("expected lowercase platform, got %q", link.Platform)
	}
	if link.Username != "sinner" {
		t.Fatalf("expected trimmed username, got %q", link.Username)
	}
	if link.URL != "https://twitter.com/sinner" {
		t.Fatalf("expected https prefix, got %q", link.URL)
	}
}

func TestSocialLinkServiceCreateRejectsEmptyInput(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewSocialLinkService(gdb)

	if _, err := svc.Create(1, SocialLinkInput{Platform: "", URL: "https://x.com"}); !errors.Is(err, ErrSocialLinkInvalidInput) {
		t.Fatalf("expected ErrSocialLinkInvalidInput, got %v", err)
	}
	if _, err := svc.Create(1, SocialLinkInput{Platform: "discord", URL: ""}); !errors.Is(err, ErrSocialLinkInvalidInput) {
		t.Fatalf("expected ErrSocialLinkInvalidInput, got %v", err)
	}
}

func TestSocialLinkServiceListOrdering(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewSocialLinkService(gdb)

	if _, err := svc.Create(1, SocialLinkInput{Platform: "github", URL: "https://github.com/a", SortOrder: intPtr(3)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	hidden, err := svc.Create(1, SocialLinkInput{Platform: "twitch", URL: "https://twitch.tv/a", SortOrder: intPtr(1), IsVisible: boolPtr(false)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(1, SocialLinkInput{Platform: "discord", URL: "https://discord.gg/a", SortOrder: intPtr(0)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	visible, err := svc.List(1, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(visible) != 2 || visible[0].Platform != "discord" || visible[1].Platform != "github" {
		t.Fatalf("unexpected visible order: %#v", visible)
	}

	all, err := svc.List(1, true)
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 3 || all[1].ID != hidden.ID {
		t.Fatalf("expected hidden link in middle of full list, got %#v", all)
	}
}

func TestSocialLinkServiceUpdateAndDelete(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewSocialLinkService(gdb)

	link, err := svc.Create(1, SocialLinkInput{Platform: "github", Username: "old", URL: "https://github.com/old"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(1, link.ID, SocialLinkInput{Platform: "GitHub", Username: "new", URL: "https://github.com/new"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Platform != "github" || updated.Username != "new" || updated.URL != "https://github.com/new" {
		t.Fatalf("update did not persist: %#v", updated)
	}

	if _, err := svc.Update(2, link.ID, SocialLinkInput{Username: "hijack"}); !errors.Is(err, ErrSocialLinkNotFound) {
		t.Fatalf("expected ErrSocialLinkNotFound for wrong profile, got %v", err)
	}

	if err := svc.Delete(1, link.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(1, link.ID); !errors.Is(err, ErrSocialLinkNotFound) {
		t.Fatalf("expected ErrSocialLinkNotFound after delete, got %v", err)
	}
}
