package service

import (
	"errors"
	"testing"

	"github.com/sinswtf/internal/db"
)

func TestProfileServiceCreateForUser(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewProfileService(gdb)

	profile, err := svc.CreateForUser(1, "Neo Wolf!", "Neo", "https://cdn.example.com/a.png")
	if err != nil {
		t.Fatalf("create profile failed: %v", err)
	}
	if profile.Username != "neowolf" {
		t.Fatalf("expected normalized username, got %q", profile.Username)
	}

	// 定制记录必须随主页一起创建
	var customization db.ProfileCustomization
	if err := gdb.Where("profile_id = ?", profile.ID).First(&customization).Error; err != nil {
		t.Fatalf("expected default customization row: %v", err)
	}

	// 用户名冲突时追加后缀
	second, err := svc.CreateForUser(2, "neowolf", "", "")
	if err != nil {
		t.Fatalf("create second profile failed: %v", err)
	}
	if second.Username != "neowolf1" {
		t.Fatalf("expected suffixed username, got %q", second.Username)
	}
}

func TestProfileServiceGetByUsernameFiltersAndSorts(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewProfileService(gdb)

	profile, err := svc.CreateForUser(1, "sinner", "", "")
	if err != nil {
		t.Fatalf("create profile failed: %v", err)
	}

	// (sort_order, is_visible) = [(2,true),(1,false),(0,true)]
	rows := []db.Link{
		{ProfileID: profile.ID, Title: "two", URL: "https://example.com/2", SortOrder: 2, IsVisible: true},
		{ProfileID: profile.ID, Title: "one", URL: "https://example.com/1", SortOrder: 1, IsVisible: false},
		{ProfileID: profile.ID, Title: "zero", URL: "https://example.com/0", SortOrder: 0, IsVisible: true},
	}
	for i := range rows {
		if err := gdb.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed link failed: %v", err)
		}
	}

	public, err := svc.GetByUsername("SINNER")
	if err != nil {
		t.Fatalf("get by username failed: %v", err)
	}
	if len(public.Links) != 2 {
		t.Fatalf("expected 2 visible links, got %d", len(public.Links))
	}
	if public.Links[0].SortOrder != 0 || public.Links[1].SortOrder != 2 {
		t.Fatalf("expected visible links ordered [0,2], got [%d,%d]", public.Links[0].SortOrder, public.Links[1].SortOrder)
	}
	if public.Customization == nil {
		t.Fatalf("expected customization to load alongside the profile")
	}
}

func TestProfileServiceGetByUsernameNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewProfileService(gdb)

	if _, err := svc.GetByUsername("ghost"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileServiceUpdateUsername(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewProfileService(gdb)

	first, err := svc.CreateForUser(1, "alpha", "", "")
	if err != nil {
		t.Fatalf("create profile failed: %v", err)
	}
	if _, err := svc.CreateForUser(2, "beta", "", ""); err != nil {
		t.Fatalf("create profile failed: %v", err)
	}

	// 占用检查
	if _, err := svc.Update(first.ID, ProfileInput{Username: strPtr("beta")}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// 非法字符被剔除后为空 → 非法用户名
	if _, err := svc.Update(first.ID, ProfileInput{Username: strPtr("!!!")}); !errors.Is(err, ErrInvalidUsername) {
		t.Fatalf("expected ErrInvalidUsername, got %v", err)
	}

	updated, err := svc.Update(first.ID, ProfileInput{Username: strPtr("Alpha_2"), Bio: strPtr(" hello ")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Username != "alpha_2" {
		t.Fatalf("expected normalized username, got %q", updated.Username)
	}
	if updated.Bio != "hello" {
		t.Fatalf("expected trimmed bio, got %q", updated.Bio)
	}
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "Sinner", want: "sinner"},
		{raw: "neo wolf!", want: "neowolf"},
		{raw: "under_score_9", want: "under_score_9"},
		{raw: "  spaced  ", want: "spaced"},
	}
	for _, tt := range tests {
		if got := NormalizeUsername(tt.raw); got != tt.want {
			t.Fatalf("normalize %q: expected %q, got %q", tt.raw, tt.want, got)
		}
	}
}

func TestProfileServiceIsUsernameAvailable(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewProfileService(gdb)

	if _, err := svc.CreateForUser(1, "taken", "", ""); err != nil {
		t.Fatalf("create profile failed: %v", err)
	}

	available, err := svc.IsUsernameAvailable("free_name")
	if err != nil || !available {
		t.Fatalf("expected free_name to be available, got %v / %v", available, err)
	}

	available, err = svc.IsUsernameAvailable("TAKEN")
	if err != nil || available {
		t.Fatalf("expected taken to be unavailable, got %v / %v", available, err)
	}
}
