package service

import (
	"errors"
	"testing"
)

func TestWidgetServiceCreateDefaults(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewWidgetService(gdb)

	widget, err := svc.Create(1, WidgetInput{WidgetType: " YouTube "})
	if err != nil {
		t.Fatalf("create widget failed: %v", err)
	}
	if widget.WidgetType != "youtube" {
		t.Fatalf("expected lowercase type, got %q", widget.WidgetType)
	}
	if widget.Config == nil {
		t.Fatalf("config should default to an empty map")
	}
	if !widget.IsVisible {
		t.Fatalf("widget should default to visible")
	}
	if widget.SortOrder != 0 {
		t.Fatalf("first widget should get sort 0, got %d", widget.SortOrder)
	}

	second, err := svc.Create(1, WidgetInput{WidgetType: "spotify", Config: map[string]string{"track_id": "abc"}})
	if err != nil {
		t.Fatalf("create widget failed: %v", err)
	}
	if second.SortOrder != 1 {
		t.Fatalf("second widget should append at sort 1, got %d", second.SortOrder)
	}
	if second.Config["track_id"] != "abc" {
		t.Fatalf("config not persisted: %#v", second.Config)
	}
}

func TestWidgetServiceCreateRejectsEmptyType(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewWidgetService(gdb)

	if _, err := svc.Create(1, WidgetInput{WidgetType: "  "}); !errors.Is(err, ErrWidgetInvalidInput) {
		t.Fatalf("expected ErrWidgetInvalidInput, got %v", err)
	}
}

func TestWidgetServiceUpdateReplacesConfig(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewWidgetService(gdb)

	widget, err := svc.Create(1, WidgetInput{WidgetType: "youtube", Config: map[string]string{"video_id": "old", "extra": "keep?"}})
	if err != nil {
		t.Fatalf("create widget failed: %v", err)
	}

	// Config 非 nil 时整体替换而不是合并
	updated, err := svc.Update(1, widget.ID, WidgetInput{Config: map[string]string{"video_id": "new"}})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Config["video_id"] != "new" {
		t.Fatalf("config not replaced: %#v", updated.Config)
	}
	if _, ok := updated.Config["extra"]; ok {
		t.Fatalf("expected stale keys to be dropped, got %#v", updated.Config)
	}

	// Config 为 nil 时保留原值
	kept, err := svc.Update(1, widget.ID, WidgetInput{Width: "480px"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if kept.Config["video_id"] != "new" {
		t.Fatalf("nil config should keep prior value, got %#v", kept.Config)
	}
	if kept.Width != "480px" {
		t.Fatalf("width not updated: %q", kept.Width)
	}
}

func TestWidgetServiceListAndDelete(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewWidgetService(gdb)

	shown, err := svc.Create(1, WidgetInput{WidgetType: "discord"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(1, WidgetInput{WidgetType: "spotify", IsVisible: boolPtr(false)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	visible, err := svc.List(1, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != shown.ID {
		t.Fatalf("expected only visible widget, got %#v", visible)
	}

	if err := svc.Delete(1, shown.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(1, shown.ID); !errors.Is(err, ErrWidgetNotFound) {
		t.Fatalf("expected ErrWidgetNotFound after delete, got %v", err)
	}
}
