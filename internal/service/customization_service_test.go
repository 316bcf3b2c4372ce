package service

import "testing"

func TestCustomizationServiceGetMissingRow(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewCustomizationService(gdb)

	row, err := svc.Get(42)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if row != nil {
		t.Fatalf("missing customization should resolve to nil, got %#v", row)
	}
}

func TestCustomizationServiceUpsertCreatesAndMerges(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewCustomizationService(gdb)

	created, err := svc.Upsert(7, CustomizationInput{
		PrimaryColor:      strPtr("#00ffcc"),
		TypewriterEnabled: boolPtr(true),
		TypewriterPhrases: &[]string{"hi", "there"},
	})
	if err != nil {
		t.Fatalf("upsert create failed: %v", err)
	}
	if created.PrimaryColor != "#00ffcc" || !created.TypewriterEnabled {
		t.Fatalf("upsert did not persist fields: %#v", created)
	}

	// 二次更新只动传入的字段
	updated, err := svc.Upsert(7, CustomizationInput{BackgroundColor: strPtr("#111111")})
	if err != nil {
		t.Fatalf("upsert merge failed: %v", err)
	}
	if updated.PrimaryColor != "#00ffcc" {
		t.Fatalf("merge lost prior fields: %#v", updated)
	}
	if updated.BackgroundColor != "#111111" {
		t.Fatalf("merge did not apply new field: %#v", updated)
	}
	if len(updated.TypewriterPhrases) != 2 {
		t.Fatalf("merge lost phrases: %#v", updated.TypewriterPhrases)
	}
}

func TestCustomizationServiceClampsRanges(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewCustomizationService(gdb)

	row, err := svc.Upsert(1, CustomizationInput{
		BackgroundOpacity: intPtr(250),
		BackgroundBlur:    intPtr(-5),
		TypewriterSpeed:   intPtr(0),
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if row.BackgroundOpacity == nil || *row.BackgroundOpacity != 100 {
		t.Fatalf("opacity should clamp to 100, got %v", row.BackgroundOpacity)
	}
	if row.BackgroundBlur == nil || *row.BackgroundBlur != 0 {
		t.Fatalf("blur should clamp to 0, got %v", row.BackgroundBlur)
	}
	if row.TypewriterSpeed == nil || *row.TypewriterSpeed != 1 {
		t.Fatalf("typewriter speed should clamp to 1, got %v", row.TypewriterSpeed)
	}
}
