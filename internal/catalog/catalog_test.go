package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stlkit/internal/catalog"
)

func TestStoreRecordAndRecent(t *testing.T) {
	store, err := catalog.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	first, err := store.Record(ctx, catalog.Conversion{
		SourcePath:     "episode1.srt",
		OutputPath:     "episode1.stl",
		DiskFormat:     "STL25.01",
		SubtitleCount:  42,
		TruncatedCount: 1,
		CreatedAt:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated id")
	}

	second, err := store.Record(ctx, catalog.Conversion{
		SourcePath:    "episode2.srt",
		OutputPath:    "episode2.stl",
		DiskFormat:    "STL30.01",
		SubtitleCount: 7,
		CreatedAt:     time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 conversions, got %d", len(recent))
	}
	if recent[0].ID != second.ID {
		t.Fatalf("expected newest first, got %s", recent[0].ID)
	}
	if recent[1].SourcePath != "episode1.srt" || recent[1].SubtitleCount != 42 {
		t.Fatalf("unexpected oldest entry: %+v", recent[1])
	}
	if recent[1].TruncatedCount != 1 {
		t.Fatalf("expected truncated count 1, got %d", recent[1].TruncatedCount)
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store, err := catalog.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := store.Record(ctx, catalog.Conversion{
			SourcePath:    "in.srt",
			OutputPath:    "out.stl",
			DiskFormat:    "STL25.01",
			SubtitleCount: i,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 conversions, got %d", len(recent))
	}
	if recent[0].SubtitleCount != 4 {
		t.Fatalf("expected newest entry, got %+v", recent[0])
	}
}

func TestStoreLockGuard(t *testing.T) {
	dir := t.TempDir()
	store, err := catalog.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := catalog.Open(dir); !errors.Is(err, catalog.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestStoreReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := catalog.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ctx := context.Background()
	if _, err := store.Record(ctx, catalog.Conversion{
		SourcePath: "a.srt", OutputPath: "a.stl", DiskFormat: "STL25.01", SubtitleCount: 1,
	}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	store, err = catalog.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = store.Close() }()

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected persisted entry, got %d", len(recent))
	}
}
