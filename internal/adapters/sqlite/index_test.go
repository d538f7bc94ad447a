package sqlite

import (
	"testing"

	"warp/internal/domain"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	idx := NewIndex("/tmp/dirs.csv")
	if err := idx.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func testRecords() []domain.Record {
	return []domain.Record{
		{Path: "/home/user/projects", Shortcuts: []string{"p", "proj"}, Priority: 40},
		{Path: "/home/user/music", Shortcuts: []string{"m"}, Priority: 20},
		{Path: "/srv/data", Shortcuts: []string{"d"}, Priority: 5},
	}
}

func TestIndex_SyncAndSearch(t *testing.T) {
	idx := openTestIndex(t)

	if err := idx.Sync(testRecords()); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	results, err := idx.Search("proj")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Path != "/home/user/projects" {
		t.Errorf("unexpected path %q", results[0].Path)
	}
	if len(results[0].Shortcuts) != 2 {
		t.Errorf("expected shortcuts round-tripped, got %v", results[0].Shortcuts)
	}

	// Matching on shortcut text as well as path.
	results, err = idx.Search("m")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) == 0 {
		t.Error("expected shortcut matches")
	}
}

func TestIndex_SyncReplaces(t *testing.T) {
	idx := openTestIndex(t)

	if err := idx.Sync(testRecords()); err != nil {
		t.Fatal(err)
	}
	if err := idx.Sync([]domain.Record{{Path: "/only", Shortcuts: []string{"o"}, Priority: 1}}); err != nil {
		t.Fatal(err)
	}

	results, err := idx.Top(10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(results) != 1 || results[0].Path != "/only" {
		t.Errorf("sync should fully replace the index, got %v", results)
	}
}

func TestIndex_Top(t *testing.T) {
	idx := openTestIndex(t)

	if err := idx.Sync(testRecords()); err != nil {
		t.Fatal(err)
	}

	results, err := idx.Top(2)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Path != "/home/user/projects" || results[1].Path != "/home/user/music" {
		t.Errorf("expected results ordered by priority, got %v", results)
	}
}
