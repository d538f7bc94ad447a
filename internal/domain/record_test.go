package domain

import (
	"errors"
	"testing"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantErr  bool
		wantPath string
		wantLen  int
		wantPrio uint32
	}{
		{
			name:     "single shortcut",
			line:     "/home/user/projects;p;40",
			wantPath: "/home/user/projects",
			wantLen:  1,
			wantPrio: 40,
		},
		{
			name:     "multiple shortcuts",
			line:     "/home/user/music;m;music;tunes;7",
			wantPath: "/home/user/music",
			wantLen:  3,
			wantPrio: 7,
		},
		{
			name:     "no shortcuts still parses",
			line:     "/home/user;0",
			wantPath: "/home/user",
			wantLen:  0,
			wantPrio: 0,
		},
		{
			name:    "too few fields",
			line:    "/home/user",
			wantErr: true,
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseRecord(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got record %+v", tt.line, rec)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRecord(%q) failed: %v", tt.line, err)
			}
			if rec.Path != tt.wantPath {
				t.Errorf("expected path %q, got %q", tt.wantPath, rec.Path)
			}
			if len(rec.Shortcuts) != tt.wantLen {
				t.Errorf("expected %d shortcuts, got %d", tt.wantLen, len(rec.Shortcuts))
			}
			if rec.Priority != tt.wantPrio {
				t.Errorf("expected priority %d, got %d", tt.wantPrio, rec.Priority)
			}
		})
	}
}

func TestParseRecord_BadPriorityDegrades(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"not a number", "/home/user;u;high"},
		{"negative", "/home/user;u;-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseRecord(tt.line)
			if !errors.Is(err, ErrBadPriority) {
				t.Fatalf("expected ErrBadPriority, got %v", err)
			}
			if rec.Path != "/home/user" {
				t.Errorf("path must survive the corruption, got %q", rec.Path)
			}
			if len(rec.Shortcuts) != 1 || rec.Shortcuts[0] != "u" {
				t.Errorf("shortcuts must survive the corruption, got %v", rec.Shortcuts)
			}
			if rec.Priority != 0 {
				t.Errorf("corrupt priority degrades to zero, got %d", rec.Priority)
			}
		})
	}
}

func TestRecordString_RoundTrip(t *testing.T) {
	lines := []string{
		"/home/user/projects;p;40",
		"/home/user/music;m;music;tunes;7",
		"/srv;s;0",
	}

	for _, line := range lines {
		rec, err := ParseRecord(line)
		if err != nil {
			t.Fatalf("ParseRecord(%q) failed: %v", line, err)
		}
		if got := rec.String(); got != line {
			t.Errorf("round trip of %q produced %q", line, got)
		}
	}
}

func TestRecordShortcuts(t *testing.T) {
	rec := Record{Path: "/p", Shortcuts: []string{"a", "b"}, Priority: 5}

	if !rec.HasShortcut("a") || !rec.HasShortcut("b") {
		t.Error("expected both shortcuts present")
	}
	if rec.HasShortcut("c") {
		t.Error("unexpected shortcut c")
	}

	added := rec.WithShortcut("c")
	if !added.HasShortcut("c") {
		t.Error("WithShortcut did not append")
	}
	if len(rec.Shortcuts) != 2 {
		t.Error("WithShortcut mutated the original record")
	}

	removed := rec.WithoutShortcut("a")
	if removed.HasShortcut("a") {
		t.Error("WithoutShortcut did not remove")
	}
	if len(removed.Shortcuts) != 1 || removed.Shortcuts[0] != "b" {
		t.Errorf("expected only b to remain, got %v", removed.Shortcuts)
	}
}
