package application

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"warp/internal/domain"
)

func getCmd(t *testing.T, args ...string) *domain.Command {
	t.Helper()
	cmd := domain.NewCommand(domain.KindGet)
	for _, a := range args {
		if err := cmd.Append(a); err != nil {
			t.Fatalf("append %q: %v", a, err)
		}
	}
	return cmd
}

func buildCmd(t *testing.T, kind domain.Kind, args ...string) *domain.Command {
	t.Helper()
	cmd := domain.NewCommand(kind)
	for _, a := range args {
		if err := cmd.Append(a); err != nil {
			t.Fatalf("append %q: %v", a, err)
		}
	}
	return cmd
}

const testStore = "/home/user/projects;p;proj;40\n" +
	"/home/user/music;m;20\n" +
	"/srv/data;d;5\n"

func TestApply_GetExactMatch(t *testing.T) {
	out := Apply(testStore, getCmd(t, "m"), 10)

	if !out.Found {
		t.Fatal("expected shortcut m to match")
	}
	if out.Path != "/home/user/music" {
		t.Errorf("expected /home/user/music, got %q", out.Path)
	}
	if !strings.Contains(out.Text, "/home/user/music;m;30\n") {
		t.Errorf("matched record should have priority bumped by incr:\n%s", out.Text)
	}
	if !strings.Contains(out.Text, "/home/user/projects;p;proj;40\n") {
		t.Errorf("unmatched records must be re-serialized unchanged:\n%s", out.Text)
	}
	if len(out.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", out.Diagnostics)
	}
}

func TestApply_GetSubpath(t *testing.T) {
	out := Apply(testStore, getCmd(t, "p", "api/v2"), 10)

	if out.Path != "/home/user/projects/api/v2" {
		t.Errorf("expected subpath joined to base, got %q", out.Path)
	}
}

func TestApply_GetFallbackSelection(t *testing.T) {
	store := "A;1;10\nB;2;20\nC;3;5\n"

	out := Apply(store, getCmd(t), 10)

	if out.Found {
		t.Error("no shortcut given, nothing should match")
	}
	if !out.HasPath || out.Path != "B" {
		t.Errorf("expected fallback to highest priority path B, got %q", out.Path)
	}
	if out.FallbackPriority != 20 {
		t.Errorf("expected fallback priority 20, got %d", out.FallbackPriority)
	}
	if out.Text != store {
		t.Errorf("plain fallback get must leave the store unchanged:\n%s", out.Text)
	}
}

func TestApply_GetUnmatchedShortcutFlagsAndFallsBack(t *testing.T) {
	out := Apply(testStore, getCmd(t, "nope"), 10)

	if out.Found {
		t.Error("shortcut nope should not match")
	}
	if out.Path != "/home/user/projects" {
		t.Errorf("expected fallback to most-used path, got %q", out.Path)
	}
	found := false
	for _, d := range out.Diagnostics {
		if errors.Is(d, ErrShortcutNotFound) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a shortcut-not-found diagnostic, got %v", out.Diagnostics)
	}
}

func TestApply_RoundTripUnaffectedRecords(t *testing.T) {
	// A get that matches nothing and finds no fallback rewrites every
	// record byte-identically.
	store := "/a;x;0\n/b;y;0\n"
	out := Apply(store, getCmd(t, "nope"), 10)

	if out.Text != store {
		t.Errorf("expected byte-identical rewrite:\nwant %q\ngot  %q", store, out.Text)
	}
	if out.HasPath {
		t.Errorf("priority-0 records never become the fallback, got %q", out.Path)
	}
}

func TestApply_AddToExistingPath(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindAdd, "mu", "/home/user/music"), 10)

	if !out.Found {
		t.Fatal("expected add to match the existing path")
	}
	if !strings.Contains(out.Text, "/home/user/music;m;mu;30\n") {
		t.Errorf("expected shortcut appended and priority bumped:\n%s", out.Text)
	}
	if strings.Count(out.Text, "\n") != 3 {
		t.Errorf("no new record should be appended:\n%s", out.Text)
	}
}

func TestApply_AddCollision(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindAdd, "m", "/somewhere/else"), 10)

	if out.Text != testStore {
		t.Errorf("collision must leave the store unchanged:\nwant %q\ngot  %q", testStore, out.Text)
	}
	found := false
	for _, d := range out.Diagnostics {
		if errors.Is(d, ErrShortcutExists) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a collision diagnostic, got %v", out.Diagnostics)
	}
}

func TestApply_AddNewPathAppendsRecord(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindAdd, "nw", "/opt/new"), 10)

	if out.Found {
		t.Error("a brand-new path matches no record")
	}
	if !strings.HasSuffix(out.Text, "/opt/new;nw;0\n") {
		t.Errorf("expected new record appended with priority 0:\n%s", out.Text)
	}
}

func TestApply_Uniqueness(t *testing.T) {
	// After any sequence of adds, no shortcut appears on two records.
	store := testStore
	for _, args := range [][]string{
		{"x", "/opt/one"},
		{"x", "/opt/two"}, // collision, rejected
		{"m", "/opt/three"}, // collision with an existing record
		{"y", "/opt/one"},
	} {
		out := Apply(store, buildCmd(t, domain.KindAdd, args[0], args[1]), 10)
		store = out.Text
	}

	seen := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(store), "\n") {
		rec, err := domain.ParseRecord(line)
		if err != nil {
			t.Fatalf("unparseable line %q: %v", line, err)
		}
		for _, s := range rec.Shortcuts {
			if prev, ok := seen[s]; ok {
				t.Errorf("shortcut %q appears on both %s and %s", s, prev, rec.Path)
			}
			seen[s] = rec.Path
		}
	}
}

func TestApply_EditRepointsShortcut(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindEdit, "d", "/srv/archive"), 10)

	if !out.Found {
		t.Fatal("expected edit to match shortcut d")
	}
	if !strings.Contains(out.Text, "/srv/archive;d;5\n") {
		t.Errorf("expected path replaced with priority untouched:\n%s", out.Text)
	}
}

func TestApply_EditToExistingPath(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindEdit, "d", "/home/user/music"), 10)

	if out.Text != testStore {
		t.Errorf("editing to an existing path must leave the store unchanged:\n%s", out.Text)
	}
	found := false
	for _, d := range out.Diagnostics {
		if errors.Is(d, ErrPathExists) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a path-exists diagnostic, got %v", out.Diagnostics)
	}
}

func TestApply_EditWithoutMatchAppends(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindEdit, "zz", "/opt/zz"), 10)

	if !strings.HasSuffix(out.Text, "/opt/zz;zz;0\n") {
		t.Errorf("edit without a match appends a fresh record:\n%s", out.Text)
	}
}

func TestApply_RemoveKeepsOtherShortcuts(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindRemove, "p"), 10)

	if !out.Found {
		t.Fatal("expected remove to match")
	}
	if !strings.Contains(out.Text, "/home/user/projects;proj;40\n") {
		t.Errorf("record with two shortcuts retains the other:\n%s", out.Text)
	}
}

func TestApply_RemoveEmptiesRecord(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindRemove, "m"), 10)

	if strings.Contains(out.Text, "/home/user/music") {
		t.Errorf("removing the only shortcut drops the whole record:\n%s", out.Text)
	}
	if strings.Count(out.Text, "\n") != 2 {
		t.Errorf("expected two records to remain:\n%s", out.Text)
	}
}

func TestApply_RemoveNotFound(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindRemove, "zz"), 10)

	if out.Text != testStore {
		t.Error("failed remove must leave the store unchanged")
	}
	if len(out.Diagnostics) == 0 || !errors.Is(out.Diagnostics[0], ErrShortcutNotFound) {
		t.Errorf("expected a not-found diagnostic, got %v", out.Diagnostics)
	}
}

func TestApply_Delete(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindDelete, "/home/user/projects"), 10)

	if !out.Found {
		t.Fatal("expected delete to match")
	}
	if strings.Contains(out.Text, "projects") {
		t.Errorf("deleted record must be gone regardless of shortcut count:\n%s", out.Text)
	}
	if out.HasPath {
		t.Errorf("delete returns no resolved path, got %q", out.Path)
	}
}

func TestApply_DeleteNotFound(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindDelete, "/nope"), 10)

	if out.Text != testStore {
		t.Error("failed delete must leave the store unchanged")
	}
	if len(out.Diagnostics) == 0 || !errors.Is(out.Diagnostics[0], ErrPathNotFound) {
		t.Errorf("expected a not-found diagnostic, got %v", out.Diagnostics)
	}
}

func TestApply_DecrementSaturates(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindDecrement, "25"), 10)

	want := "/home/user/projects;p;proj;15\n" +
		"/home/user/music;m;0\n" +
		"/srv/data;d;0\n"
	if out.Text != want {
		t.Errorf("decrement must saturate at zero:\nwant %q\ngot  %q", want, out.Text)
	}
	if out.Found {
		t.Error("decrement never sets success")
	}
}

func TestApply_Reset(t *testing.T) {
	out := Apply(testStore, buildCmd(t, domain.KindReset), 10)

	want := "/home/user/projects;p;proj;0\n" +
		"/home/user/music;m;0\n" +
		"/srv/data;d;0\n"
	if out.Text != want {
		t.Errorf("reset zeroes every priority:\nwant %q\ngot  %q", want, out.Text)
	}
}

func TestApply_CopyThroughAfterSuccess(t *testing.T) {
	// Both records carry the same path; only the first may be touched.
	store := "/dup;a;1\n/dup;b;2\n"
	out := Apply(store, buildCmd(t, domain.KindDelete, "/dup"), 10)

	if out.Text != "/dup;b;2\n" {
		t.Errorf("only the first matching record is affected:\ngot %q", out.Text)
	}
}

func TestApply_MalformedLine(t *testing.T) {
	store := "/home/user/projects;p;40\ngarbage-without-separator\n/srv;s;1\n"
	out := Apply(store, getCmd(t, "s"), 10)

	var dataErr *DataError
	found := false
	for _, d := range out.Diagnostics {
		if errors.As(d, &dataErr) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a data error for the malformed line, got %v", out.Diagnostics)
	}
	if !out.Found || out.Path != "/srv" {
		t.Errorf("scan must continue past corruption, got %q", out.Path)
	}
	if strings.Contains(out.Text, "garbage") {
		t.Errorf("malformed line should be dropped from the rewrite:\n%s", out.Text)
	}
}

func TestApply_NonNumericPriority(t *testing.T) {
	store := "/a;x;high\n/b;y;3\n"
	out := Apply(store, getCmd(t), 10)

	var dataErr *DataError
	if len(out.Diagnostics) == 0 || !errors.As(out.Diagnostics[0], &dataErr) {
		t.Fatalf("expected a data error, got %v", out.Diagnostics)
	}
	if out.Text != "/a;x;0\n/b;y;3\n" {
		t.Errorf("corrupt priority degrades to zero, the record survives:\ngot %q", out.Text)
	}
	if out.Path != "/b" {
		t.Errorf("expected fallback from the valid record, got %q", out.Path)
	}
}

func TestApply_NonNumericPriority_RecordStillResolvable(t *testing.T) {
	store := "/a;x;high\n"
	out := Apply(store, getCmd(t, "x"), 10)

	if !out.Found {
		t.Fatal("a record with a corrupt priority must still match its shortcut")
	}
	if out.Text != "/a;x;10\n" {
		t.Errorf("degraded priority bumps from zero:\ngot %q", out.Text)
	}
}

func TestApply_PriorityOverflow(t *testing.T) {
	store := fmt.Sprintf("/a;x;%d\n", uint64(math.MaxUint32))
	out := Apply(store, getCmd(t, "x"), 10)

	var internalErr *InternalError
	if len(out.Diagnostics) == 0 || !errors.As(out.Diagnostics[0], &internalErr) {
		t.Fatalf("expected an internal error, got %v", out.Diagnostics)
	}
	if !out.Found || out.Path != "/a" {
		t.Errorf("overflow still resolves the record, got %q", out.Path)
	}
	want := fmt.Sprintf("/a;x;%d\n", uint64(math.MaxUint32))
	if out.Text != want {
		t.Errorf("priority saturates at the maximum:\ngot  %q\nwant %q", out.Text, want)
	}
}

func TestApply_BlankLinesDropped(t *testing.T) {
	store := "\n/a;x;1\n\n\n/b;y;2\n\n"
	out := Apply(store, getCmd(t), 10)

	if out.Text != "/a;x;1\n/b;y;2\n" {
		t.Errorf("blank lines are not preserved:\ngot %q", out.Text)
	}
}
