package matcher

import (
	"testing"

	"github.com/flexmatch/flexmatch/engine"
	"github.com/flexmatch/flexmatch/input"
)

func newMatcher(t *testing.T, s, pattern string) *Matcher {
	t.Helper()
	eng, err := engine.NewDFAEngine(pattern, 1, engine.DefaultDFAConfig())
	if err != nil {
		t.Fatalf("NewDFAEngine: %v", err)
	}
	return New(input.NewStringSource(s), eng, DefaultOptions())
}

func TestScanMatchesOnlyAtCurrentPosition(t *testing.T) {
	m := newMatcher(t, "123abc", `[0-9]+`)
	match, ok := m.Scan()
	if !ok || string(match.Text) != "123" {
		t.Fatalf("Scan = %+v, ok=%v", match, ok)
	}
	if _, ok := m.Scan(); ok {
		t.Fatalf("second Scan should fail: next input is not digits")
	}
}

func TestFindSkipsNonMatchingInput(t *testing.T) {
	m := newMatcher(t, "abc 123 def", `[0-9]+`)
	match, ok := m.Find()
	if !ok || string(match.Text) != "123" || match.Offset != 4 {
		t.Fatalf("Find = %+v, ok=%v", match, ok)
	}
	if _, ok := m.Find(); ok {
		t.Fatalf("second Find should fail: no more digits")
	}
}

func TestSplitYieldsRunsBetweenDelimiters(t *testing.T) {
	m := newMatcher(t, "one,two,three", `,`)
	var runs []string
	for {
		match, ok := m.Split()
		if !ok {
			break
		}
		runs = append(runs, string(match.Text))
	}
	want := []string{"one", "two", "three"}
	if len(runs) != len(want) {
		t.Fatalf("runs = %v, want %v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Fatalf("runs[%d] = %q, want %q", i, runs[i], want[i])
		}
	}
}

func TestMatchAllRequiresWholeInput(t *testing.T) {
	m := newMatcher(t, "12345", `[0-9]+`)
	if match, ok := m.MatchAll(); !ok || string(match.Text) != "12345" {
		t.Fatalf("MatchAll = %+v, ok=%v", match, ok)
	}

	m2 := newMatcher(t, "12345x", `[0-9]+`)
	if _, ok := m2.MatchAll(); ok {
		t.Fatalf("MatchAll should fail: trailing input not consumed")
	}
}

func TestLineAndColumnAdvanceAcrossNewlines(t *testing.T) {
	m := newMatcher(t, "aa\nbb\nccc", `[a-z]+`)
	first, ok := m.Find()
	if !ok || first.Line != 1 || first.Column != 0 {
		t.Fatalf("first = %+v", first)
	}
	second, ok := m.Find()
	if !ok || second.Line != 2 || second.Column != 0 {
		t.Fatalf("second = %+v", second)
	}
	third, ok := m.Find()
	if !ok || third.Line != 3 || third.Column != 0 {
		t.Fatalf("third = %+v", third)
	}
}

func TestZeroWidthMatchForcesProgress(t *testing.T) {
	eng, err := engine.NewDFAEngine(`a*`, 1, engine.DefaultDFAConfig())
	if err != nil {
		t.Fatalf("NewDFAEngine: %v", err)
	}
	opts := DefaultOptions()
	opts.EmptyOK = true
	m := New(input.NewStringSource("baa"), eng, opts)

	first, ok := m.Find()
	if !ok || first.Length != 0 || first.Offset != 0 {
		t.Fatalf("first empty match at BOF = %+v, ok=%v", first, ok)
	}
	second, ok := m.Find()
	if !ok || string(second.Text) != "aa" || second.Offset != 1 {
		t.Fatalf("second = %+v, ok=%v", second, ok)
	}
}
