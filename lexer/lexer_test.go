package lexer

import (
	"bytes"
	"testing"

	"github.com/flexmatch/flexmatch/engine"
	"github.com/flexmatch/flexmatch/input"
	"github.com/flexmatch/flexmatch/matcher"
)

func newTestMatcher(t *testing.T, s, pattern string) *matcher.Matcher {
	t.Helper()
	eng, err := engine.NewDFAEngine(pattern, 1, engine.DefaultDFAConfig())
	if err != nil {
		t.Fatalf("NewDFAEngine: %v", err)
	}
	return matcher.New(input.NewStringSource(s), eng, matcher.DefaultOptions())
}

func TestPushPopMatcherRestoresPrevious(t *testing.T) {
	outer := newTestMatcher(t, "outer", `\w+`)
	inner := newTestMatcher(t, "inner", `\w+`)

	l := New(nil)
	l.PushMatcher(outer)
	if l.Matcher() != outer {
		t.Fatalf("expected outer matcher installed")
	}
	l.PushMatcher(inner)
	if l.Matcher() != inner {
		t.Fatalf("expected inner matcher installed")
	}
	l.PopMatcher()
	if l.Matcher() != outer {
		t.Fatalf("expected outer matcher restored after pop")
	}
}

func TestStateStack(t *testing.T) {
	l := New(nil)
	if l.TopState() != 0 {
		t.Fatalf("initial state = %d, want 0 (INITIAL)", l.TopState())
	}
	l.PushState(5)
	if l.TopState() != 5 {
		t.Fatalf("TopState after push = %d", l.TopState())
	}
	l.PushState(7)
	l.PopState()
	if l.TopState() != 5 {
		t.Fatalf("TopState after pop = %d, want 5", l.TopState())
	}
	l.PopState()
	if l.TopState() != 0 {
		t.Fatalf("TopState after final pop = %d, want 0", l.TopState())
	}
}

func TestInputReadsFromMatcherAndUnputPushesBack(t *testing.T) {
	m := newTestMatcher(t, "ab", `\w+`)
	l := New(nil)
	l.PushMatcher(m)

	r, err := l.Input()
	if err != nil || r != 'a' {
		t.Fatalf("Input = %q, %v", r, err)
	}
	l.Unput('a')
	r, err = l.Input()
	if err != nil || r != 'a' {
		t.Fatalf("Input after Unput = %q, %v", r, err)
	}
	r, err = l.Input()
	if err != nil || r != 'b' {
		t.Fatalf("Input = %q, %v", r, err)
	}
}

func TestOutputWritesToEchoStream(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	if err := l.Output('x'); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if buf.String() != "x" {
		t.Fatalf("echo stream = %q, want %q", buf.String(), "x")
	}
}
