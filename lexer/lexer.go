// Package lexer provides the scaffolding a generated scanner's action code
// runs against: the active matcher, a matcher stack for include-style
// context switches, a start-condition stack, and a single-character
// input/output stream pair. The generated DFA opcode tables and action
// dispatch that drive it are an external, out-of-scope collaborator.
package lexer

import (
	"errors"
	"io"

	"github.com/flexmatch/flexmatch/matcher"
)

// ErrLexer is returned by the default fatal-error action for a pattern
// -mismatch (an internal invariant violation, e.g. the engine reports an
// accept index outside the generated table). Driver tools map it to
// ExitCode.
var ErrLexer = errors.New("lexer: pattern mismatch")

// ExitCode is the process exit status a driver should use after a fatal
// lexer error.
const ExitCode = 2

// matcherFrame pairs an owned matcher with the start condition active when
// it was pushed, so pop_matcher can restore both atomically.
type matcherFrame struct {
	m     *matcher.Matcher
	state int
}

// Lexer holds the scaffolding generated scanner code drives: the current
// matcher, a matcher stack, start-condition state and stack, and an
// input/output stream pair.
type Lexer struct {
	stack []matcherFrame
	m     *matcher.Matcher
	state int

	states []int // start-condition stack, independent of matcher push/pop

	unput []byte // single-character pushback buffer (input/unput)
	wunput []rune

	out io.Writer
}

// New creates a Lexer with no matcher installed; call PushMatcher before
// driving any match operation.
func New(out io.Writer) *Lexer {
	return &Lexer{out: out}
}

// PushMatcher transfers ownership of m to the stack and installs it as the
// current matcher, saving whatever matcher (if any) was previously active.
func (l *Lexer) PushMatcher(m *matcher.Matcher) {
	if l.m != nil {
		l.stack = append(l.stack, matcherFrame{m: l.m, state: l.state})
	}
	l.m = m
}

// PopMatcher destroys the current matcher and restores the previous one.
// If no matcher was pushed beneath the current one, the lexer is left with
// no matcher installed.
func (l *Lexer) PopMatcher() {
	if len(l.stack) == 0 {
		l.m = nil
		return
	}
	top := l.stack[len(l.stack)-1]
	l.stack = l.stack[:len(l.stack)-1]
	l.m = top.m
	l.state = top.state
}

// Matcher returns the currently installed matcher, or nil if none is.
func (l *Lexer) Matcher() *matcher.Matcher { return l.m }

// PushState saves the current start condition and switches to n.
func (l *Lexer) PushState(n int) {
	l.states = append(l.states, l.state)
	l.state = n
}

// PopState restores the most recently pushed start condition. It is a
// no-op if the stack is empty.
func (l *Lexer) PopState() {
	if len(l.states) == 0 {
		return
	}
	l.state = l.states[len(l.states)-1]
	l.states = l.states[:len(l.states)-1]
}

// TopState reports the active start condition, 0 (INITIAL) by default.
func (l *Lexer) TopState() int { return l.state }

// SetState sets the active start condition directly, without pushing.
func (l *Lexer) SetState(n int) { l.state = n }

// Input pulls a single rune from the current matcher's input, preferring
// anything pushed back via Unput/WUnput first. It reports io.EOF when the
// underlying source is exhausted.
func (l *Lexer) Input() (rune, error) {
	if len(l.wunput) > 0 {
		r := l.wunput[len(l.wunput)-1]
		l.wunput = l.wunput[:len(l.wunput)-1]
		return r, nil
	}
	if len(l.unput) > 0 {
		b := l.unput[len(l.unput)-1]
		l.unput = l.unput[:len(l.unput)-1]
		return rune(b), nil
	}
	if l.m == nil {
		return 0, io.EOF
	}
	return l.m.NextRune()
}

// Unput pushes a single byte back onto the input, to be returned by the
// next Input call before any buffered matcher data.
func (l *Lexer) Unput(c byte) { l.unput = append(l.unput, c) }

// WInput is the wide-character counterpart to Input, used by generated
// scanners built over a rune-oriented grammar rather than a byte-oriented
// one.
func (l *Lexer) WInput() (rune, error) { return l.Input() }

// WUnput pushes a rune back, to be returned by the next WInput/Input call.
func (l *Lexer) WUnput(c rune) { l.wunput = append(l.wunput, c) }

// Output writes one octet to the echo stream generated actions use for
// verbatim (unmatched) passthrough, e.g. ECHO in a flex-style action table.
func (l *Lexer) Output(c byte) error {
	if l.out == nil {
		return nil
	}
	_, err := l.out.Write([]byte{c})
	return err
}

// Fatal runs the default PatternMismatch action: the message is the
// caller's responsibility to have already written; Fatal only
// reports the sentinel error a driver maps to ExitCode. Callers that want a
// different fatal action should not call this and instead handle
// PatternMismatch themselves.
func (l *Lexer) Fatal() error { return ErrLexer }
