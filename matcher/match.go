// Package matcher implements the abstract matcher state machine: positions,
// current match text, EOF/EOB flags, line/column/indent counters, option
// flags, and the public scan/find/split/match loop, generic over any
// engine.Engine implementation.
package matcher

import (
	"github.com/coregx/coregex/simd"
	"github.com/flexmatch/flexmatch/buffer"
	"github.com/flexmatch/flexmatch/engine"
)

// Match is the result of one accepted attempt: which rule accepted, the
// matched text, its absolute offset and length, and the line/column of its
// start.
type Match struct {
	Accept int
	Text   []byte
	Offset int
	Length int
	Line   int
	Column int
}

// Method names the four ways a Matcher can be driven.
type Method int

const (
	MethodScan Method = iota
	MethodFind
	MethodSplit
	MethodMatch
)

// Matcher is the abstract base shared by every concrete engine: it owns the
// buffer, drives the refill loop, and maintains line/column/indent state.
// It knows nothing about how a specific engine recognizes a pattern.
type Matcher struct {
	buf *buffer.Buffer
	eng engine.Engine
	opt Options

	line, col   int  // line/column of the most recent match's start
	lineStart   int  // buffer offset where the current line began
	splitDone   bool // SPLIT has already emitted its EOF-sentinel final run
	extending   bool // More() was called: next attempt keeps the current Txt
	indentState IndentState
}

// New creates a Matcher over src driven by eng, both already bound to the
// same pattern the caller compiled.
func New(src buffer.Source, eng engine.Engine, opts Options) *Matcher {
	return &Matcher{
		buf:  buffer.New(src),
		eng:  eng,
		opt:  opts,
		line: 1,
	}
}

// Reset clears buffer positions and line/column/indent state for reuse
// against the same input, applying a freshly parsed option string. It does
// not discard the backing allocation.
func (m *Matcher) Reset(optionString string) {
	m.buf.Flush()
	m.opt = ParseOptions(optionString)
	m.line, m.col, m.lineStart = 1, 0, 0
	m.splitDone = false
	m.indentState.Undent()
	m.eng.Reset()
}

// SetEngine reassigns the compiled pattern this matcher drives. Any cached
// iteration state (e.g. a pending Split run) is invalidated.
func (m *Matcher) SetEngine(eng engine.Engine) {
	m.eng = eng
	m.splitDone = false
}

// Indent exposes the tab-stop stack the \i/\j/\k FSM escapes drive.
func (m *Matcher) Indent() *IndentState { return &m.indentState }

// Lineno and Columno report the line/column of the most recently returned
// match's start, computed lazily over the buffered bytes since the last
// known line start.
func (m *Matcher) Lineno() int  { return m.line }
func (m *Matcher) Columno() int { return m.col }

// Good and EOF mirror the input source's own predicates: an input error
// leaves Good()==false without ever setting EOF(), and vice versa for
// ordinary end-of-stream.
func (m *Matcher) Good() bool { return m.buf.Bytes() != nil }
func (m *Matcher) EOF() bool  { return m.buf.SourceEOF() && m.buf.Pos() >= m.buf.End() }

// Scan succeeds only if a match begins exactly at the current position.
func (m *Matcher) Scan() (Match, bool) { return m.run(MethodScan) }

// Find succeeds if a match begins anywhere at or after the current
// position, skipping non-matching input.
func (m *Matcher) Find() (Match, bool) { return m.run(MethodFind) }

// Split returns each run of non-matching input followed by a matching
// delimiter; the final run (possibly empty) is flagged by Match.Accept ==
// engine.Empty with an ordinary EOF-terminated run, or returned once with
// ok==true and then false on the next call.
func (m *Matcher) Split() (Match, bool) { return m.run(MethodSplit) }

// MatchAll succeeds only if the entire remaining input matches exactly.
func (m *Matcher) MatchAll() (Match, bool) { return m.run(MethodMatch) }

// startAttempt begins a new match attempt: ordinarily Txt catches up to the
// previous Cur and Cur catches up to Pos (buffer.Advance). If More() was
// called since the last attempt, Txt is left where it was so the next
// match extends the existing token instead of starting a fresh one.
func (m *Matcher) startAttempt() {
	if m.extending {
		m.extending = false
		m.buf.SetCur(m.buf.Pos())
		return
	}
	m.buf.Advance()
}

func (m *Matcher) run(method Method) (Match, bool) {
	switch method {
	case MethodScan:
		return m.scan()
	case MethodFind:
		return m.find()
	case MethodSplit:
		return m.split()
	case MethodMatch:
		return m.matchAll()
	default:
		return Match{}, false
	}
}

func (m *Matcher) scan() (Match, bool) {
	m.startAttempt()
	out := m.attempt(true)
	if out.Accept == 0 {
		return Match{}, false
	}
	return m.accept(out), true
}

func (m *Matcher) find() (Match, bool) {
	for {
		if m.buf.SourceEOF() && m.buf.Pos() >= m.buf.End() && m.buf.Txt() == m.buf.Pos() {
			// The previous attempt already ended at end of input without
			// moving Cur: an empty match there was already handled, and
			// there is nothing left to advance over.
			return Match{}, false
		}
		m.startAttempt()
		out := m.attempt(false)
		if out.Accept == 0 {
			return Match{}, false
		}
		match := m.accept(out)
		if out.Accept == engine.Empty && !m.opt.EmptyOK {
			// Zero-width matches are suppressed unless explicitly enabled;
			// progress was already forced by accept(), try again.
			continue
		}
		return match, true
	}
}

// split yields each non-matching run, with the matching delimiter consumed
// but not returned; the terminal run (possibly empty) is yielded once more,
// after which Split reports no more results.
func (m *Matcher) split() (Match, bool) {
	if m.splitDone {
		return Match{}, false
	}
	runStart := m.buf.Pos()
	for {
		m.startAttempt()
		out := m.attempt(false)
		if out.Accept == 0 {
			// No more delimiters: the rest of the input is the final run.
			m.splitDone = true
			end := m.buf.End()
			for !m.buf.SourceEOF() {
				n, err := m.buf.PeekMore(0)
				if err != nil || n == 0 {
					break
				}
				end = m.buf.End()
			}
			run := m.makeMatch(engine.Empty, runStart, end)
			m.buf.SetCur(end)
			m.buf.SetPos(end)
			return run, true
		}
		delimStart, delimEnd := out.Start, out.End
		run := m.makeMatch(out.Accept, runStart, delimStart)
		m.buf.SetCur(delimEnd)
		m.buf.SetPos(delimEnd)
		m.advanceZeroWidth(out)
		runStart = m.buf.Pos()
		return run, true
	}
}

func (m *Matcher) matchAll() (Match, bool) {
	m.startAttempt()
	for !m.buf.SourceEOF() {
		if _, err := m.buf.PeekMore(0); err != nil {
			break
		}
	}
	out := m.eng.Attempt(m.buf.Bytes(), m.buf.Pos(), true, true)
	if out.Accept == 0 || out.End != m.buf.End() {
		return Match{}, false
	}
	return m.accept(out), true
}

// attempt runs the refill loop: keep calling the engine until it returns a
// conclusive (non-NeedMore) outcome, growing the buffer as needed.
func (m *Matcher) attempt(anchored bool) engine.Outcome {
	for {
		eof := m.buf.SourceEOF()
		out := m.eng.Attempt(m.buf.Bytes(), m.buf.Pos(), eof, anchored)
		if !out.NeedMore {
			return out
		}
		n, err := m.buf.PeekMore(0)
		if err != nil || n == 0 {
			return m.eng.Attempt(m.buf.Bytes(), m.buf.Pos(), true, anchored)
		}
	}
}

// accept finalizes a successful outcome: updates line/column bookkeeping,
// advances the buffer cursors, and enforces the one-code-unit-progress
// rule after a zero-width match.
func (m *Matcher) accept(out engine.Outcome) Match {
	match := m.makeMatch(out.Accept, out.Start, out.End)
	m.buf.SetCur(out.End)
	m.buf.SetPos(out.End)
	m.advanceZeroWidth(out)
	return match
}

// advanceZeroWidth forces the next attempt to start at least one code unit
// further on after a zero-width match, so that Find/Split over a nullable
// pattern like "a*" make progress instead of reporting the same empty match
// forever.
func (m *Matcher) advanceZeroWidth(out engine.Outcome) {
	if out.Start != out.End {
		return
	}
	data := m.buf.Bytes()
	pos := m.buf.Pos()
	if pos >= len(data) {
		return
	}
	_, size := decodeRuneWidth(data[pos:])
	m.buf.SetPos(pos + size)
	m.buf.SetCur(pos + size)
}

func decodeRuneWidth(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	if b[0] < 0x80 {
		return rune(b[0]), 1
	}
	n := 1
	for n < 4 && n < len(b) && b[n]&0xC0 == 0x80 {
		n++
	}
	return 0, n
}

// makeMatch builds a Match from an accept/start/end triple, updating
// line/column bookkeeping by scanning newlines between the last known line
// start and start. The scan reuses package simd's Memchr, the same
// single-byte search the prefilter machinery already relies on, instead of
// a byte-by-byte loop.
func (m *Matcher) makeMatch(accept, start, end int) Match {
	data := m.buf.Bytes()
	if start >= m.lineStart {
		for {
			rel := simd.Memchr(data[m.lineStart:start], '\n')
			if rel < 0 {
				break
			}
			m.line++
			m.lineStart += rel + 1
		}
	}
	m.col = expandColumn(data[m.lineStart:start], m.opt.TabWidth)
	if m.opt.IndentMode {
		m.indentState.Indent(m.col)
	}
	return Match{
		Accept: accept,
		Text:   data[start:end],
		Offset: start,
		Length: end - start,
		Line:   m.line,
		Column: m.col,
	}
}

func expandColumn(line []byte, tabWidth int) int {
	col := 0
	for _, b := range line {
		if b == '\t' {
			col += tabWidth - col%tabWidth
		} else {
			col++
		}
	}
	return col
}
