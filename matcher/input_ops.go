package matcher

import "io"

// This file implements the single-character pull/push-back and match-text
// adjustment utilities: peek(), input(), unput(c), more(), less(k). They
// operate directly on the buffer
// cursors, independent of the Scan/Find/Split/MatchAll loop, for generated
// action code that wants to consume input byte by byte (package lexer's
// Input builds on NextRune).

// Peek returns the next rune without consuming it, refilling the buffer if
// necessary. ok is false only at end of input.
func (m *Matcher) Peek() (rune, bool) {
	if !m.ensure(4) {
		if m.buf.Pos() >= m.buf.End() {
			return 0, false
		}
	}
	data := m.buf.Bytes()
	pos := m.buf.Pos()
	if pos >= len(data) {
		return 0, false
	}
	r, _ := decodeRuneWidth(data[pos:])
	return r, true
}

// NextRune consumes and returns the next rune, advancing Cur and Pos past
// it. It returns io.EOF once the input is exhausted.
func (m *Matcher) NextRune() (rune, error) {
	if !m.ensure(4) && m.buf.Pos() >= m.buf.End() {
		return 0, io.EOF
	}
	data := m.buf.Bytes()
	pos := m.buf.Pos()
	if pos >= len(data) {
		return 0, io.EOF
	}
	r, size := decodeRuneWidth(data[pos:])
	m.buf.SetPos(pos + size)
	m.buf.SetCur(pos + size)
	return r, nil
}

// UngetByte pushes the read cursor back by one byte, the way unput(c) does.
// It is only valid immediately after a NextRune/Peek call that consumed a
// single-byte (ASCII) code unit; multi-byte pushback is the caller's
// responsibility via the lexer's own Unput buffer instead.
func (m *Matcher) UngetByte() {
	pos := m.buf.Pos()
	if pos <= m.buf.Cur() && pos > m.buf.Txt() {
		m.buf.SetCur(pos - 1)
		m.buf.SetPos(pos - 1)
	}
}

// More marks the current match as open-ended: the next Scan/Find/Split
// attempt will extend the existing Txt..Cur span instead of starting a
// fresh one at Cur, matching flex's yymore() semantics.
func (m *Matcher) More() { m.extending = true }

// Less truncates the current match to its first k bytes, rewinding Cur
// (and the read cursor Pos) so the remaining bytes are re-read by the next
// match attempt, matching flex's yyless(k).
func (m *Matcher) Less(k int) {
	text := m.buf.Text()
	if k < 0 || k > len(text) {
		return
	}
	newCur := m.buf.Cur() - (len(text) - k)
	m.buf.SetCur(newCur)
	m.buf.SetPos(newCur)
}

// ensure tries to guarantee at least need bytes are available past Pos,
// returning false if the source is exhausted before that's possible.
func (m *Matcher) ensure(need int) bool {
	for m.buf.End()-m.buf.Pos() < need {
		if m.buf.SourceEOF() {
			return m.buf.End() > m.buf.Pos()
		}
		n, err := m.buf.PeekMore(0)
		if err != nil || n == 0 {
			return m.buf.End() > m.buf.Pos()
		}
	}
	return true
}
