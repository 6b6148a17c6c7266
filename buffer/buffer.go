// Package buffer implements the growable octet window the matcher reads and
// refills as input streams in.
//
// A Buffer is a single contiguous byte slice with four logical cursors,
// expressed as offsets rather than pointers so that the underlying slice can
// be relocated (shifted or grown) without leaving dangling references:
//
//	0 <= Txt <= Cur <= Pos <= End <= Max
//
// Txt marks the start of the current match, Cur one past its last accepted
// byte, Pos the engine's read cursor (which may run ahead of Cur during
// lookahead), and End one past the last byte actually present. Max is the
// length of the backing allocation. Any slice returned by Bytes is only
// valid until the next call that may shift or grow the buffer.
package buffer

import "fmt"

// DefaultBlock is the minimum number of bytes PeekMore tries to make room
// for on each refill.
const DefaultBlock = 4096

// Source is the minimal pull interface the buffer refills from. It is
// satisfied by input.Source; declared locally to avoid an import cycle.
type Source interface {
	Get(dst []byte) (int, error)
	EOF() bool
}

// Buffer is a growable octet window with a sliding match/lookahead region.
type Buffer struct {
	data []byte
	txt  int
	cur  int
	pos  int
	end  int

	src Source
}

// New creates an empty buffer reading from src with an initial allocation
// of at least DefaultBlock bytes.
func New(src Source) *Buffer {
	return &Buffer{
		data: make([]byte, DefaultBlock),
		src:  src,
	}
}

// Bytes returns the valid octets currently held, data[0:End). The slice
// aliases the buffer's backing array and is invalidated by the next Shift,
// Grow or Flush.
func (b *Buffer) Bytes() []byte { return b.data[:b.end] }

// Txt, Cur, Pos, End return the buffer's four logical cursors.
func (b *Buffer) Txt() int { return b.txt }
func (b *Buffer) Cur() int { return b.cur }
func (b *Buffer) Pos() int { return b.pos }
func (b *Buffer) End() int { return b.end }

// Max reports the size of the current backing allocation.
func (b *Buffer) Max() int { return len(b.data) }

// SetCur advances Cur to pos, as the match loop does once it accepts a
// result extending to pos.
func (b *Buffer) SetCur(pos int) {
	if pos < b.txt || pos > b.end {
		panic(fmt.Sprintf("buffer: SetCur(%d) out of range [%d,%d]", pos, b.txt, b.end))
	}
	b.cur = pos
}

// SetPos moves the read cursor, used by an engine exploring lookahead ahead
// of the last accepted position.
func (b *Buffer) SetPos(pos int) {
	if pos < b.cur || pos > b.end {
		panic(fmt.Sprintf("buffer: SetPos(%d) out of range [%d,%d]", pos, b.cur, b.end))
	}
	b.pos = pos
}

// Advance starts a new match attempt: Txt becomes the end of the previous
// match and Cur catches up to Pos ("Txt := buf+Cur; advance Cur := Pos").
func (b *Buffer) Advance() {
	b.txt = b.cur
	b.cur = b.pos
}

// Text returns the bytes of the current match, data[Txt:Cur).
func (b *Buffer) Text() []byte { return b.data[b.txt:b.cur] }

// PeekMore makes room for at least need more bytes past End (never less
// than DefaultBlock), shifting or growing the backing array as necessary,
// and then reads once from the underlying source into that room. It
// reports the number of bytes appended, which may be fewer than need.
//
// Policy: shift discarded bytes [0,Txt) out when Txt > 0 to reclaim space;
// otherwise double the allocation. Either operation invalidates any slice
// or cursor an engine cached outside of Buffer — callers must re-derive
// positions from Txt/Cur/Pos/End afterwards.
func (b *Buffer) PeekMore(need int) (int, error) {
	if need < DefaultBlock {
		need = DefaultBlock
	}
	total := 0
	for {
		if b.end+need+1 > len(b.data) {
			if b.txt > 0 {
				b.shift()
			} else {
				b.grow()
			}
			continue
		}
		n, err := b.src.Get(b.data[b.end : b.end+need])
		b.end += n
		total += n
		if n > 0 || err != nil || b.src.EOF() {
			return total, err
		}
		// n == 0, no error, not EOF: source has nothing ready yet but may
		// later (e.g. a FileHandler asked for a retry); report progress so
		// far and let the caller decide whether to loop.
		return total, nil
	}
}

// shift relocates [Txt,End) to offset 0, discarding already-matched bytes
// that can never be referenced again.
func (b *Buffer) shift() {
	delta := b.txt
	if delta == 0 {
		return
	}
	n := copy(b.data, b.data[b.txt:b.end])
	b.txt = 0
	b.cur -= delta
	b.pos -= delta
	b.end = n
}

// grow doubles the backing allocation, preserving all four cursors.
func (b *Buffer) grow() {
	bigger := make([]byte, len(b.data)*2)
	copy(bigger, b.data[:b.end])
	b.data = bigger
}

// Flush discards all buffered octets and resets every cursor to zero. Used
// by the lexer at start-condition boundaries where buffered lookahead must
// not leak across a context switch.
func (b *Buffer) Flush() {
	b.txt, b.cur, b.pos, b.end = 0, 0, 0, 0
}

// Size returns the length of the current match, Cur - Txt, which is what
// callers see as the "match length" regardless of where in the backing
// array it currently lives.
func (b *Buffer) Size() int { return b.cur - b.txt }

// SourceEOF reports whether the underlying source has signaled end of
// stream. It says nothing about whether every byte the source has to give
// has already been pulled into the buffer — callers combine it with
// Pos()/End() for that.
func (b *Buffer) SourceEOF() bool { return b.src.EOF() }
