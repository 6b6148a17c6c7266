package buffer

import (
	"bytes"
	"io"
	"testing"
)

type readerSource struct {
	r   *bytes.Reader
	eof bool
}

func (s *readerSource) Get(dst []byte) (int, error) {
	n, err := s.r.Read(dst)
	if err == io.EOF {
		s.eof = true
		return n, nil
	}
	return n, err
}

func (s *readerSource) EOF() bool { return s.eof }

func newSource(t *testing.T, data string) *readerSource {
	t.Helper()
	return &readerSource{r: bytes.NewReader([]byte(data))}
}

func TestPeekMoreFillsBuffer(t *testing.T) {
	src := newSource(t, "hello world")
	b := New(src)

	n, err := b.PeekMore(5)
	if err != nil {
		t.Fatalf("PeekMore: %v", err)
	}
	if n == 0 {
		t.Fatalf("expected bytes appended, got 0")
	}
	if got := string(b.Bytes()); got != "hello world" {
		t.Fatalf("Bytes() = %q, want %q", got, "hello world")
	}
}

func TestInvariantsHoldAfterAdvance(t *testing.T) {
	src := newSource(t, "abc 123")
	b := New(src)
	if _, err := b.PeekMore(0); err != nil {
		t.Fatalf("PeekMore: %v", err)
	}
	b.SetPos(3)
	b.SetCur(3)
	b.Advance()
	if b.Txt() != 3 || b.Cur() != 3 {
		t.Fatalf("Advance: txt=%d cur=%d, want 3,3", b.Txt(), b.Cur())
	}
	checkInvariants(t, b)
}

func TestShiftPreservesUnconsumedBytes(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), DefaultBlock) // fills the initial allocation exactly
	src := newSource(t, string(payload)+"tail")
	b := New(src)

	if _, err := b.PeekMore(DefaultBlock); err != nil {
		t.Fatalf("PeekMore: %v", err)
	}
	// Mark most of the buffer as already matched so the next refill shifts
	// instead of growing.
	b.SetPos(DefaultBlock - 4)
	b.SetCur(DefaultBlock - 4)
	b.Advance()
	unconsumed := append([]byte(nil), b.Bytes()[b.Txt():b.End()]...)

	if _, err := b.PeekMore(DefaultBlock); err != nil {
		t.Fatalf("PeekMore: %v", err)
	}
	checkInvariants(t, b)
	if b.Txt() != 0 {
		t.Fatalf("expected shift to rebase Txt to 0, got %d", b.Txt())
	}
	if !bytes.HasPrefix(b.Bytes(), unconsumed) {
		t.Fatalf("shift lost unconsumed bytes: got %q, want prefix %q", b.Bytes(), unconsumed)
	}
}

func checkInvariants(t *testing.T, b *Buffer) {
	t.Helper()
	if !(0 <= b.Txt() && b.Txt() <= b.Cur() && b.Cur() <= b.Pos() && b.Pos() <= b.End() && b.End() <= b.Max()) {
		t.Fatalf("invariant violated: txt=%d cur=%d pos=%d end=%d max=%d",
			b.Txt(), b.Cur(), b.Pos(), b.End(), b.Max())
	}
}

func TestGrowDoublesAllocationAndKeepsPositions(t *testing.T) {
	big := bytes.Repeat([]byte("a"), DefaultBlock*3)
	src := newSource(t, string(big))
	b := New(src)
	for {
		n, err := b.PeekMore(DefaultBlock)
		if err != nil {
			t.Fatalf("PeekMore: %v", err)
		}
		if n == 0 {
			break
		}
	}
	checkInvariants(t, b)
	if b.End() != len(big) {
		t.Fatalf("End() = %d, want %d", b.End(), len(big))
	}
	if b.Max() < len(big) {
		t.Fatalf("Max() = %d, want >= %d", b.Max(), len(big))
	}
}

func TestFlushResetsCursors(t *testing.T) {
	src := newSource(t, "line one\nline two\n")
	b := New(src)
	if _, err := b.PeekMore(0); err != nil {
		t.Fatalf("PeekMore: %v", err)
	}
	b.Flush()
	if b.Txt() != 0 || b.Cur() != 0 || b.Pos() != 0 || b.End() != 0 {
		t.Fatalf("Flush did not reset cursors: %d %d %d %d", b.Txt(), b.Cur(), b.Pos(), b.End())
	}
}
