// Package input implements the uniform pull interface a matcher reads from,
// with on-the-fly transcoding of ~38 source encodings into canonical UTF-8,
// BOM detection, and a FileHandler hook for non-blocking sources.
package input

import (
	"io"
	"os"
)

// Source is the contract every origin (string, byte slice, file, stream)
// implements. Get writes up to len(dst) octets of canonical UTF-8 and
// returns how many it wrote; a 0-byte, nil-error return means EOF or error,
// distinguished by EOF/Good. Size returns an exact remaining-byte count
// when determinable, else 0.
type Source interface {
	Get(dst []byte) (int, error)
	Size() int
	Good() bool
	EOF() bool
}

// FileHandler may be attached to a stream-backed Source to implement
// poll/retry semantics for non-blocking I/O. It is invoked whenever Get
// would otherwise return 0 bytes with no EOF and no error.
type FileHandler interface {
	// Stall is called with the underlying handle; it returns Retry to have
	// Get immediately re-attempt the read, or GiveUp to translate the
	// stall into EOF.
	Stall(handle any) Action
}

// Action is the disposition a FileHandler returns from Stall.
type Action int

const (
	Retry Action = iota
	GiveUp
)

// StringSource reads from an in-memory Go string, already UTF-8. Size is
// exact since the whole string is resident.
type StringSource struct {
	s   string
	pos int
}

// NewStringSource wraps s for reading. s is assumed to be valid UTF-8.
func NewStringSource(s string) *StringSource { return &StringSource{s: s} }

func (s *StringSource) Get(dst []byte) (int, error) {
	n := copy(dst, s.s[s.pos:])
	s.pos += n
	return n, nil
}

func (s *StringSource) Size() int { return len(s.s) - s.pos }
func (s *StringSource) Good() bool { return true }
func (s *StringSource) EOF() bool  { return s.pos >= len(s.s) }

// BytesSource reads from an in-memory byte slice under a given encoding,
// transcoding to UTF-8 as it is read.
type BytesSource struct {
	b   []byte
	pos int
	dec *decoder
	eof bool
}

// NewBytesSource wraps b, decoding it from enc. table is only consulted
// when enc == Custom.
func NewBytesSource(b []byte, enc Encoding, table CodePointTable, opts ...Option) *BytesSource {
	cfg := buildOptions(opts)
	enc, skip := applyBOM(b, enc, cfg.forceEncoding)
	return &BytesSource{
		b:   b[skip:],
		dec: newDecoder(enc, table, cfg.nonChar),
	}
}

func (s *BytesSource) Get(dst []byte) (int, error) {
	if s.pos >= len(s.b) {
		s.eof = true
		return 0, nil
	}
	// Decode in blocks so multi-byte sequences at the tail of a chunk have
	// a chance to complete, mirroring the streaming sources below.
	chunk := len(s.b) - s.pos
	if chunk > len(dst) {
		chunk = len(dst)
	}
	out := s.dec.decode(dst[:0], s.b[s.pos:s.pos+chunk])
	s.pos += chunk
	if len(out) > len(dst) {
		out = out[:len(dst)]
	}
	n := copy(dst, out)
	if s.pos >= len(s.b) {
		s.eof = true
	}
	return n, nil
}

func (s *BytesSource) Size() int {
	if s.dec.enc == UTF8 || s.dec.enc == Plain {
		return len(s.b) - s.pos
	}
	return 0
}
func (s *BytesSource) Good() bool { return true }
func (s *BytesSource) EOF() bool  { return s.eof }

// ReaderSource reads from an arbitrary io.Reader (including a *os.File),
// transcoding from enc to UTF-8. An optional FileHandler is consulted on
// stalls (0-byte, no-error reads) to support non-blocking sources.
type ReaderSource struct {
	r       io.Reader
	dec     *decoder
	handler FileHandler
	handle  any

	raw     [4096]byte
	eof     bool
	good    bool
	sniffed bool
}

// NewReaderSource wraps r. If enc is Plain or UTF8 and WithForcedEncoding
// is not given, the BOM is sniffed on first read.
func NewReaderSource(r io.Reader, enc Encoding, table CodePointTable, opts ...Option) *ReaderSource {
	cfg := buildOptions(opts)
	return &ReaderSource{
		r:       r,
		dec:     newDecoder(enc, table, cfg.nonChar),
		handler: cfg.handler,
		handle:  cfg.handle,
		good:    true,
		sniffed: cfg.forceEncoding,
	}
}

// NewFileSource is a convenience constructor for *os.File sources: it
// exposes the file itself as the FileHandler's handle.
func NewFileSource(f *os.File, enc Encoding, table CodePointTable, opts ...Option) *ReaderSource {
	opts = append(opts, withHandle(f))
	return NewReaderSource(f, enc, table, opts...)
}

func (s *ReaderSource) Get(dst []byte) (int, error) {
	if !s.sniffed {
		s.sniffBOMOnce()
	}
	for {
		n, err := s.r.Read(s.raw[:])
		if n > 0 {
			out := s.dec.decode(dst[:0], s.raw[:n])
			if len(out) > len(dst) {
				out = out[:len(dst)]
			}
			return copy(dst, out), nil
		}
		if err == io.EOF {
			s.eof = true
			if len(s.dec.pending) > 0 {
				// Bytes peeked by sniffBOMOnce (or held back by the
				// decoder) still have to be delivered.
				out := s.dec.decode(dst[:0], nil)
				if len(out) > len(dst) {
					out = out[:len(dst)]
				}
				return copy(dst, out), nil
			}
			return 0, nil
		}
		if err != nil {
			s.good = false
			return 0, err
		}
		// n == 0, err == nil: a stall. Ask the handler, if any, whether to
		// retry or give up; with no handler, treat it like EOF once.
		if s.handler == nil {
			s.eof = true
			return 0, nil
		}
		if s.handler.Stall(s.handle) == GiveUp {
			s.eof = true
			return 0, nil
		}
	}
}

// sniffBOMOnce reads up to 4 bytes looking for a BOM. Bytes that do not
// form one are fed straight to the decoder as ordinary input.
func (s *ReaderSource) sniffBOMOnce() {
	s.sniffed = true
	if s.dec.enc != Plain && s.dec.enc != UTF8 {
		return // caller already pinned the encoding explicitly
	}
	var peek [4]byte
	n, _ := io.ReadFull(s.r, peek[:])
	enc, skip, matched := sniffBOM(peek[:n])
	if matched {
		s.dec.enc = enc
		s.dec.pending = append(s.dec.pending, peek[skip:n]...)
		return
	}
	s.dec.pending = append(s.dec.pending, peek[:n]...)
}

func (s *ReaderSource) Size() int { return 0 }
func (s *ReaderSource) Good() bool { return s.good }
func (s *ReaderSource) EOF() bool  { return s.eof }

func applyBOM(b []byte, enc Encoding, forced bool) (Encoding, int) {
	if forced {
		return enc, 0
	}
	if got, skip, matched := sniffBOM(b); matched {
		return got, skip
	}
	return enc, 0
}
