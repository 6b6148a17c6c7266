// Package rex narrows the coregex pattern compiler down to the handful of
// operations the streaming match loop actually drives: compile a pattern,
// search a byte window starting no earlier than a given offset, and read
// back capture-group indices. Everything else coregex exposes (Match,
// FindAll, Replace, ...) has no streaming caller here and is left alone.
package rex

import (
	"github.com/coregx/coregex"
	"github.com/coregx/coregex/meta"
)

// Config tunes pattern compilation. It is coregex's own meta.Config; rex
// re-exports it so callers never need to import the meta package directly.
type Config = meta.Config

// DefaultConfig returns coregex's default compilation tuning.
func DefaultConfig() Config {
	return coregex.DefaultConfig()
}

// Regex is a compiled pattern, narrowed to offset-anchored search and
// capture-group inspection.
type Regex struct {
	re *coregex.Regex
}

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*Regex, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{re: re}, nil
}

// CompileWithConfig compiles pattern with caller-tuned settings.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	re, err := coregex.CompileWithConfig(pattern, cfg)
	if err != nil {
		return nil, err
	}
	return &Regex{re: re}, nil
}

// FindIndicesAt searches haystack[at:] for the leftmost match and rebases
// the result to absolute offsets into haystack. It is the entry point
// streaming callers (see package engine) use to re-search a growable
// buffer window without re-slicing the input on every refill.
func (r *Regex) FindIndicesAt(haystack []byte, at int) (start, end int, found bool) {
	loc := r.re.FindIndex(haystack[at:])
	if loc == nil {
		return 0, 0, false
	}
	return at + loc[0], at + loc[1], true
}

// FindSubmatchIndex returns the index pairs for the leftmost match and its
// capture groups, or nil if b has no match. Result[2*i:2*i+2] is the
// indices for the ith group; unmatched groups report -1.
func (r *Regex) FindSubmatchIndex(b []byte) []int {
	return r.re.FindSubmatchIndex(b)
}

// NumSubexp returns the number of capture groups, including group 0 (the
// whole match).
func (r *Regex) NumSubexp() int {
	return r.re.NumSubexp()
}
