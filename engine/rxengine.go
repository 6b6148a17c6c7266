package engine

import "github.com/flexmatch/flexmatch/rex"

// rxEngine is the third-party-regex adapter: a thin wrapper surfacing
// capture groups via rex.Regex.FindSubmatchIndex. Because FindSubmatchIndex
// operates on a full []byte rather than an incremental cursor, every
// Attempt re-issues the search against the live buffer window: discard the
// iterator and reconstruct it after every refill that moves the buffer.
type rxEngine struct {
	re     *rex.Regex
	accept int
	groups []int // 2*n ints: start,end pairs, -1 for unmatched
}

// NewRxEngine compiles pattern with capture-group tracking.
func NewRxEngine(pattern string, accept int) (Engine, error) {
	re, err := rex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &rxEngine{re: re, accept: accept}, nil
}

func (e *rxEngine) Reset() { e.groups = nil }

func (e *rxEngine) Attempt(data []byte, at int, eof bool, anchored bool) Outcome {
	window := data[at:]
	idx := e.re.FindSubmatchIndex(window)
	if idx == nil {
		return Outcome{NeedMore: !eof}
	}
	start, end := at+idx[0], at+idx[1]
	if anchored && idx[0] != 0 {
		return Outcome{NeedMore: !eof}
	}
	if end == len(data) && !eof {
		return Outcome{NeedMore: true}
	}
	// Rebase every group offset to the absolute buffer position.
	groups := make([]int, len(idx))
	for i, v := range idx {
		if v < 0 {
			groups[i] = -1
			continue
		}
		groups[i] = v + at
	}
	e.groups = groups

	accept := e.accept
	if start == end {
		accept = Empty
	}
	return Outcome{Accept: accept, Start: start, End: end}
}

func (e *rxEngine) NumCaptures() int { return e.re.NumSubexp() }

func (e *rxEngine) Group(n int) (int, int, bool) {
	i := 2 * n
	if e.groups == nil || i+1 >= len(e.groups) || e.groups[i] < 0 {
		return 0, 0, false
	}
	return e.groups[i], e.groups[i+1], true
}

func (e *rxEngine) GroupID() int {
	if e.NumCaptures() <= 1 {
		return 0
	}
	return 1
}

func (e *rxEngine) GroupNextID(prev int) int {
	if prev <= 0 || prev >= e.NumCaptures()-1 {
		return 0
	}
	return prev + 1
}

func (e *rxEngine) Clone() Engine {
	return &rxEngine{re: e.re, accept: e.accept}
}
