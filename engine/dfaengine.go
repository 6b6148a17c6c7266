package engine

import "github.com/flexmatch/flexmatch/rex"

// DFAConfig tunes the prefilter heuristics package rex selects internally.
// The Boyer-Moore-vs-4-gram fitness score rex uses to pick a prefilter
// strategy stays an undocumented internal constant; MinLiteralLen and
// MaxDFAStates are the knobs exposed here, threaded straight through to
// rex's own meta.Config.
type DFAConfig struct {
	MinLiteralLen int
	MaxDFAStates  uint32
}

// DefaultDFAConfig mirrors rex's own defaults.
func DefaultDFAConfig() DFAConfig {
	return DFAConfig{MinLiteralLen: 2, MaxDFAStates: 10000}
}

// dfaEngine drives a compiled pattern with no capture-group tracking.
// Prefiltering (Boyer-Moore-style literal extraction, Teddy SIMD
// multi-pattern, digit prefilter) all live inside rex.Regex already,
// selected automatically per pattern; this type only adapts rex's
// whole-buffer Find API to the streaming Attempt contract.
type dfaEngine struct {
	pattern string
	re      *rex.Regex
	accept  int
	last    Outcome
}

// NewDFAEngine compiles pattern and returns a capture-free engine. accept
// is the rule index this engine reports on every successful match (a
// matcher driving a single pattern has exactly one rule).
func NewDFAEngine(pattern string, accept int, cfg DFAConfig) (Engine, error) {
	rcfg := rex.DefaultConfig()
	rcfg.MinLiteralLen = cfg.MinLiteralLen
	rcfg.MaxDFAStates = cfg.MaxDFAStates
	re, err := rex.CompileWithConfig(pattern, rcfg)
	if err != nil {
		return nil, err
	}
	return &dfaEngine{pattern: pattern, re: re, accept: accept}, nil
}

func (e *dfaEngine) Reset() { e.last = Outcome{} }

func (e *dfaEngine) Attempt(data []byte, at int, eof bool, anchored bool) Outcome {
	start, end, found := e.re.FindIndicesAt(data, at)
	if !found {
		return Outcome{NeedMore: !eof}
	}
	if anchored && start != at {
		// No match begins exactly at at with the data seen so far; more
		// input could still reveal one (e.g. the pattern need not have
		// been fully represented yet), so defer to EOF before giving up.
		return Outcome{NeedMore: !eof}
	}
	if end == len(data) && !eof {
		// The match touches the edge of the available window: a greedy
		// construct (a+, a*, {n,}) could extend it further. Ask for more
		// before committing.
		return Outcome{NeedMore: true}
	}
	accept := e.accept
	if start == end {
		accept = Empty
	}
	out := Outcome{Accept: accept, Start: start, End: end}
	e.last = out
	return out
}

func (e *dfaEngine) NumCaptures() int { return 1 }

func (e *dfaEngine) Group(n int) (int, int, bool) {
	if n != 0 || e.last.Accept == 0 {
		return 0, 0, false
	}
	return e.last.Start, e.last.End, true
}

func (e *dfaEngine) GroupID() int { return 0 }

func (e *dfaEngine) GroupNextID(prev int) int { return 0 }

func (e *dfaEngine) Clone() Engine {
	return &dfaEngine{pattern: e.pattern, re: e.re, accept: e.accept}
}
