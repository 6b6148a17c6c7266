package matcher

import "strconv"

// Options holds the flags accepted by Reset's option string: "(A|N|X|I|T(=digit)?|;)*".
// Unknown characters are ignored for forward compatibility.
type Options struct {
	// IncludeNewline (A) keeps the terminating "\n" in FIND matches for
	// line-oriented patterns.
	IncludeNewline bool
	// EmptyOK (N) permits zero-width matches.
	EmptyOK bool
	// EmptyOnly (X) — accepted by the line engine only: match only empty lines.
	EmptyOnly bool
	// TabWidth (T=k) sets the tab stop width for column counting. Default 8.
	TabWidth int
	// IndentMode (I) drives the tab-stop stack from every accepted match's
	// column, for grammars whose FSM never fires an explicit \i/\j escape
	// but still want indentation tracked automatically.
	IndentMode bool
}

// DefaultOptions returns the option set Reset("") implies.
func DefaultOptions() Options {
	return Options{TabWidth: 8}
}

// ParseOptions parses an option string of the form "(A|N|X|I|T=<digit>+|;)*".
// Malformed or unrecognized characters are silently ignored.
func ParseOptions(s string) Options {
	o := DefaultOptions()
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			o.IncludeNewline = true
		case 'N':
			o.EmptyOK = true
		case 'X':
			o.EmptyOnly = true
		case 'I':
			o.IndentMode = true
		case ';':
			// trailing separator, no effect
		case 'T':
			if i+1 < len(s) && s[i+1] == '=' {
				j := i + 2
				for j < len(s) && s[j] >= '0' && s[j] <= '9' {
					j++
				}
				if j > i+2 {
					if n, err := strconv.Atoi(s[i+2 : j]); err == nil && n > 0 {
						o.TabWidth = n
					}
					i = j - 1
				}
			}
		default:
			// ignore unknown option characters
		}
	}
	return o
}
