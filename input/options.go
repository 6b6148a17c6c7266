package input

// Option configures a Source constructor.
type Option func(*options)

type options struct {
	nonChar       rune
	handler       FileHandler
	handle        any
	forceEncoding bool
}

func buildOptions(opts []Option) options {
	cfg := options{nonChar: NonCharacterDefault}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithReplacementChar substitutes U+FFFD instead of the default U+200000
// non-character sentinel for malformed input.
func WithReplacementChar() Option {
	return func(o *options) { o.nonChar = NonCharacterReplacement }
}

// WithFileHandler attaches a poll/retry handler for non-blocking sources.
func WithFileHandler(h FileHandler) Option {
	return func(o *options) { o.handler = h }
}

// WithForcedEncoding disables BOM sniffing and commits to the encoding
// passed to the constructor even if the leading bytes look like a BOM.
func WithForcedEncoding() Option {
	return func(o *options) { o.forceEncoding = true }
}

func withHandle(h any) Option {
	return func(o *options) { o.handle = h }
}
