package linear

type options struct {
	logger      *Logger
	debugChecks bool
}

// Option configures a StaticList at construction.
type Option func(*options)

// WithLogger sets the logger used for debug events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithDebugChecks turns on invariant assertions.
//
// With debug checks the arena tracks free slots in a bitset and panics on a
// double release, and every mutating list operation validates both chains
// afterwards. This makes each mutation O(capacity); use it in tests and
// while debugging, not in production paths.
func WithDebugChecks(enabled bool) Option {
	return func(o *options) {
		o.debugChecks = enabled
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
