package rtnl

import "log"

// defaultReadBufferSize is the default Drain scratch size a Client's
// nlsock.Conn reads into per syscall, and the initial capacity of a
// Dialogue's internal byte queue.
const defaultReadBufferSize = 8192

// options holds the configurable knobs for a Dialogue/Client. The teacher
// binary is driven by command-line flags, since this package exposes no
// CLI surface the equivalent "config" layer is the functional-options
// pattern instead.
type options struct {
	readBufferSize int
	logger         *log.Logger
}

// Option configures a Dialogue or Client at construction time.
type Option func(*options)

// WithReadBufferSize overrides the scratch buffer size a Client's
// nlsock.Conn reads into per Drain syscall, and the initial capacity of
// the Dialogue's internal byte queue. n must be positive; NewDialogue
// called directly on an already-open nlsock.Conn only uses this for the
// queue capacity, since the Conn's own scratch size was fixed at Connect
// time.
func WithReadBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.readBufferSize = n
		}
	}
}

// WithLogger overrides the logger used for diagnostic output (connection
// setup, ERROR envelopes). A nil logger disables diagnostic output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	o := options{readBufferSize: defaultReadBufferSize}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
