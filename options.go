package forthic

import (
	"io"
	"os"

	"github.com/forthic-lang/forthic/internal/flushio"
)

// Option configures a Context at construction time: each option is a
// plain function applied in order by NewContext.
type Option func(*Context)

// WithOutput sets the Context's output stream, which Close flushes. The
// default is os.Stdout. No built-in word writes to it, and Render
// returns the final stack as a string rather than writing it here.
func WithOutput(w io.Writer) Option {
	return func(c *Context) { c.out = flushio.NewWriteFlusher(w) }
}

// WithTee adds an additional stream that receives a copy of everything
// written to the output stream, without replacing it. Trace lines go
// through the WithLogf sink, not the output stream, so they are not
// copied here.
func WithTee(w io.Writer) Option {
	return func(c *Context) {
		c.out = flushio.WriteFlushers(c.out, flushio.NewWriteFlusher(w))
	}
}

// WithLogf installs a leveled diagnostic sink, used to report
// recovered runtime errors (stack underflow, type and name errors)
// without aborting the host process. The default discards.
func WithLogf(logf func(level, format string, args ...interface{})) Option {
	return func(c *Context) { c.logf = logf }
}

// WithMaxStackDepth bounds the operand stack: a push that would exceed
// n raises a FatalError instead of growing without limit. Zero (the
// default) means unbounded.
func WithMaxStackDepth(n int) Option {
	return func(c *Context) { c.maxStackDepth = n }
}

// WithTrace turns on a diagnostic log line, written through the
// configured logf, showing the stack immediately before each
// conditional or loop-condition evaluation. Off by default; never
// affects control flow.
func WithTrace(enabled bool) Option {
	return func(c *Context) { c.trace = enabled }
}

func defaultOptions() []Option {
	return []Option{
		WithOutput(os.Stdout),
		WithLogf(func(string, string, ...interface{}) {}),
	}
}
