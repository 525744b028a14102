package forthic

import (
	"errors"
	"fmt"

	"github.com/forthic-lang/forthic/internal/flushio"
	"github.com/forthic-lang/forthic/internal/panicerr"
)

// Context is one execution environment: an operand stack, a word
// table, a variable table, and the output/diagnostic sinks they write
// through. A Context is not safe for concurrent Exec calls; running
// independent programs concurrently means constructing one Context per
// goroutine (see cmd/forthic-goldengen).
type Context struct {
	Stack *Stack
	Words *WordTable
	Vars  *VarTable

	out           flushio.WriteFlusher
	logf          func(level, format string, args ...interface{})
	maxStackDepth int
	trace         bool
}

// push onto the operand stack, enforcing maxStackDepth: a push past the
// limit raises a *FatalError rather than letting runaway recursion grow
// the stack without bound.
func (c *Context) push(v *Value) {
	if c.maxStackDepth > 0 && c.Stack.Depth() >= c.maxStackDepth {
		v.Release()
		panic(&FatalError{Err: fmt.Errorf("operand stack exceeded max depth %d", c.maxStackDepth)})
	}
	c.Stack.push(v)
}

// traceStack logs the current stack contents under the TRACE level if
// tracing is enabled, tagged with the word about to consume it.
func (c *Context) traceStack(word string) {
	if !c.trace {
		return
	}
	c.logf("TRACE", "%s: stack=%s", word, Render(c.Stack.Snapshot()))
}

// NewContext builds a Context with the standard word table pre-loaded
// and opts applied over the defaults (stdout output, a discarding
// diagnostic sink, no stack-depth limit).
func NewContext(opts ...Option) *Context {
	c := &Context{
		Stack: newStack(),
		Words: newWordTable(),
		Vars:  newVarTable(),
	}
	for _, opt := range defaultOptions() {
		opt(c)
	}
	for _, opt := range opts {
		opt(c)
	}
	registerBuiltins(c.Words)
	return c
}

// Exec runs prog (typically the List Value returned by Parse) as a
// program to completion. A type error or a name error aborts only the
// offending word: it is reported via the diagnostic sink, the rest of
// the program keeps running, and Exec returns nil for it. A stack
// underflow stops the run; it is reported via the diagnostic sink and
// returned as a non-fatal error. Exceeding WithMaxStackDepth, or any
// other panic (a programmer error in a native word, for instance), is
// returned as a *FatalError.
func (c *Context) Exec(prog *Value) error {
	err := panicerr.Recover("forthic.exec", func() error {
		return execProgram(c, prog)
	})
	if err == nil {
		return nil
	}

	var su stackUnderflow
	if errors.As(err, &su) {
		c.logf("ERROR", "%v", su)
		return su
	}
	var typeErr *TypeError
	if errors.As(err, &typeErr) {
		c.logf("ERROR", "%v", typeErr)
		return typeErr
	}
	var nameErr *NameError
	if errors.As(err, &nameErr) {
		c.logf("ERROR", "%v", nameErr)
		return nameErr
	}
	var fatal *FatalError
	if errors.As(err, &fatal) {
		return fatal
	}
	if panicerr.IsPanic(err) {
		return &FatalError{Err: err}
	}
	return err
}

// Render formats the current stack contents the way the CLI prints the
// final stack.
func (c *Context) Render() string { return Render(c.Stack.Snapshot()) }

// Close tears the Context down, releasing every Value still owned by
// the stack, word table, and variable table. A Context must not be
// used after Close.
func (c *Context) Close() {
	c.Stack.release()
	c.Words.release()
	c.Vars.release()
	if c.out != nil {
		c.out.Flush()
	}
}
