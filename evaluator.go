package forthic

import "strings"

// execProgram walks prog's elements in order, pushing literals, binding
// var-sets, and dispatching symbols. It never returns a non-nil error
// for type or name errors: those are reported through the Context's
// diagnostic sink and the offending element is skipped, so the rest of
// the program keeps running. A stack underflow still panics past this
// function, to be recovered by Context.Exec.
func execProgram(ctx *Context, prog *Value) error {
	if prog.Kind() != List {
		panic("forthic: exec of non-List Value")
	}
	for _, v := range prog.Items() {
		switch v.Kind() {
		case Symbol:
			if err := dispatchSymbol(ctx, string(v.Bytes())); err != nil {
				ctx.logf("ERROR", "%v", err)
			}
		case VarSet:
			bindVarSet(ctx, v)
		default:
			ctx.push(v.Retain())
		}
	}
	return nil
}

// dispatchSymbol tries, in order: a word-table entry, the
// trailing-colon literal rule, the leading-$ variable lookup, then gives
// up with a name error. It only reads a found entry's callback or body
// after confirming the entry exists, never dereferencing a nil one.
func dispatchSymbol(ctx *Context, sym string) error {
	if entry := ctx.Words.lookup(sym); entry != nil {
		if entry.native != nil {
			entry.native(ctx, sym)
			return nil
		}
		return execProgram(ctx, entry.body)
	}

	if len(sym) > 1 && strings.HasSuffix(sym, ":") {
		name := sym[:len(sym)-1]
		ctx.push(NewSymbol([]byte(name)))
		return nil
	}

	if len(sym) > 1 && strings.HasPrefix(sym, "$") {
		name := sym[1:]
		if e := ctx.Vars.lookup(name); e != nil {
			ctx.push(e.val.Retain())
			return nil
		}
		return &NameError{Symbol: sym}
	}

	return &NameError{Symbol: sym}
}

// bindVarSet pops one stack value per symbol in vs and binds it: the
// last-declared name claims the current top of stack, working back to
// the first-declared name claiming the deepest of the popped values.
// `(a b)` over a stack with 3 pushed then 4 binds b<-4, then a<-3.
func bindVarSet(ctx *Context, vs *Value) {
	items := vs.Items()
	for i := len(items) - 1; i >= 0; i-- {
		name := string(items[i].Bytes())
		val := ctx.Stack.pop()
		ctx.Vars.set(name, val)
		val.Release()
	}
}

// force repeatedly exec's the stack top while it is a List, so that a
// built-in can accept either a literal operand or a quoted block
// computing one. It leaves the stack untouched once the
// top is no longer a List, including when the stack is empty (the
// caller's own pop/peek then reports the underflow).
func force(ctx *Context) {
	for ctx.Stack.Depth() > 0 {
		if ctx.Stack.peek(0).Kind() != List {
			return
		}
		v := ctx.Stack.pop()
		execProgram(ctx, v)
		v.Release()
	}
}
