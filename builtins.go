package forthic

// registerBuiltins installs the language's reserved words as native
// callbacks on wt. Words that read an Integer or Boolean operand force
// the stack top with force before popping it; List operands and the
// dup/drop/swap operands are taken as they are. Every callback reports
// a *TypeError through the context's
// diagnostic sink rather than panicking when an operand has the wrong
// kind, aborting the word without pushing a result.
func registerBuiltins(wt *WordTable) {
	wt.registerNative("+", arith("+", func(n2, n1 int64) int64 { return n2 + n1 }))
	wt.registerNative("-", arith("-", func(n2, n1 int64) int64 { return n2 - n1 }))
	wt.registerNative("*", arith("*", func(n2, n1 int64) int64 { return n2 * n1 }))
	wt.registerNative("/", divmod("/", func(n2, n1 int64) int64 { return n2 / n1 }))
	wt.registerNative("%", divmod("%", func(n2, n1 int64) int64 { return n2 % n1 }))

	wt.registerNative(">", compare(">", func(n2, n1 int64) bool { return n2 > n1 }))
	wt.registerNative("<", compare("<", func(n2, n1 int64) bool { return n2 < n1 }))
	wt.registerNative("=", compare("=", func(n2, n1 int64) bool { return n2 == n1 }))

	wt.registerNative("dup", wordDup)
	wt.registerNative("drop", wordDrop)
	wt.registerNative("swap", wordSwap)

	wt.registerNative("if", wordIf)
	wt.registerNative("ifelse", wordIfelse)
	wt.registerNative("while", wordWhile)

	wt.registerNative(";", wordDefine)
}

// popInt forces the stack top, pops it, and reports a type error
// (returning ok=false) unless it is an Integer.
func popInt(ctx *Context, word string) (int64, bool) {
	force(ctx)
	v := ctx.Stack.pop()
	defer v.Release()
	if v.Kind() != Integer {
		ctx.logf("ERROR", "%v", &TypeError{Word: word, Msg: "expected Integer, got " + v.Kind().String()})
		return 0, false
	}
	return v.Int(), true
}

// popList pops the stack top and reports a type error unless it is
// already a List; branches and loop bodies are never forced, since
// forcing would execute them unconditionally.
func popList(ctx *Context, word string) (*Value, bool) {
	v := ctx.Stack.pop()
	if v.Kind() != List {
		ctx.logf("ERROR", "%v", &TypeError{Word: word, Msg: "expected List, got " + v.Kind().String()})
		v.Release()
		return nil, false
	}
	return v, true
}

func arith(word string, op func(n2, n1 int64) int64) NativeWord {
	return func(ctx *Context, w string) {
		n1, ok := popInt(ctx, word)
		if !ok {
			return
		}
		n2, ok := popInt(ctx, word)
		if !ok {
			return
		}
		ctx.push(NewInteger(op(n2, n1)))
	}
}

func divmod(word string, op func(n2, n1 int64) int64) NativeWord {
	return func(ctx *Context, w string) {
		n1, ok := popInt(ctx, word)
		if !ok {
			return
		}
		n2, ok := popInt(ctx, word)
		if !ok {
			return
		}
		if n1 == 0 {
			ctx.logf("ERROR", "%v", &TypeError{Word: word, Msg: "division by zero"})
			return
		}
		ctx.push(NewInteger(op(n2, n1)))
	}
}

func compare(word string, op func(n2, n1 int64) bool) NativeWord {
	return func(ctx *Context, w string) {
		n1, ok := popInt(ctx, word)
		if !ok {
			return
		}
		n2, ok := popInt(ctx, word)
		if !ok {
			return
		}
		ctx.push(NewBoolean(op(n2, n1)))
	}
}

func wordDup(ctx *Context, word string) {
	top := ctx.Stack.peek(0)
	ctx.push(top.Retain())
}

func wordDrop(ctx *Context, word string) {
	ctx.Stack.pop().Release()
}

func wordSwap(ctx *Context, word string) {
	a := ctx.Stack.pop() // top
	b := ctx.Stack.pop() // below
	ctx.push(a)
	ctx.push(b)
}

func wordIf(ctx *Context, word string) {
	ctx.traceStack(word)
	force(ctx)
	v := ctx.Stack.pop()
	isBool := v.Kind() == Boolean
	cond := isBool && v.Bool()
	v.Release()
	if !isBool {
		ctx.logf("ERROR", "%v", &TypeError{Word: word, Msg: "expected Boolean condition"})
		return
	}
	thenBranch, ok := popList(ctx, word)
	if !ok {
		return
	}
	if cond {
		execProgram(ctx, thenBranch)
	}
	thenBranch.Release()
}

func wordIfelse(ctx *Context, word string) {
	ctx.traceStack(word)
	force(ctx)
	v := ctx.Stack.pop()
	isBool := v.Kind() == Boolean
	cond := isBool && v.Bool()
	v.Release()
	if !isBool {
		ctx.logf("ERROR", "%v", &TypeError{Word: word, Msg: "expected Boolean condition"})
		return
	}
	thenBranch, ok := popList(ctx, word)
	if !ok {
		return
	}
	elseBranch, ok := popList(ctx, word)
	if !ok {
		thenBranch.Release()
		return
	}
	if cond {
		execProgram(ctx, thenBranch)
	} else {
		execProgram(ctx, elseBranch)
	}
	thenBranch.Release()
	elseBranch.Release()
}

func wordWhile(ctx *Context, word string) {
	condList, ok := popList(ctx, word)
	if !ok {
		return
	}
	bodyList, ok := popList(ctx, word)
	if !ok {
		condList.Release()
		return
	}
	for {
		ctx.traceStack(word)
		execProgram(ctx, condList)
		top := ctx.Stack.pop()
		isTrue := top.Kind() == Boolean && top.Bool()
		isBool := top.Kind() == Boolean
		top.Release()
		if !isBool {
			ctx.logf("ERROR", "%v", &TypeError{Word: word, Msg: "condition left a non-Boolean on top"})
			break
		}
		if !isTrue {
			break
		}
		execProgram(ctx, bodyList)
	}
	condList.Release()
	bodyList.Release()
}

// wordDefine implements `;`: pop body, pop name, register body as
// name's user-defined word. The surface pattern `name: [ ... ] ;` relies
// on `name:` pushing the bare symbol via the trailing-colon fallback and
// `[ ... ]` pushing the quoted body literally.
func wordDefine(ctx *Context, word string) {
	body, ok := popList(ctx, word)
	if !ok {
		return
	}
	name := ctx.Stack.pop()
	if name.Kind() != Symbol {
		ctx.logf("ERROR", "%v", &TypeError{Word: word, Msg: "expected Symbol name, got " + name.Kind().String()})
		name.Release()
		body.Release()
		return
	}
	ctx.Words.registerUser(string(name.Bytes()), body)
	name.Release()
}
