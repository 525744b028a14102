package forthic

// NativeWord is a built-in word's implementation: given the executing
// Context and the symbol it was dispatched under, it reads whatever
// operands it needs off the stack and pushes its results.
type NativeWord func(ctx *Context, word string)

// wordEntry has exactly one of {native, body} bound at a time. The two
// fields are kept exclusive by registerNative and registerUser, each of
// which clears the other; the struct itself does not rule out an entry
// with neither or both set.
type wordEntry struct {
	name   string
	native NativeWord
	body   *Value // retained, non-nil only for user-defined words
}

// WordTable is the ordered (symbol -> handler) table backing word
// dispatch. It pairs an ordered slice with a name index so lookup stays
// O(1) while replace semantics (registerNative/registerUser replacing a
// prior binding in place) still preserve registration order.
type WordTable struct {
	entries []*wordEntry
	index   map[string]int
}

func newWordTable() *WordTable {
	return &WordTable{index: make(map[string]int)}
}

// lookup returns the entry registered for sym, or nil if none exists.
func (wt *WordTable) lookup(sym string) *wordEntry {
	if i, ok := wt.index[sym]; ok {
		return wt.entries[i]
	}
	return nil
}

// registerNative creates or replaces sym's entry with a native
// callback. If a user body was previously bound, it is released.
func (wt *WordTable) registerNative(sym string, fn NativeWord) {
	if e := wt.lookup(sym); e != nil {
		if e.body != nil {
			e.body.Release()
			e.body = nil
		}
		e.native = fn
		return
	}
	wt.append(&wordEntry{name: sym, native: fn})
}

// registerUser creates or replaces sym's entry with a user-defined
// body, which must be a List Value; the entry retains it. Any
// previously bound native callback is cleared.
func (wt *WordTable) registerUser(sym string, body *Value) {
	if body.Kind() != List {
		panic("forthic: registerUser body must be a List Value")
	}
	if e := wt.lookup(sym); e != nil {
		if e.body != nil {
			e.body.Release()
		}
		e.native = nil
		e.body = body
		return
	}
	wt.append(&wordEntry{name: sym, body: body})
}

func (wt *WordTable) append(e *wordEntry) {
	wt.index[e.name] = len(wt.entries)
	wt.entries = append(wt.entries, e)
}

// release tears the table down: every entry's bound body (if any) is
// released. Entry names are plain Go strings, not Values, so there is
// nothing to release for the name itself.
func (wt *WordTable) release() {
	for _, e := range wt.entries {
		if e.body != nil {
			e.body.Release()
		}
	}
}
