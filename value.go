package forthic

import "fmt"

// Kind tags the variant held by a Value.
type Kind uint8

// The six Value kinds of the language.
const (
	Integer Kind = iota
	Boolean
	String
	Symbol
	List
	VarSet
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Boolean:
		return "Boolean"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	case List:
		return "List"
	case VarSet:
		return "VarSet"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a tagged, heap-allocated, reference-counted value. The
// language represents integers, booleans, strings, symbols, quoted code
// (List), and variable-binding sets (VarSet) as the same Value type, so
// that code and data share one algebraic representation.
//
// Values are shared by handle: Retain records a new holder, Release
// records a holder giving theirs up. Because quoted code is immutable
// once parsed and every share of it is a share of the very same Value,
// the language cannot construct reference cycles, so strong-only
// counting is sufficient (see DESIGN.md).
type Value struct {
	kind     Kind
	refcount int

	num   int64   // Integer, Boolean (0/1)
	bytes []byte  // String, Symbol
	items []*Value // List, VarSet
}

// NewInteger returns a freshly retained Integer Value.
func NewInteger(n int64) *Value { return &Value{kind: Integer, num: n, refcount: 1} }

// NewBoolean returns a freshly retained Boolean Value.
func NewBoolean(b bool) *Value {
	var n int64
	if b {
		n = 1
	}
	return &Value{kind: Boolean, num: n, refcount: 1}
}

// NewString returns a freshly retained String Value. The byte slice is
// retained by reference, not copied; callers must not mutate it after
// passing it in.
func NewString(b []byte) *Value { return &Value{kind: String, bytes: b, refcount: 1} }

// NewSymbol returns a freshly retained Symbol Value. A Symbol's byte
// sequence must be non-empty; NewSymbol panics otherwise, since the
// parser never produces an empty symbol token.
func NewSymbol(b []byte) *Value {
	if len(b) == 0 {
		panic("forthic: empty symbol")
	}
	return &Value{kind: Symbol, bytes: b, refcount: 1}
}

// NewList returns a freshly retained List Value wrapping items in
// order. Ownership of each item handle is transferred to the List.
func NewList(items ...*Value) *Value {
	return &Value{kind: List, items: items, refcount: 1}
}

// NewVarSet returns a freshly retained VarSet Value. Every item must be
// a Symbol; NewVarSet panics otherwise, since a var-set binds names, not
// arbitrary values.
func NewVarSet(items ...*Value) *Value {
	for _, it := range items {
		if it.kind != Symbol {
			panic("forthic: non-symbol in var-set")
		}
	}
	return &Value{kind: VarSet, items: items, refcount: 1}
}

// Kind reports the Value's variant tag.
func (v *Value) Kind() Kind { return v.kind }

// Int returns the payload of an Integer Value. It panics if v is not an
// Integer; callers that accept mixed operand kinds should check Kind
// first.
func (v *Value) Int() int64 {
	if v.kind != Integer {
		panic("forthic: Int() on non-Integer Value")
	}
	return v.num
}

// Bool returns the payload of a Boolean Value. It panics if v is not a
// Boolean.
func (v *Value) Bool() bool {
	if v.kind != Boolean {
		panic("forthic: Bool() on non-Boolean Value")
	}
	return v.num != 0
}

// Bytes returns the payload of a String or Symbol Value. It panics for
// any other kind. The returned slice must not be mutated.
func (v *Value) Bytes() []byte {
	if v.kind != String && v.kind != Symbol {
		panic("forthic: Bytes() on non-String/Symbol Value")
	}
	return v.bytes
}

// Items returns the children of a List or VarSet Value. It panics for
// any other kind. The returned slice must not be mutated; use the List
// helpers below to grow or shrink it.
func (v *Value) Items() []*Value {
	if v.kind != List && v.kind != VarSet {
		panic("forthic: Items() on non-List/VarSet Value")
	}
	return v.items
}

// Len returns the number of children of a List or VarSet Value.
func (v *Value) Len() int { return len(v.Items()) }

// RefCount reports the current reference count, for tests that check
// retain/release bookkeeping stays balanced.
func (v *Value) RefCount() int { return v.refcount }

// Retain records a new holder of v and returns v, so that it chains
// naturally at a push/store call site: stack.push(val.Retain()).
func (v *Value) Retain() *Value {
	v.refcount++
	return v
}

// Release records a holder of v giving up its handle. If this was the
// last holder, children of a List or VarSet are released in turn. It
// panics if v's count is already zero: every Release must be paired
// with a prior Retain or constructor call.
func (v *Value) Release() {
	if v.refcount <= 0 {
		panic("forthic: Release() of Value with non-positive refcount")
	}
	v.refcount--
	if v.refcount == 0 && (v.kind == List || v.kind == VarSet) {
		for _, item := range v.items {
			item.Release()
		}
	}
}

// pushItem appends a retained item onto a List Value in place. Used by
// Stack.push to grow the operand stack.
func (v *Value) pushItem(item *Value) {
	if v.kind != List && v.kind != VarSet {
		panic("forthic: pushItem on non-List/VarSet Value")
	}
	v.items = append(v.items, item)
}

// Equal reports whether a and b parse to the same token tree,
// ignoring reference counts. Used by the parser round-trip property.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Integer, Boolean:
		return a.num == b.num
	case String, Symbol:
		return string(a.bytes) == string(b.bytes)
	case List, VarSet:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}
