package forthic

import "testing"

func TestValueRefcountLifecycle(t *testing.T) {
	v := NewInteger(42)
	if got := v.RefCount(); got != 1 {
		t.Fatalf("RefCount() = %d, want 1", got)
	}

	v.Retain()
	if got := v.RefCount(); got != 2 {
		t.Fatalf("RefCount() after Retain = %d, want 2", got)
	}

	v.Release()
	if got := v.RefCount(); got != 1 {
		t.Fatalf("RefCount() after Release = %d, want 1", got)
	}
}

func TestListReleaseReleasesChildren(t *testing.T) {
	child := NewInteger(7)
	list := NewList(child)

	list.Release()
	if got := child.RefCount(); got != 0 {
		t.Fatalf("child RefCount() after list release = %d, want 0", got)
	}
}

func TestReleaseBelowZeroPanics(t *testing.T) {
	v := NewInteger(1)
	v.Release()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic releasing an already-zero Value")
		}
	}()
	v.Release()
}

func TestNewSymbolRejectsEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing an empty Symbol")
		}
	}()
	NewSymbol(nil)
}

func TestNewVarSetRejectsNonSymbol(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing a VarSet with a non-Symbol child")
		}
	}()
	NewVarSet(NewInteger(1))
}

func TestEqual(t *testing.T) {
	a := NewList(NewInteger(1), NewSymbol([]byte("x")))
	b := NewList(NewInteger(1), NewSymbol([]byte("x")))
	c := NewList(NewInteger(2), NewSymbol([]byte("x")))

	if !Equal(a, b) {
		t.Error("Equal(a, b) = false, want true")
	}
	if Equal(a, c) {
		t.Error("Equal(a, c) = true, want false")
	}
}
