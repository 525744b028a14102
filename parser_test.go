package forthic

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) *Value {
	t.Helper()
	v, err := Parse("test", []byte(src))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return v
}

func TestParseTokenKinds(t *testing.T) {
	prog := mustParse(t, `42 -7 "hi" foo [ 1 2 ] (a b)`)
	items := prog.Items()
	if len(items) != 6 {
		t.Fatalf("got %d items, want 6", len(items))
	}

	wantKinds := []Kind{Integer, Integer, String, Symbol, List, VarSet}
	for i, k := range wantKinds {
		if items[i].Kind() != k {
			t.Errorf("items[%d].Kind() = %v, want %v", i, items[i].Kind(), k)
		}
	}
	if items[1].Int() != -7 {
		t.Errorf("items[1].Int() = %d, want -7", items[1].Int())
	}
	if string(items[2].Bytes()) != "hi" {
		t.Errorf("items[2].Bytes() = %q, want %q", items[2].Bytes(), "hi")
	}
}

func TestParseNestedList(t *testing.T) {
	prog := mustParse(t, `[ [ 1 ] [ 2 3 ] ]`)
	outer := prog.Items()[0]
	if outer.Kind() != List || outer.Len() != 2 {
		t.Fatalf("outer = %v, want a 2-element List", Render(outer))
	}
}

func TestParseNumberDigitCap(t *testing.T) {
	overlong := strings.Repeat("9", maxNumberDigits+1)
	if _, err := Parse("test", []byte(overlong)); err == nil {
		t.Fatal("expected a syntax error for an overlong number")
	}

	exact := strings.Repeat("9", maxNumberDigits)
	if _, err := Parse("test", []byte(exact)); err != nil {
		t.Fatalf("unexpected error at exactly the digit cap: %v", err)
	}
}

func TestParseUnterminatedList(t *testing.T) {
	if _, err := Parse("test", []byte(`[ 1 2`)); err == nil {
		t.Fatal("expected a syntax error for an unterminated list")
	}
}

func TestParseUnterminatedString(t *testing.T) {
	if _, err := Parse("test", []byte(`"abc`)); err == nil {
		t.Fatal("expected a syntax error for an unterminated string")
	}
}

func TestParseVarSetRejectsNonAlnum(t *testing.T) {
	if _, err := Parse("test", []byte(`(a +)`)); err == nil {
		t.Fatal("expected a syntax error for a non-alphanumeric byte in a var-set")
	}
}

func TestParseVarSetUnterminatedAtEOF(t *testing.T) {
	if _, err := Parse("test", []byte(`(a b`)); err == nil {
		t.Fatal("expected a syntax error for an unterminated var-set")
	}
}

func TestParseSymbolStopsAtEndOfInput(t *testing.T) {
	// A bare trailing-colon symbol with nothing following it must not
	// read past the end of the source.
	prog := mustParse(t, `name:`)
	items := prog.Items()
	if len(items) != 1 || items[0].Kind() != Symbol {
		t.Fatalf("got %v, want a single Symbol token", Render(prog))
	}
}

// TestParseRoundTrip checks that rendering a parsed program and
// re-parsing it yields an equivalent tree. The top-level program has no
// surrounding brackets in source, so the rendered "[...]" form (the
// same delimiters used for any List) is stripped back to its inner text
// before re-parsing as a fresh top-level program.
func TestParseRoundTrip(t *testing.T) {
	sources := []string{
		`1 2 +`,
		`[ dup 0 > ] [ 1 - ] 3 swap while`,
		`sq: [ dup * ] ;  6 sq`,
		`10 (x) $x $x +`,
		`[ 1 2 3 ]`,
		`"a string with spaces" -123 sym:`,
	}
	for _, src := range sources {
		prog := mustParse(t, src)
		rendered := Render(prog)
		inner := strings.TrimSuffix(strings.TrimPrefix(rendered, "["), "]")
		reparsed := mustParse(t, inner)
		if !Equal(prog, reparsed) {
			t.Errorf("round-trip mismatch for %q: rendered %q reparsed as %q", src, rendered, Render(reparsed))
		}
	}
}
