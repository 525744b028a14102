package forthic

import (
	"fmt"
	"strconv"
)

// maxNumberDigits is the digit-count cap: a number exceeding this many
// digits fails to parse.
const maxNumberDigits = 128

// symbolChars are the non-alphabetic bytes a symbol may start with or
// continue into.
const symbolChars = "+-*/%><=:;$"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
func isSymbolChar(c byte) bool {
	return isAlpha(c) || indexByte(symbolChars, c) >= 0
}
func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// parser is a single-pass recursive-descent tokenizer over a byte
// string. It is restartable on each invocation and retains no state
// across calls to Parse.
type parser struct {
	name string
	src  []byte
	pos  int
}

// Parse turns src into a freshly allocated List Value whose elements
// are the parsed tokens, in source order. name is used only to qualify
// error locations. Parse fails with a *SyntaxError (no Value returned)
// when no rule matches at a non-whitespace position, a number exceeds
// the digit cap, or a bracket/paren/quote is unterminated.
func Parse(name string, src []byte) (*Value, error) {
	p := &parser{name: name, src: src}
	items, err := p.parseTokens(0, false)
	if err != nil {
		return nil, err
	}
	return NewList(items...), nil
}

func (p *parser) errf(format string, args ...interface{}) error {
	return &SyntaxError{
		Loc: Location{Name: p.name, Offset: p.pos},
		Msg: fmt.Sprintf(format, args...),
	}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// parseTokens parses tokens until either end of input (when
// hasTerminator is false) or the given terminator byte is consumed
// (when hasTerminator is true, used for the ']' of a quoted list).
func (p *parser) parseTokens(terminator byte, hasTerminator bool) ([]*Value, error) {
	var items []*Value
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			if hasTerminator {
				return nil, p.errf("unterminated list, missing '%c'", terminator)
			}
			return items, nil
		}
		c := p.src[p.pos]
		if hasTerminator && c == terminator {
			p.pos++
			return items, nil
		}
		v, err := p.parseToken()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

func (p *parser) parseToken() (*Value, error) {
	c := p.src[p.pos]
	switch {
	case isDigit(c) || (c == '-' && p.pos+1 < len(p.src) && isDigit(p.src[p.pos+1])):
		return p.parseNumber()
	case c == '"':
		return p.parseStringLiteral()
	case isSymbolChar(c):
		return p.parseSymbol(), nil
	case c == '[':
		return p.parseList()
	case c == '(':
		return p.parseVarSet()
	default:
		return nil, p.errf("unexpected byte %q", c)
	}
}

func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	if p.src[p.pos] == '-' {
		p.pos++
	}
	digitsStart := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if n := p.pos - digitsStart; n > maxNumberDigits {
		return nil, p.errf("number exceeds %d digit cap", maxNumberDigits)
	}
	n, err := strconv.ParseInt(string(p.src[start:p.pos]), 10, 64)
	if err != nil {
		// A literal within the digit cap that overflows int64 saturates:
		// ParseInt already returned math.MaxInt64 or math.MinInt64.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			p.pos = start
			return nil, p.errf("invalid number literal")
		}
	}
	return NewInteger(n), nil
}

func (p *parser) parseStringLiteral() (*Value, error) {
	p.pos++ // opening quote
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '"' {
		p.pos++
	}
	if p.pos >= len(p.src) {
		return nil, p.errf("unterminated string literal")
	}
	s := p.src[start:p.pos]
	p.pos++ // closing quote
	return NewString(s), nil
}

func (p *parser) parseSymbol() *Value {
	start := p.pos
	for p.pos < len(p.src) && isSymbolChar(p.src[p.pos]) {
		p.pos++
	}
	// The bare words true and false are Boolean literals.
	switch word := string(p.src[start:p.pos]); word {
	case "true", "false":
		return NewBoolean(word == "true")
	}
	return NewSymbol(p.src[start:p.pos])
}

func (p *parser) parseList() (*Value, error) {
	p.pos++ // '['
	items, err := p.parseTokens(']', true)
	if err != nil {
		return nil, err
	}
	return NewList(items...), nil
}

func (p *parser) parseVarSet() (*Value, error) {
	p.pos++ // '('
	var items []*Value
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errf("unterminated var-set, missing ')'")
		}
		if p.src[p.pos] == ')' {
			p.pos++
			return NewVarSet(items...), nil
		}
		if !isAlnum(p.src[p.pos]) {
			return nil, p.errf("non-alphanumeric byte %q in var-set", p.src[p.pos])
		}
		start := p.pos
		for p.pos < len(p.src) && isAlnum(p.src[p.pos]) {
			p.pos++
		}
		items = append(items, NewSymbol(p.src[start:p.pos]))
	}
}
