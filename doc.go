// Package forthic implements the core of a small stack-oriented
// concatenative language in the Forth family: a tokenizer/parser that
// turns source text into a tree of Values, a tagged Value type with
// reference-counted shared ownership, and an Evaluator that walks a
// parsed program as a stack machine, dispatching symbols through a
// WordTable that mixes built-in and user-defined words.
//
// A program is a whitespace-separated sequence of tokens. Tokens either
// push a literal value (integer, boolean, string, symbol, quoted code
// block) onto an operand Stack, or name a word to invoke. Words consume
// and produce stack values; user programs can define new words with the
// `name: [ ... ] ;` pattern, bind the top of the stack into named
// variables with a `(a b c)` var-set, and build conditionals and loops
// out of quoted code blocks and the `if`, `ifelse`, and `while` words.
//
// The command-line entry point lives under cmd/forthic; this package is
// the reusable core it drives.
package forthic
