// Package jtoken is a zero-allocation JSON tokenizer and flat-array path
// query engine. It never copies string contents, never converts numbers
// during parsing, and never allocates memory for intermediate trees: every
// Token borrows its bytes from the caller-owned source buffer, and the
// caller supplies the backing array for the flattened token stream.
//
// The package is lenient rather than strict: it accepts '=' as a
// key/value separator in addition to ':', does not validate \uXXXX escape
// digits, and recognizes true/false/null by their first letter only.
package jtoken

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by Load. Callers should use errors.Is against
// these rather than comparing Status values directly when they want a Go
// error rather than a classifier.
var (
	ErrInvalidArgument = errors.New("jtoken: invalid argument")
	ErrOutOfTokens     = errors.New("jtoken: token array too small")
	ErrParse           = errors.New("jtoken: tokenizer error")
)

// Kind identifies the lexical category of a Token.
type Kind int

// Token kinds.
const (
	None Kind = iota
	Object
	Array
	Number
	String
	True
	False
	Null
	numKinds
)

var kindStrings = [numKinds]string{
	"<none>",
	"<object>",
	"<array>",
	"<number>",
	"<string>",
	"<true>",
	"<false>",
	"<null>",
}

// String returns a human-readable name for k, or "<unknown>" for an
// out-of-range value.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}

// Token is one lexical unit borrowed from the source document: a
// (pointer, length) slice of the original bytes plus structural
// metadata. Tokens are produced once by Load and never mutated
// afterward; they become invalid the instant the source buffer they
// borrow from is modified or freed.
//
// For a String token, Str is dequoted — it points inside the
// surrounding quotes and Len excludes them. For an Object or Array
// token, Str includes the opening brace/bracket and Len includes the
// closing one. A Number, True, False, or Null token spans exactly its
// bare lexeme with no surrounding whitespace.
type Token struct {
	Kind Kind
	Str  []byte
	Len  int

	// Children is the number of direct children: one per array element,
	// one per object pair. Meaningful only when Kind is Object or Array.
	Children int

	// Sub is the count of descendant tokens strictly nested within this
	// container. For a container at index i in a flat array, its subtree
	// occupies indices [i, i+Sub]. Zero for scalars.
	Sub int
}

// Bytes returns the borrowed byte range, respecting Len (which may be
// shorter than len(Str) for a dequoted string).
func (t Token) Bytes() []byte {
	if t.Len > len(t.Str) {
		return t.Str
	}
	return t.Str[:t.Len]
}

// String formats t for diagnostics. It is not a JSON serialization.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Bytes())
}

// Pair bundles a consecutive (name, value) pair of tokens as produced
// by Parse when walking the contents of an object.
type Pair struct {
	Name  Token
	Value Token
}

// Status classifies the outcome of Load. It is intentionally coarse: a
// Status carries no message, position or cause; the error Load returns
// alongside it is the only place a message appears.
type Status int

// Load outcomes.
const (
	Ok Status = iota
	Invalid
	OutOfToken
	ParseError
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case Invalid:
		return "invalid"
	case OutOfToken:
		return "out of tokens"
	case ParseError:
		return "parse error"
	default:
		return "<unknown status>"
	}
}
