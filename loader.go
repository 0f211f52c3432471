package jtoken

import "fmt"

// Num counts how many tokens would be produced by Load over src,
// including every nested descendant — the caller's canonical way to
// size a token array before allocating it. It never allocates and
// never mutates src.
func Num(src []byte) int {
	if len(src) == 0 {
		return 0
	}

	var tok Token
	it := Read(&tok, Begin(src))
	count := 0
	for !it.err && tok.Str != nil {
		count += 1 + tok.Sub
		it = Read(&tok, it)
	}
	return count
}

// Load flattens src into toks in pre-order: each container token is
// immediately followed by its own children, recursively. *read is both
// the starting write offset and, on return, the offset one past the
// last token written — callers resuming a partially filled array (as Load does
// itself, recursively) pass the same pointer back in.
//
// Load returns a non-nil error, wrapping one of ErrInvalidArgument,
// ErrOutOfTokens, or ErrParse, on anything but success; Status
// classifies the same outcome for callers that prefer to switch on it
// instead of using errors.Is.
func Load(toks []Token, max int, read *int, src []byte) (Status, error) {
	if toks == nil || src == nil || len(src) == 0 || max == 0 || read == nil {
		return Invalid, fmt.Errorf("%w: toks, src and read must be non-empty/non-nil and max must be positive", ErrInvalidArgument)
	}
	if *read >= max {
		return OutOfToken, fmt.Errorf("%w: read offset %d already at capacity %d", ErrOutOfTokens, *read, max)
	}

	var tok Token
	it := Read(&tok, Begin(src))
	if it.err && it.src != nil {
		return ParseError, fmt.Errorf("%w: malformed token at top level", ErrParse)
	}

	for tok.Str != nil {
		if *read >= max {
			return OutOfToken, fmt.Errorf("%w: exceeded capacity %d while loading", ErrOutOfTokens, max)
		}
		toks[*read] = tok
		*read++

		last := toks[*read-1]
		if last.Kind == Object || last.Kind == Array {
			if content := containerContents(last); len(content) > 0 {
				status, err := Load(toks, max, read, content)
				if status != Ok {
					return status, err
				}
			}
		}

		it = Read(&tok, it)
		if it.err && it.src != nil && len(it.src) > 0 {
			return ParseError, fmt.Errorf("%w: malformed token mid-document", ErrParse)
		}
	}
	return Ok, nil
}

// containerContents strips an Object or Array token's enclosing
// brace/bracket, leaving the raw bytes of its members for a fresh,
// independent tokenizer pass. Read and Begin are stateless, so the
// recursive Load call cannot reuse the container's own bracket-inclusive
// span — that would just classify the same container token again.
func containerContents(tok Token) []byte {
	b := tok.Bytes()
	if len(b) <= 2 {
		return nil
	}
	return b[1 : len(b)-1]
}
