// Package query resolves dotted/bracketed path expressions
// ("map.entity[4].position") against a flat, pre-order token array
// produced by jtoken.Load. Path resolution never allocates: every walk
// is a handful of index arithmetic steps over the caller's own slice,
// using Token.Children and Token.Sub to skip whole subtrees without
// re-parsing them. Suggest, a diagnostic helper, does allocate.
package query

import (
	"strings"

	"github.com/mcvoid/jtoken"
)

// Delimiter separates path segments. It defaults to '.' and is a
// package variable rather than a function argument so an embedding
// program can repoint it once, at startup, the same way the original
// library exposed it as a compile-time #define.
var Delimiter byte = '.'

// Query resolves path against toks, the flat array produced by
// jtoken.Load, and returns a pointer into toks at the matching token,
// or nil on any miss: an absent key, an out-of-range array index, or a
// path segment that descends into a scalar. An empty path returns the
// root token, toks[0].
func Query(toks []jtoken.Token, path string) *jtoken.Token {
	if len(toks) == 0 {
		return nil
	}
	if path == "" {
		return &toks[0]
	}

	i := 0
	iter := &toks[0]
	begin := true

	seg, rest, hasRest := nextSegment(path)

	objSize := 0
	objIndex := 0

	for {
		if iter.Kind == jtoken.Object || iter.Kind == jtoken.Array || begin {
			objIndex = 0
			switch {
			case begin:
				begin = false
				objSize = len(toks)
			case iter.Kind == jtoken.Object:
				objSize = iter.Children
				if objSize == 0 || i+1 >= len(toks) {
					return nil
				}
				i++
				iter = &toks[i]
			default: // jtoken.Array
				idx, ok := parseArrayIndex(seg)
				if !ok {
					return nil
				}
				if i+1 >= len(toks) {
					return nil
				}
				if idx >= iter.Children {
					return nil
				}
				i++
				iter = &toks[i]
				for j := 0; j < idx; j++ {
					if iter.Kind == jtoken.Array || iter.Kind == jtoken.Object {
						i = i + iter.Sub + 1
					} else {
						i++
					}
					if i > len(toks) {
						return nil
					}
					iter = &toks[i]
				}
				if !hasRest {
					return iter
				}
				if iter.Kind != jtoken.Object && iter.Kind != jtoken.Array {
					return nil
				}
				seg, rest, hasRest = nextSegment(rest)
			}
			continue
		}

		if lcmp(*iter, seg) {
			if !hasRest {
				if i+1 > len(toks) {
					return nil
				}
				return &toks[i+1]
			}
			if i+1 > len(toks) {
				return nil
			}
			if toks[i+1].Kind != jtoken.Object && toks[i+1].Kind != jtoken.Array {
				return nil
			}
			i++
			iter = &toks[i]
			seg, rest, hasRest = nextSegment(rest)
			continue
		}

		objIndex++
		if objIndex >= objSize {
			return nil
		}
		if i+1 >= len(toks) {
			return nil
		}
		if toks[i+1].Kind == jtoken.Array || toks[i+1].Kind == jtoken.Object {
			i = i + toks[i+1].Sub + 2
		} else {
			i += 2
		}
		if i >= len(toks) {
			return nil
		}
		iter = &toks[i]
	}
}

// Number resolves path and converts the result to a float64. The
// returned Kind reports what was actually found: callers that get back
// anything other than jtoken.Number know no value was produced: the
// match is another Kind, the path missed (jtoken.None), or the number
// was malformed (also jtoken.None).
func Number(toks []jtoken.Token, path string) (float64, jtoken.Kind) {
	tok := Query(toks, path)
	if tok == nil {
		return 0, jtoken.None
	}
	if tok.Kind != jtoken.Number {
		return 0, tok.Kind
	}
	n, ok := jtoken.Convert(*tok)
	if !ok {
		return 0, jtoken.None
	}
	return n, jtoken.Number
}

// String resolves path and copies the matching string token's
// (already-dequoted) bytes into buf, returning the number of bytes
// written and the Kind actually found.
func String(buf []byte, toks []jtoken.Token, path string) (int, jtoken.Kind) {
	tok := Query(toks, path)
	if tok == nil {
		return 0, jtoken.None
	}
	if tok.Kind != jtoken.String {
		return 0, tok.Kind
	}
	return jtoken.Copy(buf, *tok), jtoken.String
}

// Type resolves path and reports only the Kind of what was found,
// jtoken.None on a miss.
func Type(toks []jtoken.Token, path string) jtoken.Kind {
	tok := Query(toks, path)
	if tok == nil {
		return jtoken.None
	}
	return tok.Kind
}

// Sub returns the sub-slice of toks rooted at tok: tok itself is not
// included, only its Sub descendants, so a caller can re-run Query
// against the result with a path relative to tok instead of the whole
// document. tok must be an element of toks (typically one returned by
// Query against the very same slice).
func Sub(tok jtoken.Token, toks []jtoken.Token) []jtoken.Token {
	for i := range toks {
		if sameToken(toks[i], tok) {
			end := i + 1 + toks[i].Sub
			if end > len(toks) {
				end = len(toks)
			}
			return toks[i+1 : end]
		}
	}
	return nil
}

func sameToken(a, b jtoken.Token) bool {
	return len(a.Str) == len(b.Str) && len(a.Str) > 0 && len(b.Str) > 0 && &a.Str[0] == &b.Str[0] && a.Len == b.Len
}

// lcmp compares a token's bytes against a path segment, matching up to
// the shorter of the two — the same prefix-tolerant comparison
// jtoken.Cmp performs, specialized to a string segment.
func lcmp(tok jtoken.Token, seg string) bool {
	if seg == "" {
		return false
	}
	return jtoken.Cmp(tok, seg)
}

// nextSegment splits path into its next name or bracketed-index
// segment and the remainder. A bracket at the very start of path takes
// priority (an array index segment); otherwise a bracket that appears
// before the next delimiter attaches to the preceding name so
// "xs[1]" first yields "xs" with rest "[1]", letting the following
// call yield "[1]" on its own. hasRest reports whether rest still has
// a segment to parse.
func nextSegment(path string) (seg string, rest string, hasRest bool) {
	if path == "" {
		return "", "", false
	}

	del := strings.IndexByte(path, Delimiter)
	begin := strings.IndexByte(path, '[')
	end := strings.IndexByte(path, ']')

	if begin == 0 && end > begin {
		seg = path[:end+1]
		if end+1 >= len(path) {
			return seg, "", false
		}
		if path[end+1] == Delimiter {
			return seg, path[end+2:], true
		}
		return seg, path[end+1:], true
	}

	if begin >= 0 && (del < 0 || begin < del) {
		return path[:begin], path[begin:], true
	}

	if del < 0 {
		return path, "", false
	}
	seg = path[:del]
	if del+1 >= len(path) {
		return seg, "", false
	}
	return seg, path[del+1:], true
}

// parseArrayIndex extracts the integer inside a "[n]" segment, reusing
// jtoken.Convert on the digits between the brackets.
func parseArrayIndex(seg string) (int, bool) {
	lb := strings.IndexByte(seg, '[')
	rb := strings.IndexByte(seg, ']')
	if lb < 0 || rb < 0 || rb <= lb+1 {
		return 0, false
	}
	inner := seg[lb+1 : rb]
	tok := jtoken.Token{Str: []byte(inner), Len: len(inner)}
	n, ok := jtoken.Convert(tok)
	if !ok || n < 0 {
		return 0, false
	}
	return int(n), true
}
