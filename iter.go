package jtoken

// Iter is the tokenizer's cursor: an immutable value describing how much
// of the source buffer remains and which classification table governs
// the next byte. Read never mutates the Iter it is given; it returns a
// new one. The zero Iter reads nothing and is not a valid starting
// point — use Begin.
type Iter struct {
	src   []byte
	err   bool
	depth int
	table *[256]directive
}

// Begin starts a tokenizer pass over src. src must outlive every Token
// produced by subsequent Read calls against the returned Iter and its
// descendants, since every Token borrows directly from it.
func Begin(src []byte) Iter {
	return Iter{src: src}
}

// Done reports whether it has no more tokens to yield, either because
// the source is exhausted or because a prior Read failed.
func (it Iter) Done() bool {
	return len(it.src) == 0 || it.err
}

// classify reports the Kind of a scalar or container lexeme given its
// first byte, mirroring the original's first-letter-only keyword
// detection: any bare token starting with 't' is True, 'f' is False,
// 'n' is Null, and anything else bare is a Number. This is lenient by
// design — "truthy" or "nullish" is never checked past the first byte.
func classify(first byte) Kind {
	switch first {
	case '{':
		return Object
	case '[':
		return Array
	case '"':
		return String
	case 't':
		return True
	case 'f':
		return False
	case 'n':
		return Null
	default:
		return Number
	}
}

// Read extracts the next Token from prev, returning the Iter to pass to
// the following Read call. On end of input or a prior error, *tok is
// reset to the zero Token and the returned Iter reports Done.
//
// A container Token (Object or Array) spans its full bracketed range
// including nested content; its Children and Sub fields are filled in
// as the closing bracket is reached. A scalar Token spans exactly its
// bare lexeme or its dequoted string contents.
func Read(tok *Token, prev Iter) Iter {
	*tok = Token{}
	if prev.err || len(prev.src) == 0 {
		return Iter{err: true}
	}

	it := prev
	it.err = false
	if it.table == nil {
		it.table = &goStruct
	}

	src := it.src
	start := -1
	utf8Remain := 0

	i := 0
	for i < len(src) {
		c := src[i]
		tbl := it.table

		switch tbl[c] {
		case dFailed:
			it.err = true
			return it
		case dLoop:
			// consume and continue
		case dSep:
			if it.depth == 1 {
				tok.Children--
			}
		case dUp:
			if it.depth == 0 {
				start = i
			} else {
				if it.depth == 1 {
					tok.Children++
				}
				tok.Sub++
			}
			it.depth++
		case dDown:
			it.depth--
			if it.depth == 0 {
				length := i + 1 - start
				tok.Kind = classify(src[start])
				tok.Str = src[start : start+length]
				tok.Len = length
				it.src = src[i+1:]
				return it
			}
		case dQuoteUp:
			it.table = &goString
			if it.depth == 0 {
				start = i
			} else {
				if it.depth == 1 {
					tok.Children++
				}
				tok.Sub++
			}
		case dQuoteDown:
			it.table = &goStruct
			if it.depth == 0 {
				if start < 0 {
					i++
					continue
				}
				length := i + 1 - start
				tok.Kind = String
				tok.Str = src[start+1 : start+length-1]
				tok.Len = length - 2
				it.src = src[i+1:]
				return it
			}
		case dEsc:
			it.table = &goEsc
		case dUnesc:
			it.table = &goString
		case dBare:
			if it.depth == 0 {
				start = i
			} else {
				if it.depth == 1 {
					tok.Children++
				}
				tok.Sub++
			}
			it.table = &goBare
		case dUnbare:
			it.table = &goStruct
			if it.depth == 0 {
				length := i - start
				tok.Kind = classify(src[start])
				tok.Str = src[start:i]
				tok.Len = length
				it.src = src[i:]
				return it
			}
			i--
		case dUtf8_2:
			it.table = &goUTF8
			utf8Remain = 1
		case dUtf8_3:
			it.table = &goUTF8
			utf8Remain = 2
		case dUtf8_4:
			it.table = &goUTF8
			utf8Remain = 3
		case dUtf8Next:
			utf8Remain--
			if utf8Remain == 0 {
				it.table = &goString
			}
		}
		i++
	}

	if it.depth == 0 {
		it.src = nil
		if start >= 0 {
			length := len(src) - start
			tok.Kind = classify(src[start])
			tok.Str = src[start : start+length]
			tok.Len = length
			if tok.Kind == String && tok.Len >= 2 {
				tok.Str = tok.Str[1 : tok.Len-1]
				tok.Len -= 2
			}
		}
	}
	return it
}

// Parse reads one (name, value) Pair with two consecutive Read calls,
// for a caller walking an object's contents pair by pair. Load itself
// does not use Parse; it calls Read directly.
func Parse(p *Pair, prev Iter) Iter {
	next := Read(&p.Name, prev)
	if next.err {
		return next
	}
	return Read(&p.Value, next)
}
