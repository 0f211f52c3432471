package jtoken

import (
	"errors"
	"testing"
)

func TestNumCountsDescendants(t *testing.T) {
	for _, test := range []struct {
		name string
		src  string
		want int
	}{
		{"empty", "", 0},
		{"scalar", "42", 1},
		{"empty object", "{}", 1},
		{"flat object", `{"a":1,"b":"hi"}`, 5},
		{"flat array", `[10,20,30]`, 4},
		{"nested arrays", `[[1,2],[3,4]]`, 7},
		{"nested object", `{"p":{"x":1,"y":2}}`, 7},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := Num([]byte(test.src)); got != test.want {
				t.Errorf("Num(%q) = %d, want %d", test.src, got, test.want)
			}
		})
	}
}

func TestLoadFlattensPreOrder(t *testing.T) {
	src := []byte(`{"a":1,"b":"hi"}`)
	n := Num(src)
	toks := make([]Token, n)
	read := 0
	status, err := Load(toks, n, &read, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != Ok {
		t.Fatalf("expected Ok got %v", status)
	}
	if read != 5 {
		t.Fatalf("expected 5 tokens read, got %d", read)
	}

	root := toks[0]
	if root.Kind != Object || root.Children != 2 || root.Sub != 4 {
		t.Errorf("unexpected root token %+v", root)
	}
	if toks[1].Kind != String || string(toks[1].Bytes()) != "a" {
		t.Errorf("expected key %q got %+v", "a", toks[1])
	}
	if toks[2].Kind != Number || string(toks[2].Bytes()) != "1" {
		t.Errorf("expected value %q got %+v", "1", toks[2])
	}
	if toks[3].Kind != String || string(toks[3].Bytes()) != "b" {
		t.Errorf("expected key %q got %+v", "b", toks[3])
	}
	if toks[4].Kind != String || string(toks[4].Bytes()) != "hi" {
		t.Errorf("expected value %q got %+v", "hi", toks[4])
	}
}

func TestLoadNestedArrays(t *testing.T) {
	src := []byte(`[[1,2],[3,4]]`)
	n := Num(src)
	toks := make([]Token, n)
	read := 0
	if _, err := Load(toks, n, &read, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantKinds := []Kind{Array, Array, Number, Number, Array, Number, Number}
	if read != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d", len(wantKinds), read)
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token %d: expected %v got %v", i, want, toks[i].Kind)
		}
	}
	if toks[0].Children != 2 || toks[0].Sub != 6 {
		t.Errorf("outer array: expected children=2 sub=6 got %+v", toks[0])
	}
	if toks[1].Children != 2 || toks[1].Sub != 2 {
		t.Errorf("first inner array: expected children=2 sub=2 got %+v", toks[1])
	}
}

func TestLoadRejectsEmptyArgs(t *testing.T) {
	var read int
	_, err := Load(nil, 1, &read, []byte("1"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument got %v", err)
	}
}

func TestLoadOutOfTokens(t *testing.T) {
	src := []byte(`{"a":1,"b":"hi"}`)
	toks := make([]Token, 2)
	read := 0
	status, err := Load(toks, 2, &read, src)
	if status != OutOfToken {
		t.Errorf("expected OutOfToken got %v", status)
	}
	if !errors.Is(err, ErrOutOfTokens) {
		t.Errorf("expected ErrOutOfTokens got %v", err)
	}
}

func TestLoadParseError(t *testing.T) {
	toks := make([]Token, 4)
	read := 0
	status, err := Load(toks, 4, &read, []byte(`{"a":x}`))
	if status != ParseError {
		t.Errorf("expected ParseError got %v", status)
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse got %v", err)
	}
}

func TestContainerContentsStripsBrackets(t *testing.T) {
	tok := Token{Str: []byte(`{"a":1}`), Len: 7, Kind: Object}
	got := string(containerContents(tok))
	if got != `"a":1` {
		t.Errorf("expected %q got %q", `"a":1`, got)
	}
	if containerContents(Token{Str: []byte("{}"), Len: 2}) != nil {
		t.Errorf("expected nil contents for an empty container")
	}
}
