package jtoken_test

import (
	"fmt"
	"testing"

	"github.com/mcvoid/jtoken"
	"github.com/mcvoid/jtoken/query"
)

func TestUsage(t *testing.T) {
	src := []byte(`{
		"name": "The Beatles",
		"members": [
			{"name": "John", "role": "guitar"},
			{"name": "Paul", "role": "bass"},
			{"name": "George", "role": "guitar"},
			{"name": "Ringo", "role": "drums"}
		]
	}`)

	// Num does a dry run over src to report exactly how many tokens Load
	// will need - no tree, no intermediate allocation, just a count.
	n := jtoken.Num(src)
	if n == 0 {
		t.Fatal("can't parse json... somehow")
	}

	// Allocate once, then flatten src into it in document pre-order.
	toks := make([]jtoken.Token, n)
	read := 0
	if status, err := jtoken.Load(toks, n, &read, src); err != nil {
		t.Fatalf("unexpected error: %v (%s)", err, status)
	}
	toks = toks[:read]

	// Resolve a dotted/bracketed path directly against the flat array.
	name := query.Query(toks, "members[2].name")
	if name == nil || string(name.Bytes()) != "George" {
		t.Errorf("expected %q got %v", "George", name)
	}

	// Type helpers avoid a second lookup when the caller already knows
	// the shape it wants to read off.
	if kind := query.Type(toks, "name"); kind != jtoken.String {
		t.Errorf("expected String got %v", kind)
	}

	// A miss returns nil rather than a zero value, so the caller can
	// tell "absent" from "present but empty".
	if tok := query.Query(toks, "members[9].name"); tok != nil {
		t.Errorf("expected no match for an out-of-range index, got %v", tok)
	}

	// Sub carves out the descendants of a match so a caller can re-run
	// Query scoped to just that subtree.
	drummer := query.Query(toks, "members[3]")
	if drummer == nil {
		t.Fatal("expected a match for members[3]")
	}
	scoped := query.Sub(*drummer, toks)
	if role := query.Query(scoped, "role"); role == nil || string(role.Bytes()) != "drums" {
		t.Errorf("expected %q got %v", "drums", role)
	}

	fmt.Println(string(name.Bytes())) // "George"
}
