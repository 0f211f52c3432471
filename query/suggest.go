package query

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mcvoid/jtoken"
)

// Suggest is a diagnostic helper for a Query miss: it fuzzy-matches
// want against the keys of every object sibling group in toks and
// returns up to 3 ranked candidates, most likely first. It never
// affects Query itself, which still returns nil on a miss — Suggest
// is meant to be called by a CLI or log line after that nil comes
// back, to turn "no such key" into "did you mean color?".
func Suggest(want string, toks []jtoken.Token) []string {
	if want == "" || len(toks) == 0 {
		return nil
	}

	keys := objectKeys(toks)
	if len(keys) == 0 {
		return nil
	}

	ranked := fuzzy.RankFindFold(want, keys)
	sort.Sort(ranked)

	const maxSuggestions = 3
	out := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool, maxSuggestions)
	for _, r := range ranked {
		if seen[r.Target] {
			continue
		}
		seen[r.Target] = true
		out = append(out, r.Target)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// objectKeys collects every String token that occupies a key position
// inside some Object in toks: the token immediately following an
// Object token, and every other token after it at the same depth whose
// own predecessor was a complete value.
func objectKeys(toks []jtoken.Token) []string {
	var keys []string
	for i, tok := range toks {
		if tok.Kind != jtoken.Object {
			continue
		}
		child := i + 1
		for remaining := tok.Children; remaining > 0 && child < len(toks); remaining-- {
			key := toks[child]
			if key.Kind == jtoken.String {
				keys = append(keys, string(key.Bytes()))
			}
			child++
			if child >= len(toks) {
				break
			}
			value := toks[child]
			if value.Kind == jtoken.Object || value.Kind == jtoken.Array {
				child += value.Sub + 1
			} else {
				child++
			}
		}
	}
	return keys
}
