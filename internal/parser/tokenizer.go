package parser

import (
	"sort"
	"strings"
)

// Argument prefixes, mirroring the textual command syntax:
// n/ name, i/ importance, t/ tag, ans/ answer, opt/ wrong option.
const (
	prefixName       = "n/"
	prefixImportance = "i/"
	prefixTag        = "t/"
	prefixAnswer     = "ans/"
	prefixOption     = "opt/"
)

// arguments holds the preamble plus the values captured for each prefix, in
// the order they appeared.
type arguments struct {
	preamble string
	values   map[string][]string
}

func (a arguments) single(prefix string) (string, bool) {
	vals := a.values[prefix]
	if len(vals) == 0 {
		return "", false
	}
	// Later occurrences win, matching overwrite-on-repeat semantics.
	return vals[len(vals)-1], true
}

func (a arguments) all(prefix string) []string {
	return a.values[prefix]
}

// tokenize splits an argument string on prefix occurrences. A prefix only
// counts when it starts a whitespace-delimited token, so "ans/" inside a
// value is left alone.
func tokenize(args string, prefixes ...string) arguments {
	type hit struct {
		pos    int
		prefix string
	}
	var hits []hit
	for _, prefix := range prefixes {
		from := 0
		for {
			idx := strings.Index(args[from:], prefix)
			if idx < 0 {
				break
			}
			pos := from + idx
			if pos == 0 || args[pos-1] == ' ' {
				hits = append(hits, hit{pos: pos, prefix: prefix})
			}
			from = pos + len(prefix)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := arguments{values: make(map[string][]string)}
	if len(hits) == 0 {
		out.preamble = strings.TrimSpace(args)
		return out
	}
	out.preamble = strings.TrimSpace(args[:hits[0].pos])
	for i, h := range hits {
		end := len(args)
		if i+1 < len(hits) {
			end = hits[i+1].pos
		}
		value := strings.TrimSpace(args[h.pos+len(h.prefix) : end])
		out.values[h.prefix] = append(out.values[h.prefix], value)
	}
	return out
}
