package model

import (
	"strings"

	"smartnus/internal/domain"
)

// Predicate decides whether a question belongs to the filtered view.
type Predicate func(domain.Question) bool

// ShowAll admits every question. It is the default filter.
func ShowAll(domain.Question) bool { return true }

// NameContainsKeywords matches questions whose name contains any of the
// keywords as a whole word, case-insensitively.
func NameContainsKeywords(keywords []string) Predicate {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return func(q domain.Question) bool {
		words := strings.Fields(strings.ToLower(q.Name().String()))
		for _, kw := range lowered {
			for _, word := range words {
				if word == kw {
					return true
				}
			}
		}
		return false
	}
}

// HasTag matches questions carrying the given tag.
func HasTag(tag domain.Tag) Predicate {
	return func(q domain.Question) bool {
		for _, t := range q.Tags() {
			if t == tag {
				return true
			}
		}
		return false
	}
}
