package domain

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// User-facing constraint messages for question value objects.
const (
	NameConstraints       = "Names can take any values, and it should not be blank"
	ImportanceConstraints = "Importance should be an integer between 1 and 3"
	TagConstraints        = "Tag names should be alphanumeric"
)

// Importance bounds.
const (
	MinImportance = 1
	MaxImportance = 3
)

// Name is the non-blank display name of a question. It doubles as the
// business key: two questions with equal names are the same question.
type Name struct {
	value string
}

// NewName validates and constructs a Name. The first character must not be
// whitespace so that blank-looking names are rejected.
func NewName(value string) (Name, error) {
	if !isNonBlank(value) {
		return Name{}, validationErr("name", NameConstraints)
	}
	return Name{value: value}, nil
}

func (n Name) String() string { return n.value }

// Importance is a bounded ordinal rating attached to a question.
type Importance struct {
	value int
}

// NewImportance validates the bound and constructs an Importance.
func NewImportance(value int) (Importance, error) {
	if value < MinImportance || value > MaxImportance {
		return Importance{}, validationErr("importance", ImportanceConstraints)
	}
	return Importance{value: value}, nil
}

// ParseImportance builds an Importance from its textual form.
func ParseImportance(raw string) (Importance, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return Importance{}, validationErr("importance", ImportanceConstraints)
	}
	return NewImportance(value)
}

func (i Importance) Value() int { return i.value }

func (i Importance) String() string { return strconv.Itoa(i.value) }

// Tag is a short alphanumeric label attached to a question.
type Tag struct {
	name string
}

// NewTag validates and constructs a Tag.
func NewTag(name string) (Tag, error) {
	if name == "" {
		return Tag{}, validationErr("tag", TagConstraints)
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return Tag{}, validationErr("tag", TagConstraints)
		}
	}
	return Tag{name: name}, nil
}

func (t Tag) Name() string { return t.name }

func (t Tag) String() string { return "[" + t.name + "]" }

func isNonBlank(value string) bool {
	r, _ := utf8.DecodeRuneInString(value)
	return value != "" && !isSpace(r)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
