package domain

import "unicode/utf8"

// ChoiceConstraints is the user-facing rule for choice titles.
const ChoiceConstraints = "Choices can take any values, and it should not be blank"

// Fixed titles used by true/false questions.
const (
	TrueChoiceTitle  = "True"
	FalseChoiceTitle = "False"
)

// Choice is an immutable answer option: a title plus a correctness flag.
type Choice struct {
	title   string
	correct bool
}

// NewChoice validates the title and constructs a Choice.
// The first character must not be whitespace, otherwise " " (a blank-looking
// string) would read as a valid title.
func NewChoice(title string, correct bool) (Choice, error) {
	if !IsValidChoiceTitle(title) {
		return Choice{}, validationErr("choice", ChoiceConstraints)
	}
	return Choice{title: title, correct: correct}, nil
}

// IsValidChoiceTitle reports whether the given string is a valid choice title.
func IsValidChoiceTitle(title string) bool {
	r, _ := utf8.DecodeRuneInString(title)
	return title != "" && !isSpace(r)
}

func (c Choice) Title() string { return c.title }

func (c Choice) IsCorrect() bool { return c.correct }

// HasSameTitle reports whether the other choice carries the same title,
// compared case-sensitively.
func (c Choice) HasSameTitle(other Choice) bool {
	return c.title == other.title
}

// Equals requires both the title and the correctness flag to match.
func (c Choice) Equals(other Choice) bool {
	return c == other
}

func (c Choice) String() string {
	if c.correct {
		return c.title + " (answer)"
	}
	return c.title
}
