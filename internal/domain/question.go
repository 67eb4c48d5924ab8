package domain

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies a question variant. The set is closed.
type Kind string

const (
	KindMultipleChoice Kind = "mcq"
	KindTrueFalse      Kind = "tfq"
	KindShortAnswer    Kind = "saq"
)

// Variant-specific constraint messages.
const (
	McqConstraints = "Multiple choice questions must have exactly 4 choices, 1 of which is correct"
	TfqConstraints = "True/false questions must have exactly the True and False choices, 1 of which is correct"
	SaqConstraints = "Short answer questions must have at least 1 correct answer"
)

// Question is the capability surface shared by every variant. Questions are
// immutable after construction; an edit builds a new instance.
type Question interface {
	// ID is the storage identity of the question. It never participates in
	// business-key or structural equality.
	ID() uuid.UUID
	Kind() Kind
	Name() Name
	Importance() Importance
	Tags() []Tag
	Choices() []Choice
	// SameQuestion is the business-key equality: case-sensitive name match.
	// It is weaker than Equals and drives duplicate detection.
	SameQuestion(other Question) bool
	// Equals is full structural equality, ignoring ID.
	Equals(other Question) bool
	String() string
}

type base struct {
	id         uuid.UUID
	kind       Kind
	name       Name
	importance Importance
	tags       []Tag
	choices    []Choice
}

func newBase(kind Kind, name Name, importance Importance, tags []Tag, choices []Choice) base {
	return restoreBase(uuid.New(), kind, name, importance, tags, choices)
}

func restoreBase(id uuid.UUID, kind Kind, name Name, importance Importance, tags []Tag, choices []Choice) base {
	return base{
		id:         id,
		kind:       kind,
		name:       name,
		importance: importance,
		tags:       NormalizeTags(tags),
		choices:    normalizeChoices(choices),
	}
}

func (b *base) ID() uuid.UUID          { return b.id }
func (b *base) Kind() Kind             { return b.kind }
func (b *base) Name() Name             { return b.name }
func (b *base) Importance() Importance { return b.importance }

func (b *base) Tags() []Tag {
	out := make([]Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

func (b *base) Choices() []Choice {
	out := make([]Choice, len(b.choices))
	copy(out, b.choices)
	return out
}

func (b *base) SameQuestion(other Question) bool {
	return other != nil && b.name == other.Name()
}

func (b *base) Equals(other Question) bool {
	if other == nil || b.kind != other.Kind() {
		return false
	}
	if b.name != other.Name() || b.importance != other.Importance() {
		return false
	}
	otherTags := other.Tags()
	if len(b.tags) != len(otherTags) {
		return false
	}
	for i, tag := range b.tags {
		if tag != otherTags[i] {
			return false
		}
	}
	otherChoices := other.Choices()
	if len(b.choices) != len(otherChoices) {
		return false
	}
	for i, choice := range b.choices {
		if choice != otherChoices[i] {
			return false
		}
	}
	return true
}

func (b *base) String() string {
	var sb strings.Builder
	sb.WriteString(b.name.String())
	sb.WriteString("; Importance: ")
	sb.WriteString(b.importance.String())
	if len(b.tags) > 0 {
		sb.WriteString("; Tags: ")
		for _, tag := range b.tags {
			sb.WriteString(tag.String())
		}
	}
	if len(b.choices) > 0 {
		sb.WriteString("; Choices: ")
		parts := make([]string, len(b.choices))
		for i, choice := range b.choices {
			parts[i] = choice.String()
		}
		sb.WriteString(strings.Join(parts, ", "))
	}
	return sb.String()
}

// MultipleChoiceQuestion pairs a prompt with exactly four choices, exactly
// one of which is correct.
type MultipleChoiceQuestion struct {
	base
}

// NewMultipleChoiceQuestion validates the choice set and constructs the question.
func NewMultipleChoiceQuestion(name Name, importance Importance, tags []Tag, choices []Choice) (*MultipleChoiceQuestion, error) {
	return RestoreMultipleChoiceQuestion(uuid.New(), name, importance, tags, choices)
}

// RestoreMultipleChoiceQuestion rebuilds a question with a known storage
// identity, re-running full validation.
func RestoreMultipleChoiceQuestion(id uuid.UUID, name Name, importance Importance, tags []Tag, choices []Choice) (*MultipleChoiceQuestion, error) {
	if len(choices) != 4 || countCorrect(choices) != 1 {
		return nil, validationErr("question", McqConstraints)
	}
	return &MultipleChoiceQuestion{base: restoreBase(id, KindMultipleChoice, name, importance, tags, choices)}, nil
}

// TrueFalseQuestion carries the fixed True/False choice pair.
type TrueFalseQuestion struct {
	base
}

// NewTrueFalseQuestion constructs a true/false question whose correct choice
// is determined by answer.
func NewTrueFalseQuestion(name Name, importance Importance, tags []Tag, answer bool) (*TrueFalseQuestion, error) {
	trueChoice, err := NewChoice(TrueChoiceTitle, answer)
	if err != nil {
		return nil, err
	}
	falseChoice, err := NewChoice(FalseChoiceTitle, !answer)
	if err != nil {
		return nil, err
	}
	return RestoreTrueFalseQuestion(uuid.New(), name, importance, tags, []Choice{trueChoice, falseChoice})
}

// RestoreTrueFalseQuestion rebuilds a true/false question from an explicit
// choice set, re-running full validation.
func RestoreTrueFalseQuestion(id uuid.UUID, name Name, importance Importance, tags []Tag, choices []Choice) (*TrueFalseQuestion, error) {
	if !isTrueFalsePair(choices) {
		return nil, validationErr("question", TfqConstraints)
	}
	return &TrueFalseQuestion{base: restoreBase(id, KindTrueFalse, name, importance, tags, choices)}, nil
}

// ShortAnswerQuestion stores its accepted answer as a correct choice.
type ShortAnswerQuestion struct {
	base
}

// NewShortAnswerQuestion constructs a short answer question with a single
// accepted answer.
func NewShortAnswerQuestion(name Name, importance Importance, tags []Tag, answer string) (*ShortAnswerQuestion, error) {
	choice, err := NewChoice(answer, true)
	if err != nil {
		return nil, err
	}
	return RestoreShortAnswerQuestion(uuid.New(), name, importance, tags, []Choice{choice})
}

// RestoreShortAnswerQuestion rebuilds a short answer question from an
// explicit choice set, re-running full validation.
func RestoreShortAnswerQuestion(id uuid.UUID, name Name, importance Importance, tags []Tag, choices []Choice) (*ShortAnswerQuestion, error) {
	if len(choices) == 0 || countCorrect(choices) == 0 {
		return nil, validationErr("question", SaqConstraints)
	}
	return &ShortAnswerQuestion{base: restoreBase(id, KindShortAnswer, name, importance, tags, choices)}, nil
}

// NormalizeTags returns a defensive copy of tags with duplicates removed,
// sorted by name. Input order is never relied upon.
func NormalizeTags(tags []Tag) []Tag {
	seen := make(map[Tag]struct{}, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func normalizeChoices(choices []Choice) []Choice {
	out := make([]Choice, len(choices))
	copy(out, choices)
	sort.Slice(out, func(i, j int) bool {
		if out[i].title != out[j].title {
			return out[i].title < out[j].title
		}
		return out[i].correct && !out[j].correct
	})
	return out
}

func countCorrect(choices []Choice) int {
	n := 0
	for _, choice := range choices {
		if choice.correct {
			n++
		}
	}
	return n
}

func isTrueFalsePair(choices []Choice) bool {
	if len(choices) != 2 || countCorrect(choices) != 1 {
		return false
	}
	titles := map[string]bool{}
	for _, choice := range choices {
		titles[choice.title] = true
	}
	return titles[TrueChoiceTitle] && titles[FalseChoiceTitle]
}
