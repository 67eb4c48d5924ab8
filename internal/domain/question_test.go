package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartnus/internal/domain"
)

func mustName(t *testing.T, s string) domain.Name {
	t.Helper()
	n, err := domain.NewName(s)
	require.NoError(t, err)
	return n
}

func mustImportance(t *testing.T, v int) domain.Importance {
	t.Helper()
	imp, err := domain.NewImportance(v)
	require.NoError(t, err)
	return imp
}

func mustTags(t *testing.T, names ...string) []domain.Tag {
	t.Helper()
	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		tag, err := domain.NewTag(name)
		require.NoError(t, err)
		tags = append(tags, tag)
	}
	return tags
}

func mcqChoices(t *testing.T, answer string, wrong ...string) []domain.Choice {
	t.Helper()
	choices := make([]domain.Choice, 0, 1+len(wrong))
	c, err := domain.NewChoice(answer, true)
	require.NoError(t, err)
	choices = append(choices, c)
	for _, title := range wrong {
		c, err := domain.NewChoice(title, false)
		require.NoError(t, err)
		choices = append(choices, c)
	}
	return choices
}

func mustMCQ(t *testing.T, name string, importance int, tags ...string) *domain.MultipleChoiceQuestion {
	t.Helper()
	q, err := domain.NewMultipleChoiceQuestion(
		mustName(t, name),
		mustImportance(t, importance),
		mustTags(t, tags...),
		mcqChoices(t, "right", "wrong1", "wrong2", "wrong3"),
	)
	require.NoError(t, err)
	return q
}

func TestNewMultipleChoiceQuestion(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		q := mustMCQ(t, "What is 2+2?", 1, "math")
		assert.Equal(t, domain.KindMultipleChoice, q.Kind())
		assert.Equal(t, "What is 2+2?", q.Name().String())
		assert.Len(t, q.Choices(), 4)
		assert.NotEqual(t, uuid.Nil, q.ID())
	})

	t.Run("wrong choice count rejected", func(t *testing.T) {
		_, err := domain.NewMultipleChoiceQuestion(
			mustName(t, "q"), mustImportance(t, 1), nil,
			mcqChoices(t, "right", "wrong1", "wrong2"),
		)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("two correct choices rejected", func(t *testing.T) {
		choices := mcqChoices(t, "right", "wrong1", "wrong2")
		extra, err := domain.NewChoice("also right", true)
		require.NoError(t, err)
		choices = append(choices, extra)

		_, err = domain.NewMultipleChoiceQuestion(mustName(t, "q"), mustImportance(t, 1), nil, choices)
		assert.Error(t, err)
	})
}

func TestTrueFalseQuestion(t *testing.T) {
	q, err := domain.NewTrueFalseQuestion(mustName(t, "The sky is blue."), mustImportance(t, 1), nil, true)
	require.NoError(t, err)

	choices := q.Choices()
	require.Len(t, choices, 2)
	for _, c := range choices {
		if c.Title() == domain.TrueChoiceTitle {
			assert.True(t, c.IsCorrect())
		} else {
			assert.Equal(t, domain.FalseChoiceTitle, c.Title())
			assert.False(t, c.IsCorrect())
		}
	}

	t.Run("restore rejects a non true/false pair", func(t *testing.T) {
		_, err := domain.RestoreTrueFalseQuestion(
			uuid.New(), mustName(t, "q"), mustImportance(t, 1), nil,
			mcqChoices(t, "Yes", "No"),
		)
		assert.Error(t, err)
	})
}

func TestShortAnswerQuestion(t *testing.T) {
	q, err := domain.NewShortAnswerQuestion(mustName(t, "Capital of France?"), mustImportance(t, 2), nil, "Paris")
	require.NoError(t, err)

	choices := q.Choices()
	require.Len(t, choices, 1)
	assert.Equal(t, "Paris", choices[0].Title())
	assert.True(t, choices[0].IsCorrect())
	assert.Contains(t, q.String(), "Paris (answer)")
}

func TestSameQuestion(t *testing.T) {
	a := mustMCQ(t, "Same name", 1)
	b := mustMCQ(t, "Same name", 3, "different", "tags")
	c := mustMCQ(t, "Other name", 1)

	assert.True(t, a.SameQuestion(b), "business key is the name only")
	assert.False(t, a.SameQuestion(c))
	assert.False(t, a.SameQuestion(nil))
}

func TestQuestionEquals(t *testing.T) {
	a := mustMCQ(t, "q", 2, "t1")
	b := mustMCQ(t, "q", 2, "t1")
	c := mustMCQ(t, "q", 3, "t1")

	assert.True(t, a.Equals(b), "identical structure, distinct IDs")
	assert.False(t, a.Equals(c), "importance differs")
	assert.True(t, a.SameQuestion(c), "still the same question by business key")

	saq, err := domain.NewShortAnswerQuestion(mustName(t, "q"), mustImportance(t, 2), mustTags(t, "t1"), "x")
	require.NoError(t, err)
	assert.False(t, a.Equals(saq), "different variants are never structurally equal")
}

func TestRestoreKeepsID(t *testing.T) {
	id := uuid.New()
	q, err := domain.RestoreMultipleChoiceQuestion(
		id, mustName(t, "q"), mustImportance(t, 1), nil,
		mcqChoices(t, "right", "wrong1", "wrong2", "wrong3"),
	)
	require.NoError(t, err)
	assert.Equal(t, id, q.ID())
}

func TestTagNormalization(t *testing.T) {
	q := mustMCQ(t, "q", 1, "zebra", "alpha", "zebra")
	tags := q.Tags()
	require.Len(t, tags, 2, "duplicates dropped")
	assert.Equal(t, "alpha", tags[0].Name())
	assert.Equal(t, "zebra", tags[1].Name())
}
