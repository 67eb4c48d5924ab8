package command_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"smartnus/internal/domain"
	"smartnus/internal/model"
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

func mustTags(t *testing.T, raws ...string) []domain.Tag {
	t.Helper()
	tags := make([]domain.Tag, 0, len(raws))
	for _, raw := range raws {
		tag, err := domain.NewTag(raw)
		require.NoError(t, err)
		tags = append(tags, tag)
	}
	return tags
}

func mcq(t *testing.T, name string, importance int, tags ...string) domain.Question {
	t.Helper()
	choices := make([]domain.Choice, 0, 4)
	for i, spec := range []struct {
		title   string
		correct bool
	}{
		{"right", true}, {"wrong1", false}, {"wrong2", false}, {"wrong3", false},
	} {
		c, err := domain.NewChoice(spec.title, spec.correct)
		require.NoError(t, err, "choice %d", i)
		choices = append(choices, c)
	}
	q, err := domain.NewMultipleChoiceQuestion(mustName(t, name), mustImportance(t, importance), mustTags(t, tags...), choices)
	require.NoError(t, err)
	return q
}

// modelABC builds a model holding questions A, B, C in that order.
func modelABC(t *testing.T) *model.Model {
	t.Helper()
	m := model.New(nil, model.UserPrefs{Theme: "light"})
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, m.AddQuestion(mcq(t, name, 2, "seed")))
	}
	return m
}

func viewNames(m *model.Model) []string {
	shown := m.FilteredQuestionList()
	out := make([]string, 0, len(shown))
	for _, q := range shown {
		out = append(out, q.Name().String())
	}
	return out
}

// showOnly narrows the filter to the single question with the given name.
func showOnly(m *model.Model, name string) {
	m.UpdateFilteredQuestionList(func(q domain.Question) bool {
		return q.Name().String() == name
	})
}
