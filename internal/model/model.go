package model

import "smartnus/internal/domain"

// UserPrefs holds the per-user presentation settings.
type UserPrefs struct {
	Theme string
}

// Model is the mutable session state: one question list, the active filter
// and the user preferences. It has exactly one owner per session and is not
// safe for concurrent use.
type Model struct {
	questions *domain.QuestionList
	filter    Predicate
	prefs     UserPrefs
}

// New wraps a question list with user preferences. The filter starts at
// show-all. A nil list is replaced with an empty one.
func New(list *domain.QuestionList, prefs UserPrefs) *Model {
	if list == nil {
		list = domain.NewQuestionList()
	}
	return &Model{
		questions: list,
		filter:    ShowAll,
		prefs:     prefs,
	}
}

// HasQuestion reports business-key membership in the underlying list.
func (m *Model) HasQuestion(q domain.Question) bool {
	return m.questions.Contains(q)
}

// AddQuestion appends q to the list. The filtered view catches up on its
// next read; no eager recompute happens here.
func (m *Model) AddQuestion(q domain.Question) error {
	return m.questions.Add(q)
}

// DeleteQuestion removes q from the list.
func (m *Model) DeleteQuestion(q domain.Question) error {
	return m.questions.Remove(q)
}

// SetQuestion replaces target with edited, preserving its position.
func (m *Model) SetQuestion(target, edited domain.Question) error {
	return m.questions.SetQuestion(target, edited)
}

// UpdateFilteredQuestionList swaps the active predicate. The view is derived,
// so the new predicate only takes effect on the next read.
func (m *Model) UpdateFilteredQuestionList(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	m.filter = p
}

// FilteredQuestionList applies the active predicate to the current list
// contents. Relative order is preserved; filtering never reorders.
func (m *Model) FilteredQuestionList() []domain.Question {
	all := m.questions.Questions()
	out := make([]domain.Question, 0, len(all))
	for _, q := range all {
		if m.filter(q) {
			out = append(out, q)
		}
	}
	return out
}

// QuestionList exposes the full list for snapshotting by the storage layer.
func (m *Model) QuestionList() *domain.QuestionList {
	return m.questions
}

// ReplaceQuestionList swaps in a previously loaded snapshot and resets the
// filter to show-all.
func (m *Model) ReplaceQuestionList(list *domain.QuestionList) {
	if list == nil {
		list = domain.NewQuestionList()
	}
	m.questions = list
	m.filter = ShowAll
}

// Prefs returns the current user preferences.
func (m *Model) Prefs() UserPrefs {
	return m.prefs
}

// SetTheme updates the preferred UI theme.
func (m *Model) SetTheme(theme string) {
	m.prefs.Theme = theme
}
