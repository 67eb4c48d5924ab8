package domain

// QuestionList is an ordered, insertion-order-preserving collection of
// questions that forbids business-key duplicates. It owns its elements; the
// no-duplicate invariant is re-checked on every mutation.
type QuestionList struct {
	questions []Question
}

// NewQuestionList returns an empty list.
func NewQuestionList() *QuestionList {
	return &QuestionList{}
}

// Add appends q at the end. It fails with ErrDuplicateQuestion if an existing
// element is the same question by business key.
func (l *QuestionList) Add(q Question) error {
	if l.Contains(q) {
		return ErrDuplicateQuestion
	}
	l.questions = append(l.questions, q)
	return nil
}

// SetQuestion replaces target with replacement, preserving its position.
// It fails with ErrQuestionNotFound if target is absent, and with
// ErrDuplicateQuestion if replacement collides with a different element.
func (l *QuestionList) SetQuestion(target, replacement Question) error {
	idx := l.indexOf(target)
	if idx < 0 {
		return ErrQuestionNotFound
	}
	for i, q := range l.questions {
		if i != idx && q.SameQuestion(replacement) {
			return ErrDuplicateQuestion
		}
	}
	l.questions[idx] = replacement
	return nil
}

// Remove deletes q from the list. It fails with ErrQuestionNotFound if q is
// absent by business key.
func (l *QuestionList) Remove(q Question) error {
	idx := l.indexOf(q)
	if idx < 0 {
		return ErrQuestionNotFound
	}
	l.questions = append(l.questions[:idx], l.questions[idx+1:]...)
	return nil
}

// Contains is a business-key membership test, not a structural one.
func (l *QuestionList) Contains(q Question) bool {
	return l.indexOf(q) >= 0
}

// SetAll replaces the whole contents with questions. The incoming sequence is
// validated for internal business-key duplicates before anything is committed.
func (l *QuestionList) SetAll(questions []Question) error {
	for i, q := range questions {
		for _, other := range questions[i+1:] {
			if q.SameQuestion(other) {
				return ErrDuplicateQuestion
			}
		}
	}
	replaced := make([]Question, len(questions))
	copy(replaced, questions)
	l.questions = replaced
	return nil
}

// Questions returns a snapshot of the contents in insertion order.
func (l *QuestionList) Questions() []Question {
	out := make([]Question, len(l.questions))
	copy(out, l.questions)
	return out
}

// Len reports the number of questions in the list.
func (l *QuestionList) Len() int {
	return len(l.questions)
}

func (l *QuestionList) indexOf(q Question) int {
	for i, existing := range l.questions {
		if existing.SameQuestion(q) {
			return i
		}
	}
	return -1
}
