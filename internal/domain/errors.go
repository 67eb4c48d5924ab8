package domain

import "errors"

var (
	// ErrDuplicateQuestion is returned when an operation would leave two
	// questions with the same business key in the list.
	ErrDuplicateQuestion = errors.New("duplicate question")
	// ErrQuestionNotFound is returned when the target of a mutation is absent.
	ErrQuestionNotFound = errors.New("question not found")
)

// ValidationError reports a malformed value at construction time. Invalid
// value objects are never built; the error is raised before any field is set.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Msg
}

func validationErr(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}
