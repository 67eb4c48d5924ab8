// Package command implements the command family of the quiz manager: each
// command encapsulates its parameters and mutates the session model through
// Execute, returning a result for the UI or a typed failure. A command that
// fails validation performs zero partial mutation.
package command

import "smartnus/internal/model"

// User-facing messages. The exact strings are part of the tool's surface.
const (
	MessageDuplicateQuestion    = "This question already exists in SmartNUS."
	MessageInvalidQuestionIndex = "The question index provided is invalid."
	MessageNotEdited            = "At least one field to edit must be provided."

	MessageAddSuccess      = "New question added: %s"
	MessageEditSuccess     = "Edited Question: %s"
	MessageDeleteSuccess   = "Deleted Question: %s"
	MessageQuestionsListed = "%d questions listed!"
	MessageCleared         = "SmartNUS has been cleared!"
	MessageHelp            = "Opened help window."
	MessageExit            = "Exiting SmartNUS as requested ..."
	MessageThemeSuccess    = "Theme set to: %s"
)

// CommandResult carries a command's feedback message plus UI directives.
type CommandResult struct {
	Feedback string
	ShowHelp bool
	Exit     bool
}

// Command is a fully validated user command ready to run against the model.
type Command interface {
	Execute(m *model.Model) (CommandResult, error)
}

// Error is a recoverable command failure carrying a user-facing message.
// The model is left unchanged whenever Execute returns one.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func failure(message string, cause error) error {
	return &Error{Message: message, Err: cause}
}
