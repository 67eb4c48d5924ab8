package command

import (
	"fmt"

	"smartnus/internal/domain"
	"smartnus/internal/model"
)

// AddCommand appends a fully built question of any variant to the list.
type AddCommand struct {
	question domain.Question
}

// NewAddCommand wraps a validated question for addition.
func NewAddCommand(q domain.Question) *AddCommand {
	return &AddCommand{question: q}
}

func (c *AddCommand) Execute(m *model.Model) (CommandResult, error) {
	if m.HasQuestion(c.question) {
		return CommandResult{}, failure(MessageDuplicateQuestion, domain.ErrDuplicateQuestion)
	}
	if err := m.AddQuestion(c.question); err != nil {
		return CommandResult{}, translateDomainErr(err)
	}
	return CommandResult{Feedback: fmt.Sprintf(MessageAddSuccess, c.question)}, nil
}

// Question returns the question to be added.
func (c *AddCommand) Question() domain.Question { return c.question }
