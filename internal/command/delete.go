package command

import (
	"fmt"

	"smartnus/internal/model"
)

// DeleteCommand removes the question at a display index. Unlike edit, it
// leaves the active filter untouched.
type DeleteCommand struct {
	index Index
}

// NewDeleteCommand builds a delete of the question shown at index.
func NewDeleteCommand(index Index) *DeleteCommand {
	return &DeleteCommand{index: index}
}

func (c *DeleteCommand) Execute(m *model.Model) (CommandResult, error) {
	shown := m.FilteredQuestionList()
	if c.index.ZeroBased() >= len(shown) {
		return CommandResult{}, failure(MessageInvalidQuestionIndex, nil)
	}
	target := shown[c.index.ZeroBased()]

	if err := m.DeleteQuestion(target); err != nil {
		return CommandResult{}, translateDomainErr(err)
	}
	return CommandResult{Feedback: fmt.Sprintf(MessageDeleteSuccess, target)}, nil
}

// Index returns the target display position.
func (c *DeleteCommand) Index() Index { return c.index }
