package command

import (
	"fmt"

	"smartnus/internal/model"
)

// ListCommand resets the filter to show-all and reports the full list size.
type ListCommand struct{}

func NewListCommand() *ListCommand { return &ListCommand{} }

func (c *ListCommand) Execute(m *model.Model) (CommandResult, error) {
	m.UpdateFilteredQuestionList(model.ShowAll)
	return CommandResult{
		Feedback: fmt.Sprintf(MessageQuestionsListed, len(m.FilteredQuestionList())),
	}, nil
}
