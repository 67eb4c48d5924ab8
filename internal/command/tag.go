package command

import (
	"fmt"

	"smartnus/internal/domain"
	"smartnus/internal/model"
)

// TagCommand narrows the view to questions carrying the given tag.
type TagCommand struct {
	tag domain.Tag
}

func NewTagCommand(tag domain.Tag) *TagCommand {
	return &TagCommand{tag: tag}
}

func (c *TagCommand) Execute(m *model.Model) (CommandResult, error) {
	m.UpdateFilteredQuestionList(model.HasTag(c.tag))
	return CommandResult{
		Feedback: fmt.Sprintf(MessageQuestionsListed, len(m.FilteredQuestionList())),
	}, nil
}
