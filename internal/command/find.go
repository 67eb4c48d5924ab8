package command

import (
	"fmt"

	"smartnus/internal/model"
)

// FindCommand narrows the view to questions whose name matches any keyword.
type FindCommand struct {
	keywords []string
}

// NewFindCommand keeps a copy of the keywords.
func NewFindCommand(keywords []string) *FindCommand {
	kws := make([]string, len(keywords))
	copy(kws, keywords)
	return &FindCommand{keywords: kws}
}

func (c *FindCommand) Execute(m *model.Model) (CommandResult, error) {
	m.UpdateFilteredQuestionList(model.NameContainsKeywords(c.keywords))
	return CommandResult{
		Feedback: fmt.Sprintf(MessageQuestionsListed, len(m.FilteredQuestionList())),
	}, nil
}
