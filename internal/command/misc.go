package command

import (
	"fmt"

	"smartnus/internal/model"
)

// ClearCommand empties the whole question list and resets the filter.
type ClearCommand struct{}

func NewClearCommand() *ClearCommand { return &ClearCommand{} }

func (c *ClearCommand) Execute(m *model.Model) (CommandResult, error) {
	if err := m.QuestionList().SetAll(nil); err != nil {
		return CommandResult{}, translateDomainErr(err)
	}
	m.UpdateFilteredQuestionList(model.ShowAll)
	return CommandResult{Feedback: MessageCleared}, nil
}

// HelpCommand asks the UI to show usage help.
type HelpCommand struct{}

func NewHelpCommand() *HelpCommand { return &HelpCommand{} }

func (c *HelpCommand) Execute(*model.Model) (CommandResult, error) {
	return CommandResult{Feedback: MessageHelp, ShowHelp: true}, nil
}

// ExitCommand asks the UI to terminate the session.
type ExitCommand struct{}

func NewExitCommand() *ExitCommand { return &ExitCommand{} }

func (c *ExitCommand) Execute(*model.Model) (CommandResult, error) {
	return CommandResult{Feedback: MessageExit, Exit: true}, nil
}

// ThemeCommand switches the preferred UI theme.
type ThemeCommand struct {
	theme string
}

func NewThemeCommand(theme string) *ThemeCommand {
	return &ThemeCommand{theme: theme}
}

func (c *ThemeCommand) Execute(m *model.Model) (CommandResult, error) {
	m.SetTheme(c.theme)
	return CommandResult{Feedback: fmt.Sprintf(MessageThemeSuccess, c.theme)}, nil
}
