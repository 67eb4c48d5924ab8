package command

import (
	"fmt"

	"smartnus/internal/domain"
	"smartnus/internal/model"
)

// EditCommand patches the question at a display index with an EditDescriptor.
type EditCommand struct {
	index      Index
	descriptor EditDescriptor
}

// NewEditCommand builds an edit of the question shown at index.
func NewEditCommand(index Index, descriptor EditDescriptor) *EditCommand {
	return &EditCommand{index: index, descriptor: descriptor}
}

// Execute resolves the index against the current filtered view, materializes
// the edited question and replaces the original in place. On success the
// active filter resets to show-all. The parser already rejects empty
// descriptors; the guard is repeated here so a misbuilt command cannot
// silently no-op.
func (c *EditCommand) Execute(m *model.Model) (CommandResult, error) {
	if !c.descriptor.AnyFieldSet() {
		return CommandResult{}, failure(MessageNotEdited, nil)
	}

	shown := m.FilteredQuestionList()
	if c.index.ZeroBased() >= len(shown) {
		return CommandResult{}, failure(MessageInvalidQuestionIndex, nil)
	}
	original := shown[c.index.ZeroBased()]

	edited, err := c.descriptor.apply(original)
	if err != nil {
		return CommandResult{}, failure(err.Error(), err)
	}

	// A no-op edit may "collide" with itself; only a changed identity that
	// clashes with another question is a duplicate.
	if !original.SameQuestion(edited) && m.HasQuestion(edited) {
		return CommandResult{}, failure(MessageDuplicateQuestion, domain.ErrDuplicateQuestion)
	}

	if err := m.SetQuestion(original, edited); err != nil {
		return CommandResult{}, translateDomainErr(err)
	}
	m.UpdateFilteredQuestionList(model.ShowAll)
	return CommandResult{Feedback: fmt.Sprintf(MessageEditSuccess, edited)}, nil
}

func translateDomainErr(err error) error {
	switch err {
	case domain.ErrDuplicateQuestion:
		return failure(MessageDuplicateQuestion, err)
	case domain.ErrQuestionNotFound:
		return failure(MessageInvalidQuestionIndex, err)
	default:
		return failure(err.Error(), err)
	}
}
