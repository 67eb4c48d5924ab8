package command

import "smartnus/internal/domain"

// EditDescriptor is a sparse patch over a question: each field is either
// unset (keep the original) or a replacement value. Choices are never part of
// the patch and are always carried over from the original question.
type EditDescriptor struct {
	name       Optional[domain.Name]
	importance Optional[domain.Importance]
	tags       Optional[[]domain.Tag]
}

func (d *EditDescriptor) SetName(name domain.Name) {
	d.name = Some(name)
}

func (d *EditDescriptor) SetImportance(importance domain.Importance) {
	d.importance = Some(importance)
}

// SetTags stores a normalized copy, so the caller's slice stays unshared.
func (d *EditDescriptor) SetTags(tags []domain.Tag) {
	d.tags = Some(domain.NormalizeTags(tags))
}

// AnyFieldSet reports whether the descriptor patches at least one field.
func (d EditDescriptor) AnyFieldSet() bool {
	return d.name.IsSet() || d.importance.IsSet() || d.tags.IsSet()
}

// apply materializes the edited question: descriptor fields where set, the
// original's fields otherwise. The variant and its choices are preserved, and
// the storage identity carries over since it is still the same question.
func (d EditDescriptor) apply(original domain.Question) (domain.Question, error) {
	name := d.name.OrElse(original.Name())
	importance := d.importance.OrElse(original.Importance())
	tags := d.tags.OrElse(original.Tags())

	switch original.Kind() {
	case domain.KindMultipleChoice:
		return domain.RestoreMultipleChoiceQuestion(original.ID(), name, importance, tags, original.Choices())
	case domain.KindTrueFalse:
		return domain.RestoreTrueFalseQuestion(original.ID(), name, importance, tags, original.Choices())
	case domain.KindShortAnswer:
		return domain.RestoreShortAnswerQuestion(original.ID(), name, importance, tags, original.Choices())
	default:
		return nil, &domain.ValidationError{Field: "question", Msg: "unknown question kind"}
	}
}
