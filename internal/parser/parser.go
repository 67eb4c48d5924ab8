// Package parser turns raw command lines into validated command values.
// Everything the command layer receives has already passed value-object
// construction here.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"smartnus/internal/command"
	"smartnus/internal/domain"
)

// Parse-level messages and per-command usage strings.
const (
	MessageUnknownCommand = "Unknown command"
	MessageInvalidFormat  = "Invalid command format! \n%s"
	ThemeConstraints      = "Theme should be either light or dark"

	AddMcqUsage = "add-mcq: Adds a multiple choice question. " +
		"Parameters: n/NAME i/IMPORTANCE ans/ANSWER opt/OPTION opt/OPTION opt/OPTION [t/TAG]...\n" +
		"Example: add-mcq n/What is 1+1? i/1 ans/2 opt/1 opt/3 opt/4 t/math"
	AddTfUsage = "add-tf: Adds a true/false question. " +
		"Parameters: n/NAME i/IMPORTANCE ans/true|false [t/TAG]...\n" +
		"Example: add-tf n/The sky is blue. i/1 ans/true"
	AddSaUsage = "add-sa: Adds a short answer question. " +
		"Parameters: n/NAME i/IMPORTANCE ans/ANSWER [t/TAG]...\n" +
		"Example: add-sa n/Capital of France? i/2 ans/Paris t/geography"
	EditUsage = "edit: Edits the question at the displayed index. " +
		"Parameters: INDEX [n/NAME] [i/IMPORTANCE] [t/TAG]...\n" +
		"Example: edit 1 i/3"
	DeleteUsage = "delete: Deletes the question at the displayed index. " +
		"Parameters: INDEX\nExample: delete 2"
	FindUsage  = "find: Lists questions whose name contains any keyword. Parameters: KEYWORD [MORE_KEYWORDS]..."
	TagUsage   = "tag: Lists questions carrying the given tag. Parameters: TAG"
	ThemeUsage = "theme: Switches the UI theme. Parameters: light|dark"
)

// Overview is the help text listing every command.
const Overview = "Commands:\n" +
	AddMcqUsage + "\n" + AddTfUsage + "\n" + AddSaUsage + "\n" +
	EditUsage + "\n" + DeleteUsage + "\n" + FindUsage + "\n" + TagUsage + "\n" +
	ThemeUsage + "\n" +
	"list: Lists all questions\nclear: Removes all questions\nhelp: Shows this help\nexit: Exits the program"

// Error is a parse-level failure with a user-facing message.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func parseErr(message string) error {
	return &Error{Message: message}
}

func invalidFormat(usage string) error {
	return parseErr(fmt.Sprintf(MessageInvalidFormat, usage))
}

// Parse dispatches on the command word and returns a validated command.
func Parse(line string) (command.Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, parseErr(MessageUnknownCommand)
	}
	word, rest, _ := strings.Cut(trimmed, " ")

	switch word {
	case "add-mcq":
		return parseAddMcq(rest)
	case "add-tf":
		return parseAddTf(rest)
	case "add-sa":
		return parseAddSa(rest)
	case "edit":
		return parseEdit(rest)
	case "delete":
		return parseDelete(rest)
	case "find":
		return parseFind(rest)
	case "tag":
		return parseTag(rest)
	case "theme":
		return parseTheme(rest)
	case "list":
		return command.NewListCommand(), nil
	case "clear":
		return command.NewClearCommand(), nil
	case "help":
		return command.NewHelpCommand(), nil
	case "exit":
		return command.NewExitCommand(), nil
	default:
		return nil, parseErr(MessageUnknownCommand)
	}
}

func parseAddMcq(rest string) (command.Command, error) {
	args := tokenize(rest, prefixName, prefixImportance, prefixTag, prefixAnswer, prefixOption)
	name, importance, tags, err := requireCommonFields(args, AddMcqUsage)
	if err != nil {
		return nil, err
	}
	answer, ok := args.single(prefixAnswer)
	if !ok || args.preamble != "" {
		return nil, invalidFormat(AddMcqUsage)
	}
	options := args.all(prefixOption)
	if len(options) != 3 {
		return nil, invalidFormat(AddMcqUsage)
	}

	choices := make([]domain.Choice, 0, 4)
	correct, err := domain.NewChoice(answer, true)
	if err != nil {
		return nil, parseErr(err.Error())
	}
	choices = append(choices, correct)
	for _, opt := range options {
		wrong, err := domain.NewChoice(opt, false)
		if err != nil {
			return nil, parseErr(err.Error())
		}
		choices = append(choices, wrong)
	}

	q, err := domain.NewMultipleChoiceQuestion(name, importance, tags, choices)
	if err != nil {
		return nil, parseErr(err.Error())
	}
	return command.NewAddCommand(q), nil
}

func parseAddTf(rest string) (command.Command, error) {
	args := tokenize(rest, prefixName, prefixImportance, prefixTag, prefixAnswer)
	name, importance, tags, err := requireCommonFields(args, AddTfUsage)
	if err != nil {
		return nil, err
	}
	answer, ok := args.single(prefixAnswer)
	if !ok || args.preamble != "" {
		return nil, invalidFormat(AddTfUsage)
	}

	var truth bool
	switch strings.ToLower(answer) {
	case "true", "t":
		truth = true
	case "false", "f":
		truth = false
	default:
		return nil, invalidFormat(AddTfUsage)
	}

	q, err := domain.NewTrueFalseQuestion(name, importance, tags, truth)
	if err != nil {
		return nil, parseErr(err.Error())
	}
	return command.NewAddCommand(q), nil
}

func parseAddSa(rest string) (command.Command, error) {
	args := tokenize(rest, prefixName, prefixImportance, prefixTag, prefixAnswer)
	name, importance, tags, err := requireCommonFields(args, AddSaUsage)
	if err != nil {
		return nil, err
	}
	answer, ok := args.single(prefixAnswer)
	if !ok || args.preamble != "" {
		return nil, invalidFormat(AddSaUsage)
	}

	q, err := domain.NewShortAnswerQuestion(name, importance, tags, answer)
	if err != nil {
		return nil, parseErr(err.Error())
	}
	return command.NewAddCommand(q), nil
}

func parseEdit(rest string) (command.Command, error) {
	args := tokenize(rest, prefixName, prefixImportance, prefixTag)
	index, err := parseIndex(args.preamble, EditUsage)
	if err != nil {
		return nil, err
	}

	var descriptor command.EditDescriptor
	if raw, ok := args.single(prefixName); ok {
		name, err := domain.NewName(raw)
		if err != nil {
			return nil, parseErr(err.Error())
		}
		descriptor.SetName(name)
	}
	if raw, ok := args.single(prefixImportance); ok {
		importance, err := domain.ParseImportance(raw)
		if err != nil {
			return nil, parseErr(err.Error())
		}
		descriptor.SetImportance(importance)
	}
	if raws := args.all(prefixTag); len(raws) > 0 {
		tags, err := parseTags(raws)
		if err != nil {
			return nil, err
		}
		descriptor.SetTags(tags)
	}

	if !descriptor.AnyFieldSet() {
		return nil, parseErr(command.MessageNotEdited)
	}
	return command.NewEditCommand(index, descriptor), nil
}

func parseDelete(rest string) (command.Command, error) {
	index, err := parseIndex(strings.TrimSpace(rest), DeleteUsage)
	if err != nil {
		return nil, err
	}
	return command.NewDeleteCommand(index), nil
}

func parseFind(rest string) (command.Command, error) {
	keywords := strings.Fields(rest)
	if len(keywords) == 0 {
		return nil, invalidFormat(FindUsage)
	}
	return command.NewFindCommand(keywords), nil
}

func parseTag(rest string) (command.Command, error) {
	name := strings.TrimSpace(rest)
	if name == "" {
		return nil, invalidFormat(TagUsage)
	}
	tag, err := domain.NewTag(name)
	if err != nil {
		return nil, parseErr(err.Error())
	}
	return command.NewTagCommand(tag), nil
}

func parseTheme(rest string) (command.Command, error) {
	theme := strings.ToLower(strings.TrimSpace(rest))
	if theme != "light" && theme != "dark" {
		return nil, parseErr(ThemeConstraints)
	}
	return command.NewThemeCommand(theme), nil
}

func parseIndex(raw, usage string) (command.Index, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return command.Index{}, invalidFormat(usage)
	}
	index, err := command.NewIndex(n)
	if err != nil {
		return command.Index{}, invalidFormat(usage)
	}
	return index, nil
}

func parseTags(raws []string) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(raws))
	for _, raw := range raws {
		tag, err := domain.NewTag(raw)
		if err != nil {
			return nil, parseErr(err.Error())
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func requireCommonFields(args arguments, usage string) (domain.Name, domain.Importance, []domain.Tag, error) {
	rawName, okName := args.single(prefixName)
	rawImportance, okImportance := args.single(prefixImportance)
	if !okName || !okImportance {
		return domain.Name{}, domain.Importance{}, nil, invalidFormat(usage)
	}
	name, err := domain.NewName(rawName)
	if err != nil {
		return domain.Name{}, domain.Importance{}, nil, parseErr(err.Error())
	}
	importance, err := domain.ParseImportance(rawImportance)
	if err != nil {
		return domain.Name{}, domain.Importance{}, nil, parseErr(err.Error())
	}
	tags, err := parseTags(args.all(prefixTag))
	if err != nil {
		return domain.Name{}, domain.Importance{}, nil, err
	}
	return name, importance, tags, nil
}
