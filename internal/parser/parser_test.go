package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartnus/internal/command"
	"smartnus/internal/domain"
	"smartnus/internal/model"
	"smartnus/internal/parser"
)

func TestParseAddMcq(t *testing.T) {
	cmd, err := parser.Parse("add-mcq n/What is 1+1? i/1 ans/2 opt/1 opt/3 opt/4 t/math")
	require.NoError(t, err)

	add, ok := cmd.(*command.AddCommand)
	require.True(t, ok)
	q := add.Question()
	assert.Equal(t, domain.KindMultipleChoice, q.Kind())
	assert.Equal(t, "What is 1+1?", q.Name().String())
	assert.Equal(t, 1, q.Importance().Value())
	assert.Len(t, q.Choices(), 4)

	correct := 0
	for _, c := range q.Choices() {
		if c.IsCorrect() {
			correct++
			assert.Equal(t, "2", c.Title())
		}
	}
	assert.Equal(t, 1, correct)

	t.Run("missing options", func(t *testing.T) {
		_, err := parser.Parse("add-mcq n/q i/1 ans/2 opt/1")
		assert.ErrorContains(t, err, "Invalid command format!")
	})
}

func TestParseAddTf(t *testing.T) {
	cmd, err := parser.Parse("add-tf n/The sky is blue. i/1 ans/true")
	require.NoError(t, err)

	add, ok := cmd.(*command.AddCommand)
	require.True(t, ok)
	assert.Equal(t, domain.KindTrueFalse, add.Question().Kind())

	_, err = parser.Parse("add-tf n/q i/1 ans/maybe")
	assert.ErrorContains(t, err, "Invalid command format!")
}

func TestParseAddSa(t *testing.T) {
	cmd, err := parser.Parse("add-sa n/Capital of France? i/2 ans/Paris t/geography")
	require.NoError(t, err)

	add, ok := cmd.(*command.AddCommand)
	require.True(t, ok)
	q := add.Question()
	assert.Equal(t, domain.KindShortAnswer, q.Kind())
	require.Len(t, q.Choices(), 1)
	assert.Equal(t, "Paris", q.Choices()[0].Title())
	require.Len(t, q.Tags(), 1)
	assert.Equal(t, "geography", q.Tags()[0].Name())
}

func TestParseEdit(t *testing.T) {
	t.Run("importance only", func(t *testing.T) {
		cmd, err := parser.Parse("edit 1 i/3")
		require.NoError(t, err)
		_, ok := cmd.(*command.EditCommand)
		assert.True(t, ok)
	})

	t.Run("no fields rejected at parse time", func(t *testing.T) {
		_, err := parser.Parse("edit 1")
		require.Error(t, err)
		assert.Equal(t, command.MessageNotEdited, err.Error())
	})

	t.Run("non-numeric index", func(t *testing.T) {
		_, err := parser.Parse("edit one i/2")
		assert.ErrorContains(t, err, "Invalid command format!")
	})

	t.Run("invalid importance", func(t *testing.T) {
		_, err := parser.Parse("edit 1 i/9")
		assert.ErrorContains(t, err, domain.ImportanceConstraints)
	})
}

func TestParseDelete(t *testing.T) {
	cmd, err := parser.Parse("delete 2")
	require.NoError(t, err)

	del, ok := cmd.(*command.DeleteCommand)
	require.True(t, ok)
	assert.Equal(t, 2, del.Index().OneBased())

	for _, bad := range []string{"delete", "delete 0", "delete x"} {
		_, err := parser.Parse(bad)
		assert.ErrorContains(t, err, "Invalid command format!", "input %q", bad)
	}
}

func TestParseFind(t *testing.T) {
	cmd, err := parser.Parse("find dns dhcp")
	require.NoError(t, err)
	_, ok := cmd.(*command.FindCommand)
	assert.True(t, ok)

	_, err = parser.Parse("find")
	assert.ErrorContains(t, err, "Invalid command format!")
}

func TestParseTheme(t *testing.T) {
	cmd, err := parser.Parse("theme dark")
	require.NoError(t, err)
	m := model.New(nil, model.UserPrefs{Theme: "light"})
	_, err = cmd.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "dark", m.Prefs().Theme)

	_, err = parser.Parse("theme blue")
	require.Error(t, err)
	assert.Equal(t, parser.ThemeConstraints, err.Error())
}

func TestParseBareWords(t *testing.T) {
	for input, want := range map[string]any{
		"list":  &command.ListCommand{},
		"clear": &command.ClearCommand{},
		"help":  &command.HelpCommand{},
		"exit":  &command.ExitCommand{},
	} {
		cmd, err := parser.Parse(input)
		require.NoError(t, err, "input %q", input)
		assert.IsType(t, want, cmd, "input %q", input)
	}
}

func TestParseUnknown(t *testing.T) {
	for _, input := range []string{"", "   ", "bogus", "ADD-MCQ n/q i/1"} {
		_, err := parser.Parse(input)
		require.Error(t, err, "input %q", input)
		assert.Equal(t, parser.MessageUnknownCommand, err.Error(), "input %q", input)
	}
}

func TestPrefixesOnlySplitAtTokenStart(t *testing.T) {
	// "a/b" after n/ contains a slash but no registered prefix at a token
	// start, so the whole thing stays part of the name.
	cmd, err := parser.Parse("add-sa n/a/b or ans c i/1 ans/x")
	require.NoError(t, err)

	add, ok := cmd.(*command.AddCommand)
	require.True(t, ok)
	assert.Equal(t, "a/b or ans c", add.Question().Name().String())
}
