package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeText(f Form, text string) Form {
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return f
}

func pressEnter(f Form) Form {
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return f
}

func TestSubmitForwardsTrimmedText(t *testing.T) {
	var got []string
	f := New(func(s string) { got = append(got, s) }).Focus()

	f = typeText(f, "  chocolate  ")
	f = pressEnter(f)

	assert.Equal(t, []string{"chocolate"}, got)
	// Reset after a successful submit.
	assert.False(t, f.Active())
	assert.Empty(t, f.Value())
}

func TestEmptySubmitIsRejectedLocally(t *testing.T) {
	calls := 0
	f := New(func(string) { calls++ }).Focus()

	f = typeText(f, "   ")
	f = pressEnter(f)

	assert.Zero(t, calls)
	assert.True(t, f.Active())
	assert.NotEmpty(t, f.Err())

	// A real value afterwards still goes through and clears the error.
	f = typeText(f, "milk")
	f = pressEnter(f)
	assert.Equal(t, 1, calls)
	assert.Empty(t, f.Err())
}

func TestEscCancelsWithoutCallback(t *testing.T) {
	calls := 0
	f := New(func(string) { calls++ }).Focus()

	f = typeText(f, "milk")
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Zero(t, calls)
	assert.False(t, f.Active())
	assert.Empty(t, f.Value())
}

func TestInactiveFormIgnoresInput(t *testing.T) {
	calls := 0
	f := New(func(string) { calls++ })

	f = typeText(f, "milk")
	f = pressEnter(f)

	assert.Zero(t, calls)
	assert.Empty(t, f.Value())
	assert.Empty(t, f.View())
}
