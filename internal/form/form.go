// Package form is the capture side of the add-item flow: one text field,
// one submit callback. The form never talks to the store or builds actions
// itself; what happens with the captured text is entirely the caller's
// business (props-as-callback).
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	barStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Form captures a single line of text and hands the trimmed value to the
// callback supplied at construction, then resets itself.
type Form struct {
	input    textinput.Model
	onSubmit func(string)
	active   bool
	errMsg   string
}

// New builds an inactive form. onSubmit is invoked with the trimmed text
// on every accepted submission.
func New(onSubmit func(string)) Form {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item..."
	ti.CharLimit = 200
	return Form{input: ti, onSubmit: onSubmit}
}

// Focus activates the form with an empty field and the cursor in it.
func (f Form) Focus() Form {
	f.active = true
	f.errMsg = ""
	f.input.SetValue("")
	f.input.Focus()
	return f
}

// Active reports whether the form currently owns keyboard input.
func (f Form) Active() bool { return f.active }

// Value returns the raw field contents.
func (f Form) Value() string { return f.input.Value() }

// Err returns the current inline validation message, if any.
func (f Form) Err() string { return f.errMsg }

func (f Form) reset() Form {
	f.input.SetValue("")
	f.input.Blur()
	f.active = false
	f.errMsg = ""
	return f
}

// Update handles input while the form is active. Enter submits; a value
// that is empty after trimming is rejected in place with an inline error
// and no callback. Esc cancels without a callback.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	if key, isKey := msg.(tea.KeyMsg); isKey {
		switch key.String() {
		case "enter":
			text := strings.TrimSpace(f.input.Value())
			if text == "" {
				f.errMsg = "Description cannot be empty"
				return f, nil
			}
			if f.onSubmit != nil {
				f.onSubmit(text)
			}
			return f.reset(), nil
		case "esc":
			return f.reset(), nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the bordered input bar; empty while inactive.
func (f Form) View() string {
	if !f.active {
		return ""
	}
	title := "Add item"
	if f.errMsg != "" {
		title += " — " + errStyle.Render(f.errMsg)
	}
	return barStyle.Render(title + "\n" + f.input.View())
}
