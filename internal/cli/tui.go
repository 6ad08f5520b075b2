package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/flux"
	"github.com/idilsaglam/shoplist/internal/form"
	"github.com/idilsaglam/shoplist/internal/model"
)

// stateChangedMsg tells the program the store holds new state to render.
type stateChangedMsg struct{}

// row adapts an Item to bubbles/list.Item.
type row struct {
	Text string
}

func (r row) Title() string       { return r.Text }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.Text }

func rowsFromState(items []model.Item) []list.Item {
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{Text: it.Description})
	}
	return rows
}

// rowDelegate renders one item per line.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, _ := item.(row)
	line := accentStyle.Render(bullet) + " " + r.Text
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

func listTitle(n int) string {
	return fmt.Sprintf("%s   %s %d",
		titleStyle.Render("Shopping list"),
		accentStyle.Render("Items"), n,
	)
}

// tuiModel is the rendering layer: it subscribes to the store, re-reads
// state on every notification, and owns no list data of its own.
type tuiModel struct {
	store *flux.Store
	list  list.Model
	form  form.Form

	// changes coalesces store notifications into at most one pending
	// signal; listenForChange turns it into a stateChangedMsg.
	changes chan struct{}
	unsub   flux.Unsubscribe

	width, height int
}

func newTUIModel(store *flux.Store) tuiModel {
	changes := make(chan struct{}, 1)
	unsub := store.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	items := store.GetState()
	l := list.New(rowsFromState(items), rowDelegate{}, 0, 0)
	l.Title = listTitle(len(items))
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	reloadBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, reloadBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, reloadBind} }

	return tuiModel{
		store:   store,
		list:    l,
		form:    form.New(func(description string) { store.Dispatch(flux.AddItem(description)) }),
		changes: changes,
		unsub:   unsub,
		width:   80,
		height:  24,
	}
}

func listenForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-changes
		return stateChangedMsg{}
	}
}

func (m tuiModel) Init() tea.Cmd { return listenForChange(m.changes) }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		items := m.store.GetState()
		m.list.Title = listTitle(len(items))
		cmd := m.list.SetItems(rowsFromState(items))
		return m, tea.Batch(cmd, listenForChange(m.changes))

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	}

	if m.form.Active() {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	if keyMsg, isKey := msg.(tea.KeyMsg); isKey && m.list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "q", "esc":
			m.unsub()
			return m, tea.Quit
		case "a":
			m.form = m.form.Focus()
			return m, nil
		case "r":
			m.store.Dispatch(flux.LoadItems(flux.Seed()))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m tuiModel) View() string {
	listHeight := m.height - 4
	if m.form.Active() {
		listHeight = m.height - 7
	}
	m.list.SetSize(m.width-4, listHeight)

	content := m.list.View()
	if m.form.Active() {
		content += "\n" + m.form.View()
	}
	return panelStyle.Render(content)
}

// runInteractiveList starts the Bubble Tea program over an already
// bootstrapped store. State lives for the session only.
func runInteractiveList(store *flux.Store) error {
	p := tea.NewProgram(newTUIModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
