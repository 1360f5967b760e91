// Package tui is the interactive table: a Bubble Tea list over the
// collection store's snapshots, with inline rename and delete. The view
// only reads snapshots and issues store calls; it never touches
// collection memory.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/triptych/internal/collection"
	"github.com/idilsaglam/triptych/internal/model"
)

// listItem adapts a collection item to bubbles/list.Item.
type listItem struct {
	item *model.Item
}

func (i listItem) Title() string       { return i.item.Post.Title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Post.Title }

// snapshotMsg carries a freshly published collection snapshot.
type snapshotMsg []*model.Item

// loadFailedMsg reports the one-shot initial load failing.
type loadFailedMsg struct{ err error }

// itemDelegate renders one item per line: id, title, album, username.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, _ := item.(listItem)
	if li.item == nil {
		return
	}
	line := fmt.Sprintf("%s %s %s %s",
		idStyle.Render(fmt.Sprintf("%3d.", li.item.ID)),
		li.item.Post.Title,
		albumStyle.Render("— "+li.item.Album.Title),
		userStyle.Render("@"+li.item.User.Username),
	)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type Model struct {
	store    *collection.Store
	quantity int

	list list.Model

	// Initial load state. The batch is all-or-nothing, so until it
	// lands (or fails) there is nothing to show.
	loading bool
	loadErr error

	// Inline rename. The edit targets an item id, not a list index, so
	// a snapshot arriving mid-edit cannot redirect the commit.
	editing bool
	editID  int
	ti      textinput.Model
	editErr string

	width, height int
}

func New(store *collection.Store, quantity int) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Items")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("item", "items")

	editBind := key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "rename"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{editBind, delBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{editBind, delBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New title..."
	ti.CharLimit = 200

	return Model{
		store:    store,
		quantity: quantity,
		list:     l,
		ti:       ti,
		loading:  true,
		editID:   -1,
	}
}

// Init kicks off the one-shot batch load. The resulting snapshot
// arrives through the store subscription, so success needs no message
// of its own.
func (m Model) Init() tea.Cmd {
	store, quantity := m.store, m.quantity
	return func() tea.Msg {
		if err := store.Init(context.Background(), quantity); err != nil {
			return loadFailedMsg{err: err}
		}
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeList()
		return m, nil

	case snapshotMsg:
		m.loading = false
		m.setItems(msg)
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.loadErr = msg.err
		return m, nil
	}

	if m.editing {
		return m.updateEditing(msg)
	}
	return m.updateViewing(msg)
}

func (m Model) updateViewing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "enter", "e":
			if it := m.selected(); it != nil {
				m.editing = true
				m.editID = it.ID
				m.editErr = ""
				m.ti.SetValue(it.Post.Title)
				m.ti.CursorEnd()
				m.ti.Focus()
			}
			return m, nil

		case "d", "ctrl+d":
			if it := m.selected(); it != nil {
				return m, m.deleteCmd(it.ID)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			title := strings.TrimSpace(m.ti.Value())
			if title == "" {
				m.editErr = "Title cannot be empty"
				return m, nil
			}
			// Commit is exactly one rename. If the row was deleted out
			// from under the edit, the store ignores the stale id.
			id := m.editID
			return m.stopEditing(), m.renameCmd(id, title)

		case "esc":
			// Cancel: no store call, original title stands.
			return m.stopEditing(), nil

		case "ctrl+d":
			// Delete is allowed mid-edit; the pending text is dropped.
			id := m.editID
			return m.stopEditing(), m.deleteCmd(id)

		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// Store mutations run as commands so the synchronous snapshot publish
// (which re-enters the program via Send) happens off the update loop.
func (m Model) renameCmd(id int, title string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		store.Rename(id, title)
		return nil
	}
}

func (m Model) deleteCmd(id int) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		store.Delete(id)
		return nil
	}
}

func (m Model) stopEditing() Model {
	m.editing = false
	m.editID = -1
	m.editErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resizeList()
	return m
}

func (m Model) View() string {
	if m.loading {
		return panelStyle.Render(mutedStyle.Render("loading items..."))
	}
	if m.loadErr != nil {
		return panelStyle.Render(
			errorStyle.Render("failed to populate") + "\n" +
				mutedStyle.Render(m.loadErr.Error()) + "\n\n" +
				helpStyle.Render("q quit"))
	}

	content := m.list.View()
	if m.editing {
		title := "Rename item"
		if m.editErr != "" {
			title += " — " + errorStyle.Render(m.editErr)
		}
		content += "\n" + panelStyle.Render(title+"\n"+m.ti.View())
	}
	return panelStyle.Render(content)
}

// setItems swaps in a new snapshot, keeping the cursor near where it
// was.
func (m *Model) setItems(items []*model.Item) {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{item: it})
	}
	idx := m.list.Index()
	m.list.SetItems(li)
	if idx >= len(li) {
		idx = len(li) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
	m.list.Title = fmt.Sprintf("%s  %s %d",
		titleStyle.Render("Items"),
		accentStyle.Render("Total"), len(items),
	)
}

func (m *Model) selected() *model.Item {
	if li, ok := m.list.SelectedItem().(listItem); ok {
		return li.item
	}
	return nil
}

func (m *Model) resizeList() {
	w, h := m.width, m.height
	if w == 0 || h == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.editing {
		listHeight = h - 7
	}
	m.list.SetSize(w-4, listHeight)
}

// Run wires the store's snapshot stream into a Bubble Tea program and
// blocks until the user quits.
func Run(store *collection.Store, quantity int) error {
	p := tea.NewProgram(New(store, quantity), tea.WithAltScreen())
	store.Subscribe(func(items []*model.Item) {
		p.Send(snapshotMsg(items))
	})
	_, err := p.Run()
	return err
}
