package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/triptych/internal/collection"
	"github.com/idilsaglam/triptych/internal/model"
)

type staticFetcher struct{}

func (staticFetcher) BatchFetch(_ context.Context, quantity int) ([]*model.Item, error) {
	items := make([]*model.Item, quantity)
	for i := range items {
		items[i] = &model.Item{
			ID:   i,
			Post: model.Post{Title: "A"},
			User: model.User{Username: "u1"},
		}
	}
	return items, nil
}

// loadedModel returns a Model showing a 3-item collection, plus its
// store for asserting mutations.
func loadedModel(t *testing.T) (Model, *collection.Store) {
	t.Helper()
	store := collection.New(staticFetcher{})
	require.NoError(t, store.Init(context.Background(), 3))

	m := New(store, 3)
	next, _ := m.Update(snapshotMsg(store.Items()))
	return next.(Model), store
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// runCmd executes a command returned by Update, feeding any resulting
// message back in.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	if msg := cmd(); msg != nil {
		next, _ := m.Update(msg)
		return next.(Model)
	}
	return m
}

func TestSnapshot_PopulatesList(t *testing.T) {
	m, _ := loadedModel(t)
	assert.False(t, m.loading)
	assert.Len(t, m.list.Items(), 3)
}

func TestEditCommit_IssuesExactlyOneRename(t *testing.T) {
	m, store := loadedModel(t)

	next, _ := m.Update(keyMsg("e"))
	m = next.(Model)
	require.True(t, m.editing)
	assert.Equal(t, 0, m.editID)
	assert.Equal(t, "A", m.ti.Value())

	m.ti.SetValue("Changed")
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)
	assert.False(t, m.editing)
	m = runCmd(t, m, cmd)

	items := store.Items()
	assert.Equal(t, "Changed", items[0].Post.Title)
	assert.Equal(t, "A", items[1].Post.Title)
}

func TestEditCancel_IssuesNoStoreCalls(t *testing.T) {
	m, store := loadedModel(t)

	next, _ := m.Update(keyMsg("e"))
	m = next.(Model)
	m.ti.SetValue("discarded draft")

	next, cmd := m.Update(keyMsg("esc"))
	m = next.(Model)
	assert.False(t, m.editing)
	assert.Nil(t, cmd)
	assert.Equal(t, "A", store.Items()[0].Post.Title)
}

func TestEditCommit_RejectsEmptyTitleInline(t *testing.T) {
	m, store := loadedModel(t)

	next, _ := m.Update(keyMsg("e"))
	m = next.(Model)
	m.ti.SetValue("   ")

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)
	assert.True(t, m.editing, "stay in edit mode on empty title")
	assert.NotEmpty(t, m.editErr)
	assert.Nil(t, cmd)
	assert.Equal(t, "A", store.Items()[0].Post.Title)
}

func TestDelete_FromViewing(t *testing.T) {
	m, store := loadedModel(t)

	next, cmd := m.Update(keyMsg("d"))
	m = next.(Model)
	runCmd(t, m, cmd)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
}

func TestDelete_FromEditing(t *testing.T) {
	m, store := loadedModel(t)

	next, _ := m.Update(keyMsg("e"))
	m = next.(Model)
	next, cmd := m.Update(keyMsg("ctrl+d"))
	m = next.(Model)
	assert.False(t, m.editing)
	runCmd(t, m, cmd)

	require.Len(t, store.Items(), 2)
}

func TestLoadFailure_ShowsEmptyErrorState(t *testing.T) {
	store := collection.New(staticFetcher{})
	m := New(store, 3)

	next, _ := m.Update(loadFailedMsg{err: assert.AnError})
	m = next.(Model)

	assert.False(t, m.loading)
	assert.Contains(t, m.View(), "failed to populate")
}
