package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shoplist/internal/flux"
)

func press(t *testing.T, m tuiModel, keys ...tea.KeyMsg) tuiModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(tuiModel)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAddFlowDispatchesThroughTheStore(t *testing.T) {
	store := bootstrap()
	m := newTUIModel(store)
	require.Len(t, store.GetState(), 3)

	m = press(t, m, runes("a"))
	assert.True(t, m.form.Active())

	m = press(t, m, runes("chocolate"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.form.Active())

	state := store.GetState()
	require.Len(t, state, 4)
	assert.Equal(t, "chocolate", state[3].Description)
}

func TestStoreNotificationReachesTheProgram(t *testing.T) {
	store := bootstrap()
	m := newTUIModel(store)

	store.Dispatch(flux.AddItem("jam"))

	// The observer left a signal; the listen command must yield the
	// state-changed message without blocking.
	msg := listenForChange(m.changes)()
	require.IsType(t, stateChangedMsg{}, msg)

	next, _ := m.Update(msg)
	m = next.(tuiModel)
	assert.Len(t, m.list.Items(), 4)
}

func TestReloadRestoresTheSeed(t *testing.T) {
	store := bootstrap()
	store.Dispatch(flux.AddItem("chocolate"))
	m := newTUIModel(store)
	require.Len(t, store.GetState(), 4)

	m = press(t, m, runes("r"))

	state := store.GetState()
	require.Len(t, state, 3)
	assert.Equal(t, "milk", state[0].Description)
}

func TestQuitUnsubscribes(t *testing.T) {
	store := bootstrap()
	m := newTUIModel(store)

	next, cmd := m.Update(runes("q"))
	m = next.(tuiModel)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// After quitting, dispatches must not signal the dead observer.
	store.Dispatch(flux.AddItem("jam"))
	select {
	case <-m.changes:
		t.Fatal("unsubscribed observer still signaled")
	default:
	}
}

func TestEmptySubmitLeavesStateAlone(t *testing.T) {
	store := bootstrap()
	m := newTUIModel(store)

	m = press(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.form.Active())
	assert.Len(t, store.GetState(), 3)
}
