package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/codemarket/internal/market"
	"github.com/five82/codemarket/internal/prefs"
	"github.com/five82/codemarket/internal/state"
)

func testSeed() []market.Listing {
	return []market.Listing{
		{ID: 1, Title: "Alpha", Price: 1000, Code: "a()", Description: "first", Language: "Go(Golang)", CreatedAt: "today"},
		{ID: 2, Title: "Beta", Price: 2000, Code: "b()", Description: "second", Language: "Rust", CreatedAt: "today", SoldOut: true},
		{ID: 3, Title: "Gamma", Price: 3000, Code: "c()", Description: "third", Language: "SQL", CreatedAt: "today"},
	}
}

func newTestModel(t *testing.T, seed []market.Listing, configure ...func(*Options)) Model {
	t.Helper()
	opts := Options{
		Store:  state.NewStore(market.NewState(seed), zerolog.Nop()),
		Logger: zerolog.Nop(),
	}
	for _, fn := range configure {
		fn(&opts)
	}
	m := New(opts)
	t.Cleanup(m.bridge.close)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = press(m, string(r))
	}
	return m
}

func selectedID(t *testing.T, m Model) int {
	t.Helper()
	id, ok := m.snapshot.State.Selected.ID()
	require.True(t, ok, "expected a selection")
	return id
}

// nextDialog waits for the bridge to deliver a request and feeds it to m.
func nextDialog(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.bridge.listen()()
	require.IsType(t, dialogMsg{}, msg)
	next, _ := m.Update(msg)
	m = next.(Model)
	require.NotNil(t, m.dialog)
	return m
}

func runAsync(cmd tea.Cmd) <-chan tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	return done
}

func TestCursorMovesSelection(t *testing.T) {
	m := newTestModel(t, testSeed())
	assert.Equal(t, 1, selectedID(t, m))
	assert.Equal(t, 0, m.cursor)

	m, _ = press(m, "j")
	assert.Equal(t, 2, selectedID(t, m), "sold rows stay selectable by default")
	assert.Equal(t, 1, m.cursor)

	m, _ = press(m, "G")
	assert.Equal(t, 3, selectedID(t, m))

	m, _ = press(m, "g")
	assert.Equal(t, 1, selectedID(t, m))

	m, _ = press(m, "esc")
	assert.True(t, m.snapshot.State.Selected.IsNone())

	m, _ = press(m, "enter")
	assert.Equal(t, 1, selectedID(t, m))
}

func TestLockSoldRowsSkipsSoldListings(t *testing.T) {
	m := newTestModel(t, testSeed(), func(o *Options) {
		o.Present.LockSoldRows = true
	})

	m, _ = press(m, "j")
	assert.Equal(t, 3, selectedID(t, m))
	assert.Equal(t, 2, m.cursor)

	m, _ = press(m, "k")
	assert.Equal(t, 1, selectedID(t, m))
}

func TestFilterCyclesAndPersists(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := newTestModel(t, testSeed(), func(o *Options) {
		o.PrefsPath = prefsPath
	})

	m, _ = press(m, "f")
	assert.Equal(t, FilterForSale, m.filter)
	assert.Len(t, m.visibleListings(), 2)
	assert.Equal(t, 1, selectedID(t, m), "visible selection is kept")
	assert.Equal(t, FilterForSale, Filter(prefs.Load(prefsPath).Filter))

	m, _ = press(m, "f")
	assert.Equal(t, FilterSold, m.filter)
	assert.Equal(t, 2, selectedID(t, m), "hidden selection moves to the first visible row")

	m, _ = press(m, "f")
	assert.Equal(t, FilterAll, m.filter)
	assert.Equal(t, 2, selectedID(t, m))
	assert.Equal(t, 1, m.cursor)
}

func TestFilterFromPrefs(t *testing.T) {
	m := newTestModel(t, testSeed(), func(o *Options) {
		o.Filter = prefs.FilterSold
	})
	assert.Equal(t, FilterSold, m.filter)

	m = newTestModel(t, testSeed(), func(o *Options) {
		o.Filter = "bogus"
	})
	assert.Equal(t, FilterAll, m.filter)
}

func TestCreateThroughForm(t *testing.T) {
	m := newTestModel(t, testSeed())

	m, _ = press(m, "a")
	require.True(t, m.snapshot.State.FormVisible)
	assert.False(t, m.form.edit)
	assert.Equal(t, "Upload code", m.form.heading())
	assert.Equal(t, "Register", m.form.submitLabel())

	m = typeText(m, "Delta")
	m, _ = press(m, "tab")
	m = typeText(m, "4500")
	m, _ = press(m, "tab", "right")
	m, _ = press(m, "tab")
	m = typeText(m, "fourth")
	m, _ = press(m, "tab")
	m = typeText(m, "d()")

	m, _ = press(m, "ctrl+s")
	require.Nil(t, m.dialog)

	st := m.snapshot.State
	assert.False(t, st.FormVisible)
	require.Len(t, st.Listings, 4)
	created := st.Listings[0]
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "Delta", created.Title)
	assert.Equal(t, 4500, created.Price)
	assert.Equal(t, "fourth", created.Description)
	assert.Equal(t, "d()", created.Code)
	assert.Equal(t, market.NextLanguage(market.DefaultLanguage), created.Language)
	assert.Equal(t, 4, selectedID(t, m))
	assert.Equal(t, 0, m.cursor)
}

func TestFormValidationKeepsFormOpen(t *testing.T) {
	m := newTestModel(t, testSeed())
	m, _ = press(m, "a")

	m, _ = press(m, "ctrl+s")
	require.NotNil(t, m.dialog)
	assert.Equal(t, dialogAlert, m.dialog.kind)
	assert.Equal(t, market.MissingFields, m.dialog.text)
	assert.Len(t, m.snapshot.State.Listings, 3)

	m, _ = press(m, "enter")
	assert.Nil(t, m.dialog)
	assert.True(t, m.snapshot.State.FormVisible)

	m = typeText(m, "Delta")
	m, _ = press(m, "tab")
	m = typeText(m, "lots")
	m, _ = press(m, "tab", "tab")
	m = typeText(m, "desc")
	m, _ = press(m, "tab")
	m = typeText(m, "code")

	m, _ = press(m, "ctrl+s")
	require.NotNil(t, m.dialog)
	assert.Equal(t, market.InvalidPrice, m.dialog.text)

	m, _ = press(m, "x")
	assert.Equal(t, "Delta", m.form.fields().Title, "values survive the alert")

	m, _ = press(m, "esc")
	assert.False(t, m.snapshot.State.FormVisible)
	assert.Len(t, m.snapshot.State.Listings, 3)
}

func TestEditThroughForm(t *testing.T) {
	m := newTestModel(t, testSeed())
	m, _ = press(m, "j", "e")

	require.True(t, m.snapshot.State.EditMode)
	assert.True(t, m.form.edit)
	assert.Equal(t, "Edit code", m.form.heading())
	assert.Equal(t, "Save changes", m.form.submitLabel())
	assert.Equal(t, market.FieldsFor(testSeed()[1]), m.form.fields())

	m = typeText(m, "!")
	m, _ = press(m, "ctrl+s")

	l, ok := m.snapshot.State.Find(2)
	require.True(t, ok)
	assert.Contains(t, l.Title, "Beta")
	assert.Contains(t, l.Title, "!")
	assert.True(t, l.SoldOut)
	assert.False(t, m.snapshot.State.FormVisible)
	assert.False(t, m.snapshot.State.EditMode)
}

func TestEditSavedUnchangedKeepsLongValues(t *testing.T) {
	long := market.Listing{
		ID:          1,
		Title:       strings.Repeat("t", 130),
		Price:       1234567890123,
		Code:        "x()",
		Description: "long",
		Language:    "Go(Golang)",
		CreatedAt:   "today",
	}
	m := newTestModel(t, []market.Listing{long})
	m, _ = press(m, "e")
	require.True(t, m.snapshot.State.FormVisible)

	m, _ = press(m, "ctrl+s")

	assert.Nil(t, m.dialog)
	assert.False(t, m.snapshot.State.FormVisible)
	got, ok := m.snapshot.State.Find(1)
	require.True(t, ok)
	assert.Equal(t, long, got)
}

func TestEditWithoutSelectionDoesNothing(t *testing.T) {
	m := newTestModel(t, testSeed())
	m, _ = press(m, "esc", "e")
	assert.False(t, m.snapshot.State.FormVisible)
}

func TestPurchaseGoesThroughDialogs(t *testing.T) {
	m := newTestModel(t, testSeed())
	m, _ = press(m, "G")

	m, cmd := press(m, "b")
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	done := runAsync(cmd)

	m = nextDialog(t, m)
	assert.Equal(t, dialogConfirm, m.dialog.kind)
	assert.Equal(t, market.ConfirmPurchase("Gamma"), m.dialog.text)

	m, _ = press(m, "j")
	require.NotNil(t, m.dialog, "unrelated keys leave the confirm open")

	m, _ = press(m, "y")
	assert.Nil(t, m.dialog)

	m = nextDialog(t, m)
	assert.Equal(t, dialogAlert, m.dialog.kind)
	assert.Equal(t, market.Purchased("Gamma"), m.dialog.text)
	m, _ = press(m, "enter")

	next, _ := m.Update(<-done)
	m = next.(Model)
	assert.False(t, m.busy)
	l, _ := m.snapshot.State.Find(3)
	assert.True(t, l.SoldOut)
	assert.Equal(t, 3, selectedID(t, m))
}

func TestBusyIgnoresInteraction(t *testing.T) {
	m := newTestModel(t, testSeed())
	m, cmd := press(m, "d")
	require.NotNil(t, cmd)
	done := runAsync(cmd)

	m, extra := press(m, "a")
	assert.Nil(t, extra)
	assert.False(t, m.snapshot.State.FormVisible)

	m = nextDialog(t, m)
	m, _ = press(m, "n")
	next, _ := m.Update(<-done)
	m = next.(Model)

	assert.False(t, m.busy)
	assert.Len(t, m.snapshot.State.Listings, 3)
	assert.Equal(t, 1, selectedID(t, m))
}

func TestDeleteClearsSelection(t *testing.T) {
	m := newTestModel(t, testSeed())
	m, cmd := press(m, "d")
	done := runAsync(cmd)

	m = nextDialog(t, m)
	assert.Equal(t, market.ConfirmDelete("Alpha"), m.dialog.text)
	m, _ = press(m, "enter")
	m = nextDialog(t, m)
	assert.Equal(t, market.Deleted("Alpha"), m.dialog.text)
	m, _ = press(m, "enter")

	next, _ := m.Update(<-done)
	m = next.(Model)
	assert.Len(t, m.snapshot.State.Listings, 2)
	assert.True(t, m.snapshot.State.Selected.IsNone())
	assert.Contains(t, m.View(), market.EmptySelectionMessage)
}

func TestQuitAnswersPendingDialogWithNo(t *testing.T) {
	m := newTestModel(t, testSeed())
	m, cmd := press(m, "b")
	done := runAsync(cmd)
	m = nextDialog(t, m)

	_, quit := press(m, "ctrl+c")
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())

	msg := (<-done).(dispatchedMsg)
	l, _ := msg.snapshot.State.Find(1)
	assert.False(t, l.SoldOut)
}

func TestThemeCyclePersists(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := newTestModel(t, testSeed(), func(o *Options) {
		o.PrefsPath = prefsPath
	})
	assert.Equal(t, DefaultThemeName, m.theme.Name)

	m, _ = press(m, "T")
	assert.Equal(t, "Nightfox", m.theme.Name)
	assert.Equal(t, "Nightfox", prefs.Load(prefsPath).Theme)
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m := newTestModel(t, testSeed())
	m, _ = press(m, "?")
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = press(m, "j")
	assert.False(t, m.showHelp)
	assert.Equal(t, 1, selectedID(t, m), "the closing key is not replayed")
}

func TestViewShowsListingsAndEmptyStore(t *testing.T) {
	m := newTestModel(t, testSeed())
	view := m.View()
	assert.Contains(t, view, "Alpha")
	assert.Contains(t, view, market.SoldOutLabel)
	assert.Contains(t, view, "1,000 KRW")

	empty := newTestModel(t, nil)
	view = empty.View()
	assert.Contains(t, view, market.EmptyListMessage)
	assert.Contains(t, view, market.EmptySelectionMessage)
}

func TestActivityViewToggle(t *testing.T) {
	m := newTestModel(t, testSeed())
	m, cmd := press(m, "l")
	assert.Equal(t, ViewActivity, m.currentView)
	assert.NotNil(t, cmd)

	m, _ = press(m, "l")
	assert.Equal(t, ViewMarket, m.currentView)
}
