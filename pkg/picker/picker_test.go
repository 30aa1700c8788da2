package picker

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matryer/is"
	"github.com/muesli/termenv"
	"github.com/td0m/picklist/pkg/selection"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newPicker(t *testing.T) *Model {
	l, err := selection.New([]string{"Item 1", "Item 2", "Item 3", "Item 4"})
	if err != nil {
		t.Fatal(err)
	}
	return New(l)
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func selected(m *Model) []bool {
	out := []bool{}
	for _, it := range m.List().Items() {
		out = append(out, it.Selected)
	}
	return out
}

func TestModel_Session(t *testing.T) {
	is := is.New(t)
	m := newPicker(t)

	press(m, keyDown)
	is.Equal(m.List().Cursor(), 1)
	press(m, keySpace)
	is.Equal(selected(m), []bool{false, true, false, false})
	press(m, keyUp)
	is.Equal(m.List().Cursor(), 0)
	press(m, keyEnter)
	is.Equal(selected(m), []bool{true, true, false, false})
	press(m, keyTab)
	is.Equal(m.List().Cursor(), 1)

	is.True(isQuit(press(m, runes("q"))))
	is.True(m.Quitting())
	is.Equal(selected(m), []bool{true, true, false, false})
}

func TestModel_Quit(t *testing.T) {
	altQ := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}, Alt: true}
	for _, k := range []tea.KeyMsg{keyCtrlC, keyEsc, runes("q"), altQ} {
		t.Run(k.String(), func(t *testing.T) {
			is := is.New(t)
			m := newPicker(t)
			press(m, keyDown, keySpace)
			is.True(isQuit(press(m, k)))
			is.True(m.Quitting())
			is.Equal(m.View(), "")
		})
	}
}

func TestModel_IgnoresUnboundKeys(t *testing.T) {
	is := is.New(t)
	m := newPicker(t)
	press(m, keyDown)
	for _, k := range []tea.KeyMsg{runes("j"), runes("x"), runes("Q"), {Type: tea.KeyLeft}, {Type: tea.KeyCtrlD}} {
		cmd := press(m, k)
		is.Equal(cmd, nil)
	}
	is.Equal(m.List().Cursor(), 1)
	is.Equal(selected(m), []bool{false, false, false, false})
	is.True(!m.Quitting())
}

func TestModel_Wraps(t *testing.T) {
	is := is.New(t)
	m := newPicker(t)
	press(m, keyUp)
	is.Equal(m.List().Cursor(), 3)
	press(m, keyTab)
	is.Equal(m.List().Cursor(), 0)
}

func TestModel_View(t *testing.T) {
	t.Run("initial frame", func(t *testing.T) {
		is := is.New(t)
		v := newPicker(t).View()
		is.True(strings.Contains(v, DefaultTitle))
		is.True(strings.Contains(v, "0/4 selected"))
		is.True(strings.Contains(v, "> Item 1\n"))
		is.True(strings.Contains(v, "  Item 2\n"))
		is.True(strings.Contains(v, "quit"))
	})

	t.Run("selected cursor row", func(t *testing.T) {
		is := is.New(t)
		m := newPicker(t)
		press(m, keySpace, keyDown)
		v := m.View()
		is.True(strings.Contains(v, "  Item 1\n"))
		is.True(strings.Contains(v, "> Item 2\n"))
		press(m, keyUp)
		is.True(strings.Contains(m.View(), "* Item 1\n"))
		is.True(strings.Contains(m.View(), "1/4 selected"))
	})

	t.Run("items are drawn in order", func(t *testing.T) {
		is := is.New(t)
		v := newPicker(t).View()
		last := -1
		for _, l := range []string{"Item 1", "Item 2", "Item 3", "Item 4"} {
			i := strings.Index(v, l)
			is.True(i > last)
			last = i
		}
	})

	t.Run("options", func(t *testing.T) {
		is := is.New(t)
		l, err := selection.New([]string{"a"})
		is.NoErr(err)
		v := New(l, WithTitle("Pick one"), WithHelp(false)).View()
		is.True(strings.Contains(v, "Pick one"))
		is.True(!strings.Contains(v, "quit"))
		is.True(!strings.Contains(v, "selected")) // counter goes with the footer
	})
}

func TestModel_WithKeyMap(t *testing.T) {
	is := is.New(t)
	l, err := selection.New([]string{"Item 1", "Item 2", "Item 3"})
	is.NoErr(err)
	keys := DefaultKeyMap()
	keys.Up = key.NewBinding(key.WithKeys("k"))
	keys.Down = key.NewBinding(key.WithKeys("j"))
	m := New(l, WithKeyMap(keys))

	press(m, runes("j"), runes("j"))
	is.Equal(m.List().Cursor(), 2)
	press(m, runes("k"))
	is.Equal(m.List().Cursor(), 1)
	press(m, keyDown, keyTab, keyUp) // default movement keys are no longer bound
	is.Equal(m.List().Cursor(), 1)
}
