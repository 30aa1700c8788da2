package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/td0m/picklist/internal/ui"
	"github.com/td0m/picklist/pkg/selection"
)

const DefaultTitle = "Welcome to the Selectable List Example!"

type Option func(*Model)

func WithTitle(title string) Option {
	return func(m *Model) {
		m.header.Title = title
	}
}

func WithHelp(show bool) Option {
	return func(m *Model) {
		m.showHelp = show
	}
}

func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// Model is a bubbletea model that lets the user move through a list and
// toggle items
type Model struct {
	list *selection.List

	keys     KeyMap
	help     help.Model
	header   ui.Header
	showHelp bool
	quitting bool

	log zerolog.Logger
}

// New creates a picker over an existing list. The list is mutated in place.
func New(list *selection.List, opts ...Option) *Model {
	m := &Model{
		list:     list,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		header:   ui.NewHeader(DefaultTitle),
		showHelp: true,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.header.Width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m, m.keyUpdate(msg)
	}
	return m, nil
}

// keyUpdate dispatches a key, first matching binding wins
func (m *Model) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Interrupt), key.Matches(msg, m.keys.Quit):
		m.log.Debug().Str("key", msg.String()).Msg("quit")
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.list.Toggle()
		m.log.Debug().Int("cursor", m.list.Cursor()).Bool("selected", m.list.Current().Selected).Msg("toggle")
	case key.Matches(msg, m.keys.Up):
		m.list.Move(-1)
		m.log.Debug().Int("cursor", m.list.Cursor()).Msg("move")
	case key.Matches(msg, m.keys.Down):
		m.list.Move(1)
		m.log.Debug().Int("cursor", m.list.Cursor()).Msg("move")
	}
	return nil
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	h := m.header
	if m.showHelp {
		h.Info = fmt.Sprintf("%d/%d selected", m.list.SelectedCount(), m.list.Len())
	}
	b.WriteString(h.View())

	cursor := m.list.Cursor()
	for i, it := range m.list.Items() {
		b.WriteString(ui.RenderItem(it, i == cursor))
		b.WriteString("\n")
	}
	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
		b.WriteString("\n")
	}
	return b.String()
}

// List returns the list the picker operates on
func (m *Model) List() *selection.List {
	return m.list
}

// Quitting reports whether an exit key was pressed
func (m *Model) Quitting() bool {
	return m.quitting
}
