// Package tui provides an interactive terminal browser for the task store.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/metalagman/todo/internal/render"
	"github.com/metalagman/todo/internal/task"
)

// Store is the subset of task.Store the browser drives.
type Store interface {
	List() ([]task.Task, error)
	Tick(name string) (task.Task, error)
	Remove(name string) error
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Tick   key.Binding
	Remove key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tick, k.Remove, k.Reload, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Tick:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "tick")),
		Remove: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type loadedMsg struct {
	tasks []task.Task
	err   error
}

// Model is the bubbletea model of the browser.
type Model struct {
	store  Store
	title  string
	tasks  []task.Task
	cursor int
	status string
	err    error
	keys   keyMap
	help   help.Model
	opts   render.Options
}

// New creates a browser over store. title is shown above the list and opts
// styles each row.
func New(store Store, title string, opts render.Options) Model {
	return Model{
		store: store,
		title: title,
		keys:  defaultKeys(),
		help:  help.New(),
		opts:  opts,
	}
}

// Init loads the task list.
func (m Model) Init() tea.Cmd {
	return m.load
}

func (m Model) load() tea.Msg {
	tasks, err := m.store.List()
	return loadedMsg{tasks: tasks, err: err}
}

// Update handles key presses and load results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return m.loaded(msg), nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Reload):
		m.status = ""
		return m.loaded(m.load().(loadedMsg)), nil
	case key.Matches(msg, m.keys.Tick):
		selected, ok := m.Selected()
		if !ok {
			return m, nil
		}
		if _, err := m.store.Tick(selected.Name); err != nil {
			m.err = err
			return m, nil
		}
		m.status = fmt.Sprintf("ticked %q", selected.Name)
		return m.loaded(m.load().(loadedMsg)), nil
	case key.Matches(msg, m.keys.Remove):
		selected, ok := m.Selected()
		if !ok {
			return m, nil
		}
		if err := m.store.Remove(selected.Name); err != nil {
			m.err = err
			return m, nil
		}
		m.status = fmt.Sprintf("removed %q", selected.Name)
		return m.loaded(m.load().(loadedMsg)), nil
	}
	return m, nil
}

func (m Model) loaded(msg loadedMsg) Model {
	m.err = msg.err
	if msg.err != nil {
		return m
	}
	m.tasks = msg.tasks
	if m.cursor >= len(m.tasks) {
		m.cursor = max(0, len(m.tasks)-1)
	}
	return m
}

// Selected returns the task under the cursor.
func (m Model) Selected() (task.Task, bool) {
	if len(m.tasks) == 0 {
		return task.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// Tasks returns the tasks currently shown.
func (m Model) Tasks() []task.Task {
	return m.tasks
}

// Err returns the last store error, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the browser.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styled(titleStyle, m.title))
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString("no tasks\n")
	}
	width := 0
	for _, t := range m.tasks {
		width = max(width, lipgloss.Width(t.Name))
	}
	for i, t := range m.tasks {
		line := render.Line(t, width, m.opts)
		if i == m.cursor {
			b.WriteString(m.styled(cursorStyle, "> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styled(errorStyle, "error: "+m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styled(statusStyle, m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) styled(style lipgloss.Style, text string) string {
	if !m.opts.Color {
		return text
	}
	return style.Render(text)
}
