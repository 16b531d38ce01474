// Package render formats tasks for terminal output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/metalagman/todo/internal/task"
)

// DefaultWidth is the wrap width for markdown descriptions.
const DefaultWidth = 80

// Options controls styling.
type Options struct {
	// Color enables lipgloss styles.
	Color bool
	// Markdown renders descriptions through glamour in the detail view.
	Markdown bool
	// Width wraps markdown output. Zero means DefaultWidth.
	Width int
}

// Plain disables all styling.
var Plain = Options{}

var (
	nameStyle    = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	markerDone   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Marker returns the checkbox shown in front of a task.
func Marker(t task.Task) string {
	if t.IsDone() {
		return "[x]"
	}
	return "[ ]"
}

// Tasks writes one line per task.
func Tasks(w io.Writer, tasks []task.Task, opts Options) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "no tasks")
		return err
	}

	width := 0
	for _, t := range tasks {
		width = max(width, lipgloss.Width(t.Name))
	}

	for _, t := range tasks {
		if _, err := fmt.Fprintln(w, Line(t, width, opts)); err != nil {
			return err
		}
	}
	return nil
}

// Line formats a single task, padding the name to width cells.
func Line(t task.Task, width int, opts Options) string {
	marker := Marker(t)
	name := t.Name + strings.Repeat(" ", max(0, width-lipgloss.Width(t.Name)))
	desc := singleLine(t.Description)

	if opts.Color {
		if t.IsDone() {
			marker = markerDone.Render(marker)
			name = doneStyle.Render(name)
			desc = doneStyle.Render(desc)
		} else {
			name = nameStyle.Render(name)
		}
	}

	line := marker + " " + name
	if desc != "" {
		line += "  " + desc
	}
	return strings.TrimRight(line, " ")
}

// Task writes the detail view of a single task.
func Task(w io.Writer, t task.Task, opts Options) error {
	status := t.Status.String()
	name := t.Name
	if opts.Color {
		name = nameStyle.Render(name)
		if t.IsDone() {
			status = markerDone.Render(status)
		} else {
			status = pendingStyle.Render(status)
		}
	}

	if _, err := fmt.Fprintf(w, "name:   %s\nstatus: %s\n", name, status); err != nil {
		return err
	}
	if strings.TrimSpace(t.Description) == "" {
		return nil
	}

	desc := t.Description
	if opts.Markdown {
		rendered, err := Markdown(desc, opts)
		if err != nil {
			return err
		}
		desc = rendered
	}
	_, err := fmt.Fprintf(w, "\n%s\n", strings.TrimRight(desc, "\n"))
	return err
}

// Markdown renders text as terminal markdown.
func Markdown(text string, opts Options) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if opts.Color {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// singleLine folds newlines so each task stays on one row.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
