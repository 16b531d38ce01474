package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/metalagman/todo/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasks_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Tasks(&buf, nil, Plain))
	assert.Equal(t, "no tasks\n", buf.String())
}

func TestTasks_PlainAlignsNames(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		{Name: "a", Description: "first", Status: task.Pending},
		{Name: "longer", Description: "second\nline", Status: task.Done},
		{Name: "bare", Status: task.Pending},
	}

	var buf bytes.Buffer
	require.NoError(t, Tasks(&buf, tasks, Plain))
	assert.Equal(t, strings.Join([]string{
		"[ ] a       first",
		"[x] longer  second line",
		"[ ] bare",
		"",
	}, "\n"), buf.String())
}

func TestTasks_ColorKeepsContent(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{{Name: "a", Description: "x", Status: task.Done}}

	var buf bytes.Buffer
	require.NoError(t, Tasks(&buf, tasks, Options{Color: true}))
	assert.Contains(t, buf.String(), "[x]")
	assert.Contains(t, buf.String(), "a")
	assert.Contains(t, buf.String(), "x")
}

func TestTask_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Task(&buf, task.Task{Name: "a", Description: "line one\nline two", Status: task.Done}, Plain))
	assert.Equal(t, "name:   a\nstatus: done\n\nline one\nline two\n", buf.String())
}

func TestTask_NoDescription(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Task(&buf, task.Task{Name: "a"}, Plain))
	assert.Equal(t, "name:   a\nstatus: pending\n", buf.String())
}

func TestTask_Markdown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	desc := "# Groceries\n\n- milk\n- bread\n"
	require.NoError(t, Task(&buf, task.Task{Name: "shop", Description: desc}, Options{Markdown: true, Width: 40}))

	out := buf.String()
	assert.Contains(t, out, "status: pending")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "milk")
	assert.Contains(t, out, "bread")
}

func TestMarker(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[ ]", Marker(task.Task{Status: task.Pending}))
	assert.Equal(t, "[x]", Marker(task.Task{Status: task.Done}))
}
