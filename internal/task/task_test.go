package task

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "status(9)", Status(9).String())
}

func TestStatus_JSONTags(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Task{Name: "a", Status: Done})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a","description":"","status":"Done"}`, string(data))

	var got Task
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","description":"","status":"ToDo"}`), &got))
	assert.Equal(t, Pending, got.Status)

	err = json.Unmarshal([]byte(`{"status":"done"}`), &got)
	assert.ErrorContains(t, err, `unknown status "done"`)
}

func TestStatus_YAMLTags(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(Task{Name: "a", Status: Pending})
	require.NoError(t, err)
	assert.Contains(t, string(data), "status: ToDo")

	var got Task
	require.NoError(t, yaml.Unmarshal([]byte("name: a\nstatus: Done\n"), &got))
	assert.Equal(t, Done, got.Status)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]Format{
		"":      FormatAuto,
		"auto":  FormatAuto,
		"JSON":  FormatJSON,
		" yaml": FormatYAML,
		"yml":   FormatYAML,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("toml")
	assert.Error(t, err)
}

func TestFormat_TextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{FormatAuto, FormatJSON, FormatYAML} {
		text, err := f.MarshalText()
		require.NoError(t, err)

		var got Format
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, f, got)
	}
}

func TestFormat_Resolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatJSON, FormatAuto.resolve("todo.json"))
	assert.Equal(t, FormatJSON, FormatAuto.resolve("todo"))
	assert.Equal(t, FormatYAML, FormatAuto.resolve("todo.YAML"))
	assert.Equal(t, FormatYAML, FormatAuto.resolve("dir/todo.yml"))
	assert.Equal(t, FormatJSON, FormatJSON.resolve("todo.yaml"))
}
