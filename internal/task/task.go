// Package task persists named tasks in a single structured document on disk.
package task

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Status is the completion state of a task.
type Status int

const (
	// Pending is the initial status of every task.
	Pending Status = iota
	// Done is set by Tick and never reverted.
	Done
)

// Tags written to the document. They match documents produced by earlier
// versions of the tool, so existing files keep loading.
const (
	pendingTag = "ToDo"
	doneTag    = "Done"
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

func (s Status) tag() (string, error) {
	switch s {
	case Pending:
		return pendingTag, nil
	case Done:
		return doneTag, nil
	default:
		return "", fmt.Errorf("unknown status %d", int(s))
	}
}

func parseTag(tag string) (Status, error) {
	switch tag {
	case pendingTag:
		return Pending, nil
	case doneTag:
		return Done, nil
	default:
		return 0, fmt.Errorf("unknown status %q", tag)
	}
}

// MarshalJSON implements json.Marshaler.
func (s Status) MarshalJSON() ([]byte, error) {
	tag, err := s.tag()
	if err != nil {
		return nil, err
	}
	return json.Marshal(tag)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Status) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("status must be a string: %w", err)
	}
	parsed, err := parseTag(tag)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Status) MarshalYAML() (any, error) {
	return s.tag()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Status) UnmarshalYAML(node *yaml.Node) error {
	var tag string
	if err := node.Decode(&tag); err != nil {
		return fmt.Errorf("status must be a string: %w", err)
	}
	parsed, err := parseTag(tag)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Task is a single named entry in the store.
type Task struct {
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status"      yaml:"status"`
}

// IsDone reports whether the task has been ticked.
func (t Task) IsDone() bool {
	return t.Status == Done
}
