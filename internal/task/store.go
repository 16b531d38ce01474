package task

import (
	"errors"
	"io/fs"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
)

// DefaultPath is the document location used when none is configured.
const DefaultPath = "todo.json"

// Store manages task persistence in a single document.
//
// Every operation loads the whole document, and every mutation rewrites it.
// Nothing is cached between calls and nothing is locked: two processes
// writing the same document can overwrite each other's changes.
type Store struct {
	path   string
	format Format
}

// Option configures a Store.
type Option func(*Store)

// WithFormat forces the document encoding instead of detecting it from the
// path extension.
func WithFormat(f Format) Option {
	return func(s *Store) {
		s.format = f
	}
}

// NewStore creates a task store backed by the document at path.
func NewStore(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultPath
	}
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Format returns the concrete document encoding.
func (s *Store) Format() Format {
	return s.format.resolve(s.path)
}

func (s *Store) codec() codec {
	return codecFor(s.Format())
}

// Load reads all tasks. A missing document yields an empty list.
func (s *Store) Load() ([]Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", s.path).Msg("task document not found, starting empty")
			return []Task{}, nil
		}
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}

	c := s.codec()
	tasks, err := c.Unmarshal(data)
	if err != nil {
		return nil, &DecodeError{Path: s.path, Err: err}
	}
	loader, err := c.Loader(data)
	if err != nil {
		return nil, &DecodeError{Path: s.path, Err: err}
	}
	problems, err := validateDocument(loader)
	if err != nil {
		return nil, &DecodeError{Path: s.path, Err: err}
	}
	if len(problems) > 0 {
		return nil, &DecodeError{Path: s.path, Problems: problems}
	}
	if tasks == nil {
		tasks = []Task{}
	}

	log.Debug().Str("path", s.path).Int("tasks", len(tasks)).Msg("tasks loaded")
	return tasks, nil
}

// Save replaces the document with tasks.
//
// The document is created if absent, but its directory must already exist.
// The write truncates the file in place. It is not atomic: if the process
// dies or the write fails part way, the document can be left truncated or
// empty, and the previous contents are lost.
func (s *Store) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := s.codec().Marshal(tasks)
	if err != nil {
		return &EncodeError{Err: err}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}

	log.Debug().Str("path", s.path).Int("tasks", len(tasks)).Msg("tasks saved")
	return nil
}

// Add appends a new pending task. The name must not already be in use and
// both strings must be valid UTF-8.
func (s *Store) Add(name, description string) (Task, error) {
	if err := checkText(name, description); err != nil {
		return Task{}, err
	}
	tasks, err := s.Load()
	if err != nil {
		return Task{}, err
	}
	if indexOf(tasks, name) >= 0 {
		return Task{}, duplicate(name)
	}

	t := Task{Name: name, Description: description, Status: Pending}
	tasks = append(tasks, t)
	if err := s.Save(tasks); err != nil {
		return Task{}, err
	}
	log.Debug().Str("task", name).Msg("task added")
	return t, nil
}

// Edit replaces the description of the named task.
func (s *Store) Edit(name, description string) (Task, error) {
	if err := checkText(name, description); err != nil {
		return Task{}, err
	}
	return s.update(name, func(t *Task) {
		t.Description = description
	})
}

// Tick marks the named task as done. Ticking a done task is a no-op that
// still succeeds.
func (s *Store) Tick(name string) (Task, error) {
	return s.update(name, func(t *Task) {
		t.Status = Done
	})
}

// Remove deletes the named task, keeping the order of the others.
func (s *Store) Remove(name string) error {
	tasks, err := s.Load()
	if err != nil {
		return err
	}
	idx := indexOf(tasks, name)
	if idx < 0 {
		return notFound(name)
	}

	tasks = slices.Delete(tasks, idx, idx+1)
	if err := s.Save(tasks); err != nil {
		return err
	}
	log.Debug().Str("task", name).Msg("task removed")
	return nil
}

// List returns every task in insertion order.
func (s *Store) List() ([]Task, error) {
	return s.Load()
}

// Get returns the named task without modifying the document.
func (s *Store) Get(name string) (Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return Task{}, err
	}
	idx := indexOf(tasks, name)
	if idx < 0 {
		return Task{}, notFound(name)
	}
	return tasks[idx], nil
}

func (s *Store) update(name string, apply func(*Task)) (Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return Task{}, err
	}
	idx := indexOf(tasks, name)
	if idx < 0 {
		return Task{}, notFound(name)
	}

	apply(&tasks[idx])
	if err := s.Save(tasks); err != nil {
		return Task{}, err
	}
	log.Debug().Str("task", name).Str("status", tasks[idx].Status.String()).Msg("task updated")
	return tasks[idx], nil
}

// indexOf returns the position of the first task named exactly name, or -1.
func indexOf(tasks []Task, name string) int {
	return slices.IndexFunc(tasks, func(t Task) bool {
		return t.Name == name
	})
}
