package task

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNotFound is returned when no task has the requested name.
	ErrNotFound = errors.New("task does not exist")
	// ErrDuplicateName is returned by Add when the name is already taken.
	ErrDuplicateName = errors.New("task already exists")
	// ErrInvalidText is returned when a name or description is not valid UTF-8.
	ErrInvalidText = errors.New("text is not valid UTF-8")
	// ErrIO matches any *StorageError.
	ErrIO = errors.New("task document i/o failure")
	// ErrDecode matches any *DecodeError.
	ErrDecode = errors.New("task document is invalid")
	// ErrEncode matches any *EncodeError.
	ErrEncode = errors.New("task document cannot be encoded")
)

// StorageError reports a failure to read or write the document.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrIO) hold.
func (e *StorageError) Is(target error) bool { return target == ErrIO }

// DecodeError reports a document that exists but is not a valid task list.
// Problems lists individual schema violations when any were collected.
type DecodeError struct {
	Path     string
	Err      error
	Problems []string
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decode %s", e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if len(e.Problems) > 0 {
		msg += ": " + strings.Join(e.Problems, "; ")
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// EncodeError reports a task list that could not be serialized.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode tasks: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func (e *EncodeError) Is(target error) bool { return target == ErrEncode }

func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

func duplicate(name string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateName, name)
}

// checkText rejects input the document encoders would silently rewrite.
func checkText(name, description string) error {
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: name %q", ErrInvalidText, name)
	}
	if !utf8.ValidString(description) {
		return fmt.Errorf("%w: description of %q", ErrInvalidText, name)
	}
	return nil
}
