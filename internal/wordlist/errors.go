package wordlist

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is the cause carried by a LineDecodeError when the line
// contains bytes that are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("line is not valid UTF-8")

// FileAccessError is returned when a word-list file cannot be opened or read.
// It is fatal for the whole load: unreadable files are never skipped.
type FileAccessError struct {
	// Path is the file that could not be read.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read word list %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// LineDecodeError describes a single line that could not be read as text.
// The loader logs it and moves on to the next line.
type LineDecodeError struct {
	// Path is the file the line belongs to.
	Path string

	// Line is the 1-based line number.
	Line int

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *LineDecodeError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LineDecodeError) Unwrap() error {
	return e.Err
}
