package report

import "fmt"

// OutputWriteError is returned when an output file cannot be created or
// written. The destination is left untouched; outputs written before it
// are kept.
type OutputWriteError struct {
	// Path is the destination that could not be written.
	Path string

	// Err is the underlying I/O error.
	Err error
}

// Error implements the error interface.
func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
