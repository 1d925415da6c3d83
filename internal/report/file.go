package report

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/homophones/internal/model"
)

// File modes for outputs. The results are plain word lists, so they are
// world-readable unlike the directories that hold them.
const (
	dirPerm  os.FileMode = 0o750
	filePerm os.FileMode = 0o644
)

// WritePairs writes pairs to path, replacing any existing file.
func WritePairs(path string, pairs model.PairCollection, logger *slog.Logger) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := NewPairsWriter(w, logger).WritePairs(pairs)
		return err
	})
}

// WriteSingles writes singles to path, replacing any existing file.
func WriteSingles(path string, singles model.SingleList) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := NewSinglesWriter(w).WriteSingles(singles)
		return err
	})
}

// WriteSummary writes the Markdown summary of run to path, replacing any
// existing file.
func WriteSummary(path string, run *model.Run) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := NewMarkdownWriter(w).Write(run)
		return err
	})
}

// writeFile streams content into a temporary file next to path and renames
// it over path once everything is written. On failure the temporary file is
// removed and path is not touched.
//
// Design decision: The temporary file lives in the destination directory
// so the final rename never crosses a filesystem boundary.
func writeFile(path string, content func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			err = &OutputWriteError{Path: path, Err: errors.Join(err, cleanup(tmp))}
		}
	}()

	if err := content(tmp); err != nil {
		return err
	}
	if err := tmp.Chmod(filePerm); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// cleanup closes and removes an abandoned temporary file.
func cleanup(tmp *os.File) error {
	_ = tmp.Close() //nolint:errcheck // may already be closed
	if err := os.Remove(tmp.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
