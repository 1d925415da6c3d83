package wordlist

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nao1215/homophones/internal/model"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Loader reads word-list files.
type Loader struct {
	// logger receives LineDecodeError warnings.
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used to report skipped lines.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader with the given options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Load reads every file in paths, in order, and returns the combined
// vocabulary. The first file that cannot be read stops the load.
func (l *Loader) Load(ctx context.Context, paths []string) (model.Vocabulary, error) {
	words := make([]string, 0)

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		fileWords, err := l.loadFile(path)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("word list read", "path", path, "lines", len(fileWords))
		words = append(words, fileWords...)
	}

	return model.NewVocabulary(words), nil
}

// loadFile reads a single file. The file handle is closed on every path.
func (l *Loader) loadFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // Reading user-provided word lists is the purpose
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	return l.readLines(path, f)
}

// readLines collects the lines of r. Invalid lines are logged and dropped.
// Lines have no length limit; a final line without a trailing newline is
// still returned.
func (l *Loader) readLines(path string, r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var (
		lines  []string
		lineNo int
	)
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &FileAccessError{Path: path, Err: err}
		}
		if raw == "" && err != nil {
			break
		}

		lineNo++
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")

		if verr := validateLine(line); verr != nil {
			l.reportSkipped(&LineDecodeError{Path: path, Line: lineNo, Err: verr})
		} else {
			lines = append(lines, line)
		}

		if err != nil {
			break
		}
	}

	return lines, nil
}

// reportSkipped logs a line that could not be decoded.
func (l *Loader) reportSkipped(err *LineDecodeError) {
	l.logger.Warn("skipping unreadable line",
		"path", err.Path,
		"line", err.Line,
		"error", err.Err,
	)
}

// validateLine checks that line is well-formed UTF-8.
func validateLine(line string) error {
	if _, _, err := transform.String(encoding.UTF8Validator, line); err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return ErrInvalidUTF8
		}
		return err
	}
	return nil
}
