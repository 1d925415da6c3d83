package wordlist

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/homophones/internal/model"
)

// writeWordList creates a word-list file in dir and returns its path.
func writeWordList(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// newTestLogger returns a logger writing warnings and above to buf.
func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// TestLoaderLoad tests reading and normalizing word lists.
func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	t.Run("combines, sorts and de-duplicates files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := writeWordList(t, dir, "a.txt", "there\nsun\n")
		second := writeWordList(t, dir, "b.txt", "sun\nair\n")

		got, err := NewLoader().Load(context.Background(), []string{first, second})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := model.Vocabulary{"air", "sun", "there"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Load() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps blank lines and surrounding whitespace verbatim", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeWordList(t, dir, "words.txt", "sun\n\n there\n\n")

		got, err := NewLoader().Load(context.Background(), []string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := model.Vocabulary{"", " there", "sun"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Load() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reads a final line without newline and strips CR", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeWordList(t, dir, "crlf.txt", "sun\r\nthere")

		got, err := NewLoader().Load(context.Background(), []string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := model.Vocabulary{"sun", "there"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Load() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("output is sorted and unique", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeWordList(t, dir, "words.txt", "b\na\nc\na\nB\nb\n")

		got, err := NewLoader().Load(context.Background(), []string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !slices.IsSorted(got) {
			t.Errorf("expected sorted vocabulary, got %v", got)
		}
		if len(slices.Compact(slices.Clone(got))) != len(got) {
			t.Errorf("expected no duplicates, got %v", got)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeWordList(t, dir, "words.txt", "there\nsun\nsun\n")
		loader := NewLoader()

		first, err := loader.Load(context.Background(), []string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := loader.Load(context.Background(), []string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("second load differs (-first +second):\n%s", diff)
		}
	})

	t.Run("empty file gives empty vocabulary", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeWordList(t, dir, "empty.txt", "")

		got, err := NewLoader().Load(context.Background(), []string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Len() != 0 {
			t.Errorf("expected empty vocabulary, got %v", got)
		}
	})
}

// TestLoaderLoadErrors tests failure handling.
func TestLoaderLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file is a FileAccessError", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		good := writeWordList(t, dir, "good.txt", "sun\n")
		missing := filepath.Join(dir, "missing.txt")

		_, err := NewLoader().Load(context.Background(), []string{good, missing})
		if err == nil {
			t.Fatal("expected error for missing file")
		}

		var accessErr *FileAccessError
		if !errors.As(err, &accessErr) {
			t.Fatalf("expected *FileAccessError, got %T: %v", err, err)
		}
		if accessErr.Path != missing {
			t.Errorf("expected path %q, got %q", missing, accessErr.Path)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected cause to be os.ErrNotExist, got %v", accessErr.Err)
		}
	})

	t.Run("invalid UTF-8 line is skipped and logged", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		dir := t.TempDir()
		path := writeWordList(t, dir, "mixed.txt", "sun\n\xff\xfebad\nthere\n")

		got, err := NewLoader(WithLogger(newTestLogger(&logs))).Load(context.Background(), []string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := model.Vocabulary{"sun", "there"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Load() mismatch (-want +got):\n%s", diff)
		}

		output := logs.String()
		if !strings.Contains(output, "skipping unreadable line") {
			t.Errorf("expected warning in log output, got %q", output)
		}
		if !strings.Contains(output, "line=2") {
			t.Errorf("expected line number in log output, got %q", output)
		}
	})

	t.Run("long line does not end the file", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 2*1024*1024)
		dir := t.TempDir()
		path := writeWordList(t, dir, "long.txt", "there\n"+long+"\nsun\nson\n")

		got, err := NewLoader().Load(context.Background(), []string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := model.Vocabulary{"son", "sun", "there", long}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Load() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid line after a long line is skipped alone", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		dir := t.TempDir()
		path := writeWordList(t, dir, "mixed.txt",
			strings.Repeat("y", 200*1024)+"\n\xff"+strings.Repeat("z", 100*1024)+"\nsun\r\nson")

		got, err := NewLoader(WithLogger(newTestLogger(&logs))).Load(context.Background(), []string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !slices.Contains(got, "sun") || !slices.Contains(got, "son") {
			t.Errorf("expected words after the skipped line, got %d words", len(got))
		}
		if len(got) != 3 {
			t.Errorf("expected 3 words, got %d", len(got))
		}
		if !strings.Contains(logs.String(), "line=2") {
			t.Errorf("expected line 2 to be reported, got %q", logs.String())
		}
	})

	t.Run("cancelled context stops before reading", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeWordList(t, dir, "words.txt", "sun\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewLoader().Load(ctx, []string{path})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

// TestLineDecodeError tests the error message and unwrapping.
func TestLineDecodeError(t *testing.T) {
	t.Parallel()

	err := &LineDecodeError{Path: "words.txt", Line: 3, Err: ErrInvalidUTF8}

	if !errors.Is(err, ErrInvalidUTF8) {
		t.Error("expected errors.Is to match ErrInvalidUTF8")
	}
	if got := err.Error(); got != "words.txt:3: line is not valid UTF-8" {
		t.Errorf("unexpected message %q", got)
	}
}
