package report

import (
	"bufio"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/nao1215/homophones/internal/model"
)

// Writer defines the interface for run output.
//
// Design decision: We use an interface so the pipeline can write every
// requested output the same way, whatever its format.
type Writer interface {
	// Write outputs its part of the run to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(run *model.Run) (int, error)
}

// baseWriter provides common functionality for writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// writeLines writes each line followed by "\n".
func (b *baseWriter) writeLines(lines iter.Seq[string]) (int, error) {
	bw := bufio.NewWriter(b.output)

	var total int
	for line := range lines {
		n, err := bw.WriteString(line)
		total += n
		if err != nil {
			return total, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return total, err
		}
		total++
	}

	return total, bw.Flush()
}

// PairsWriter writes pairs as "source,homophone" lines.
//
// Fields are not quoted or escaped. A word containing a comma therefore
// produces a line that cannot be split unambiguously; such words are
// logged as a warning and written unchanged.
type PairsWriter struct {
	baseWriter
	logger *slog.Logger
}

// NewPairsWriter creates a PairsWriter that outputs to the given writer.
// If logger is nil, slog.Default() is used.
func NewPairsWriter(output io.Writer, logger *slog.Logger) *PairsWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PairsWriter{
		baseWriter: newBaseWriter(output),
		logger:     logger,
	}
}

// Write outputs the run's pairs.
func (w *PairsWriter) Write(run *model.Run) (int, error) {
	return w.WritePairs(run.Pairs)
}

// WritePairs outputs pairs in collection order.
func (w *PairsWriter) WritePairs(pairs model.PairCollection) (int, error) {
	return w.writeLines(func(yield func(string) bool) {
		for _, p := range pairs {
			if strings.Contains(p.Source, ",") || strings.Contains(p.Homophone, ",") {
				w.logger.Warn("pair contains a comma and will be ambiguous",
					"source", p.Source, "homophone", p.Homophone)
			}
			if !yield(p.Source + "," + p.Homophone) {
				return
			}
		}
	})
}

// SinglesWriter writes one word per line.
type SinglesWriter struct {
	baseWriter
}

// NewSinglesWriter creates a SinglesWriter that outputs to the given writer.
func NewSinglesWriter(output io.Writer) *SinglesWriter {
	return &SinglesWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the run's singles.
func (w *SinglesWriter) Write(run *model.Run) (int, error) {
	return w.WriteSingles(run.Singles)
}

// WriteSingles outputs words in list order.
func (w *SinglesWriter) WriteSingles(singles model.SingleList) (int, error) {
	return w.writeLines(slices.Values(singles))
}
