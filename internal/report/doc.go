// Package report writes the results of a run to disk.
//
// This package contains writers for the output formats:
//   - PairsWriter: one "word,homophone" line per pair
//   - SinglesWriter: one word per line
//   - MarkdownWriter: a human-readable run summary
//
// Design decision: We separate writing from the data structures (which are
// in the model package) so a new output format does not touch the core
// types. Writers implement the Writer interface and stream to any
// io.Writer; WritePairs, WriteSingles and WriteSummary put a writer behind
// an all-or-nothing file replacement.
package report
