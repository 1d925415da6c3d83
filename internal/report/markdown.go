package report

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/homophones/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs a run summary in Markdown format.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and mermaid charts
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary of run.
func (w *MarkdownWriter) Write(run *model.Run) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, run)
	w.writeCoverage(md, run)
	w.writeInputs(md, run)
	w.writeHomophones(md, run)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the statistics table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, run *model.Run) {
	md.H1("Homophones Run Summary")
	md.PlainText("")

	stats := run.Stats
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Started", stats.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", stats.Duration.Round(time.Millisecond).String()},
			{"Input Files", strconv.Itoa(len(run.Inputs))},
			{"Vocabulary Words", strconv.Itoa(run.Vocabulary.Len())},
			{"Words Looked Up", strconv.Itoa(stats.WordsLookedUp)},
			{"Words With Homophones", strconv.Itoa(stats.WordsWithHomophones)},
			{"Pages Not Found", strconv.Itoa(stats.NotFound)},
			{"Retries", strconv.Itoa(stats.Retries)},
			{"Pairs (raw)", strconv.Itoa(stats.RawPairs)},
			{"Pairs (unique)", strconv.Itoa(len(run.Pairs))},
			{"Singles", strconv.Itoa(len(run.Singles))},
			{"Words Not In Input", strconv.Itoa(stats.NewWords)},
			{"Steps Completed Before Summary", stepList(run.PerformedSteps)},
		},
	})
	md.PlainText("")

	if stats.Retries > 0 {
		md.Warningf("%d lookup(s) failed once and were retried. The dictionary site may be throttling requests.", stats.Retries)
		md.PlainText("")
	}
}

// writeCoverage writes a mermaid pie chart of words with and without
// homophones.
func (w *MarkdownWriter) writeCoverage(md *markdown.Markdown, run *model.Run) {
	stats := run.Stats
	if stats.WordsLookedUp == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Words With Homophones"),
		piechart.WithShowData(true),
	)
	chart.LabelAndIntValue("With homophones", uint64(stats.WordsWithHomophones))          //nolint:gosec // counters are never negative
	chart.LabelAndIntValue("Without", uint64(stats.WordsLookedUp-stats.WordsWithHomophones)) //nolint:gosec // counters are never negative

	md.H2("Coverage")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeInputs lists the word list files.
func (w *MarkdownWriter) writeInputs(md *markdown.Markdown, run *model.Run) {
	md.H2("Input Files")
	md.PlainText("")

	if len(run.Inputs) == 0 {
		md.PlainText("No input files.")
		md.PlainText("")
		return
	}

	items := make([]string, len(run.Inputs))
	for i, in := range run.Inputs {
		items[i] = "`" + in + "`"
	}
	md.BulletList(items...)
	md.PlainText("")
}

// writeHomophones writes one table row per source word.
func (w *MarkdownWriter) writeHomophones(md *markdown.Markdown, run *model.Run) {
	md.H2("Homophones")
	md.PlainText("")

	if len(run.Pairs) == 0 {
		md.Note("No homophones were found for any word.")
		md.PlainText("")
		return
	}

	keys, groups := model.GroupBySource(run.Pairs)
	rows := make([][]string, len(keys))
	for i, source := range keys {
		homophones := make([]string, len(groups[source]))
		for j, h := range groups[source] {
			homophones[j] = escapeCell(h)
		}
		rows[i] = []string{escapeCell(source), strings.Join(homophones, ", ")}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Word", "Homophones"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by [homophones](https://github.com/nao1215/homophones)*")
}

// stepList joins step names for the statistics table. The summary is
// written by the write step, so that step never appears here.
func stepList(steps []string) string {
	if len(steps) == 0 {
		return "none"
	}
	return strings.Join(steps, " → ")
}

// escapeCell keeps a word from splitting a table row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
