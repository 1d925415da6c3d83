package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nao1215/homophones/internal/config"
	"github.com/nao1215/homophones/internal/dictionary"
	"github.com/nao1215/homophones/internal/model"
	"github.com/nao1215/homophones/internal/report"
	"github.com/nao1215/homophones/internal/wordlist"
)

// LoadStep reads the run's input files into its vocabulary.
type LoadStep struct {
	loader *wordlist.Loader
}

// NewLoadStep creates a LoadStep using loader.
func NewLoadStep(loader *wordlist.Loader) *LoadStep {
	return &LoadStep{loader: loader}
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do executes the load step.
func (s *LoadStep) Do(ctx context.Context, run *model.Run) error {
	vocab, err := s.loader.Load(ctx, run.Inputs)
	if err != nil {
		return err
	}
	run.Vocabulary = vocab
	return nil
}

// fetchStatsReporter is implemented by sources that count their own
// retries and missing pages, such as *dictionary.Fetcher.
type fetchStatsReporter interface {
	Stats() dictionary.FetcherStats
}

// LookupStep looks up every vocabulary word and stores the raw pairs.
//
// Design decision: Lookups are sequential. The dictionary site is a shared
// public service and the retry backoff assumes one request in flight.
type LookupStep struct {
	source HomophoneSource
	logger *slog.Logger
}

// NewLookupStep creates a LookupStep that asks source for every word.
// If logger is nil, slog.Default() is used.
func NewLookupStep(source HomophoneSource, logger *slog.Logger) *LookupStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &LookupStep{source: source, logger: logger}
}

// Name returns the step name.
func (s *LookupStep) Name() string {
	return "lookup"
}

// Do executes the lookup step.
func (s *LookupStep) Do(ctx context.Context, run *model.Run) error {
	builder := NewPairBuilder(s.source,
		WithBuilderLogger(s.logger),
		WithBuilderStats(&run.Stats),
	)

	pairs, err := builder.Build(ctx, run.Vocabulary)
	if reporter, ok := s.source.(fetchStatsReporter); ok {
		stats := reporter.Stats()
		run.Stats.Retries = stats.Retries
		run.Stats.NotFound = stats.NotFound
	}
	if err != nil {
		return err
	}

	run.Pairs = pairs
	return nil
}

// AggregateStep de-duplicates the raw pairs and derives the singles list.
type AggregateStep struct{}

// NewAggregateStep creates an AggregateStep.
func NewAggregateStep() *AggregateStep {
	return &AggregateStep{}
}

// Name returns the step name.
func (s *AggregateStep) Name() string {
	return "aggregate"
}

// Do executes the aggregate step.
func (s *AggregateStep) Do(_ context.Context, run *model.Run) error {
	run.Stats.RawPairs = len(run.Pairs)
	run.Pairs = model.DedupePairs(run.Pairs)
	run.Singles = model.Singularize(run.Pairs)

	run.Stats.NewWords = 0
	for _, word := range run.Singles {
		if !run.Vocabulary.Contains(word) {
			run.Stats.NewWords++
		}
	}
	return nil
}

// WriteStep writes the requested outputs in a fixed order: pairs, singles,
// summary. An empty path skips that output. A failed write stops the step;
// outputs already written are kept.
type WriteStep struct {
	pairsPath   string
	singlesPath string
	summaryPath string
	logger      *slog.Logger
}

// WriteStepOption configures a WriteStep.
type WriteStepOption func(*WriteStep)

// WithPairsPath requests the pairs output.
func WithPairsPath(path string) WriteStepOption {
	return func(s *WriteStep) {
		s.pairsPath = path
	}
}

// WithSinglesPath requests the singles output.
func WithSinglesPath(path string) WriteStepOption {
	return func(s *WriteStep) {
		s.singlesPath = path
	}
}

// WithSummaryPath requests the Markdown summary.
func WithSummaryPath(path string) WriteStepOption {
	return func(s *WriteStep) {
		s.summaryPath = path
	}
}

// WithWriteLogger sets the logger for the write step.
func WithWriteLogger(logger *slog.Logger) WriteStepOption {
	return func(s *WriteStep) {
		s.logger = logger
	}
}

// NewWriteStep creates a WriteStep.
func NewWriteStep(opts ...WriteStepOption) *WriteStep {
	s := &WriteStep{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write"
}

// Do executes the write step.
func (s *WriteStep) Do(_ context.Context, run *model.Run) error {
	if s.pairsPath != "" {
		if err := report.WritePairs(s.pairsPath, run.Pairs, s.logger); err != nil {
			return err
		}
		s.logger.Debug("wrote pairs", "path", s.pairsPath, "count", len(run.Pairs))
	}

	if s.singlesPath != "" {
		if err := report.WriteSingles(s.singlesPath, run.Singles); err != nil {
			return err
		}
		s.logger.Debug("wrote singles", "path", s.singlesPath, "count", len(run.Singles))
	}

	if s.summaryPath != "" {
		run.Finish()
		if err := report.WriteSummary(s.summaryPath, run); err != nil {
			return err
		}
		s.logger.Debug("wrote summary", "path", s.summaryPath)
	}

	return nil
}

// Default assembles the standard load, lookup, aggregate, write pipeline
// for cfg. The client performs every dictionary request.
//
// It fails before any network activity if the lookup settings are invalid,
// for example an unparsable selector.
func Default(cfg *config.Config, client *http.Client, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fetcher, err := dictionary.NewFetcher(client,
		dictionary.WithBaseURL(cfg.BaseURL),
		dictionary.WithSelector(cfg.Selector),
		dictionary.WithUserAgent(cfg.UserAgent),
		dictionary.WithMaxBodySize(cfg.MaxBodySize),
		dictionary.WithMaxRetries(cfg.MaxRetries),
		dictionary.WithBackoff(cfg.RetryBackoff),
		dictionary.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create dictionary fetcher: %w", err)
	}

	p := New(WithLogger(logger))
	p.AddSteps(
		NewLoadStep(wordlist.NewLoader(wordlist.WithLogger(logger))),
		NewLookupStep(fetcher, logger),
		NewAggregateStep(),
		NewWriteStep(
			WithPairsPath(cfg.PairsPath),
			WithSinglesPath(cfg.SinglesPath),
			WithSummaryPath(cfg.SummaryPath),
			WithWriteLogger(logger),
		),
	)

	return p, nil
}
