package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/homophones/internal/model"
)

// HomophoneSource looks up the homophones of a single word.
// A nil result with a nil error means the word has none.
type HomophoneSource interface {
	Lookup(ctx context.Context, word string) ([]string, error)
}

// PairBuilder turns a vocabulary into (word, homophone) pairs.
type PairBuilder struct {
	source HomophoneSource
	logger *slog.Logger
	stats  *model.RunStats
}

// PairBuilderOption configures a PairBuilder.
type PairBuilderOption func(*PairBuilder)

// WithBuilderLogger sets the logger for per-word diagnostics.
func WithBuilderLogger(logger *slog.Logger) PairBuilderOption {
	return func(b *PairBuilder) {
		b.logger = logger
	}
}

// WithBuilderStats makes the builder count lookups into stats.
func WithBuilderStats(stats *model.RunStats) PairBuilderOption {
	return func(b *PairBuilder) {
		b.stats = stats
	}
}

// NewPairBuilder creates a PairBuilder that asks source for every word.
func NewPairBuilder(source HomophoneSource, opts ...PairBuilderOption) *PairBuilder {
	b := &PairBuilder{
		source: source,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build looks up every word in vocabulary order, one at a time, and
// returns the pairs in lookup order, homophones in the order the source
// returned them. The first lookup error aborts the build and is returned
// unchanged.
func (b *PairBuilder) Build(ctx context.Context, vocab model.Vocabulary) (model.PairCollection, error) {
	pairs := make(model.PairCollection, 0)

	for i, word := range vocab {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		homophones, err := b.source.Lookup(ctx, word)
		if err != nil {
			return nil, err
		}

		b.logger.Debug("looked up word",
			"word", word,
			"homophones", len(homophones),
			"progress", i+1,
			"total", len(vocab))

		if b.stats != nil {
			b.stats.WordsLookedUp++
			if len(homophones) > 0 {
				b.stats.WordsWithHomophones++
			}
		}

		pairs = append(pairs, model.PairsFor(word, homophones)...)
	}

	return pairs, nil
}
