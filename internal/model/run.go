package model

import "time"

// Run holds the state of a single homophones build.
// It is created once per invocation and handed from one pipeline step to
// the next; each step reads what the previous step produced and fills in
// its own part.
type Run struct {
	// Inputs are the word-list files in the order the user listed them.
	Inputs []string

	// Vocabulary is filled by the load step.
	Vocabulary Vocabulary

	// Pairs is filled by the lookup step and de-duplicated by the
	// aggregate step.
	Pairs PairCollection

	// Singles is filled by the aggregate step.
	Singles SingleList

	// Stats collects counters for the summary report.
	Stats RunStats

	// PerformedSteps lists the names of the pipeline steps that ran.
	PerformedSteps []string
}

// RunStats contains counters collected while a run executes.
type RunStats struct {
	// StartedAt is when the run was created.
	StartedAt time.Time

	// Duration is the wall-clock time of the whole run.
	// It is set by the caller once the pipeline returns.
	Duration time.Duration

	// WordsLookedUp is the number of vocabulary words sent to the dictionary.
	WordsLookedUp int

	// WordsWithHomophones is the number of words that produced at least one pair.
	WordsWithHomophones int

	// Retries is the number of lookups that needed a second attempt.
	Retries int

	// NotFound is the number of lookups answered with a non-success status.
	NotFound int

	// RawPairs is the number of pairs before de-duplication.
	RawPairs int

	// NewWords is the number of singles that are not in the vocabulary,
	// that is, homophones harvested from pages rather than read from input.
	NewWords int
}

// NewRun creates a Run for the given input files.
func NewRun(inputs []string) *Run {
	return &Run{
		Inputs:         inputs,
		PerformedSteps: make([]string, 0),
		Stats: RunStats{
			StartedAt: time.Now(),
		},
	}
}

// Finish records the total duration of the run.
func (r *Run) Finish() {
	r.Stats.Duration = time.Since(r.Stats.StartedAt)
}
