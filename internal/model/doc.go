// Package model defines the core data structures used throughout homophones.
//
// This package contains the following main types:
//   - Vocabulary: the sorted, duplicate-free list of input words
//   - Pair and PairCollection: source words and the homophones found for them
//   - SingleList: every distinct word that appears in any pair
//   - Run: the state threaded through the pipeline steps
//
// The aggregation helpers (DedupePairs, Singularize) live here as well
// because they only transform these types and have no I/O.
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The wordlist, pipeline and report packages all need these
// types, so centralizing them prevents import cycles.
package model
