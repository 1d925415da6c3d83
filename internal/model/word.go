package model

import "slices"

// Vocabulary is an ordered, duplicate-free list of words.
// Order is ascending byte-wise lexicographic order, not input order.
//
// A Vocabulary must be built with NewVocabulary so that the ordering and
// uniqueness invariants hold. It is never mutated afterwards.
type Vocabulary []string

// NewVocabulary sorts words and removes duplicates.
// Words are kept verbatim: no trimming and no case folding, so blank lines
// survive as the empty word. The input slice is not modified.
func NewVocabulary(words []string) Vocabulary {
	return Vocabulary(sortUnique(words))
}

// Len returns the number of words in the vocabulary.
func (v Vocabulary) Len() int {
	return len(v)
}

// Contains reports whether word is part of the vocabulary.
func (v Vocabulary) Contains(word string) bool {
	_, found := slices.BinarySearch(v, word)
	return found
}

// Pair associates a source word with one of its recorded homophones.
type Pair struct {
	// Source is the vocabulary word that was looked up.
	Source string

	// Homophone is the word the reference page lists as sharing
	// the pronunciation of Source.
	Homophone string
}

// PairCollection is an ordered list of pairs.
// Order is vocabulary order, then extraction order within a word.
type PairCollection []Pair

// SingleList is the sorted, duplicate-free list of every word that appears
// on either side of any pair.
type SingleList []string

// PairsFor returns the pairs for a single source word with one pair per
// homophone, preserving the order of homophones.
func PairsFor(source string, homophones []string) PairCollection {
	if len(homophones) == 0 {
		return nil
	}
	pairs := make(PairCollection, 0, len(homophones))
	for _, h := range homophones {
		pairs = append(pairs, Pair{Source: source, Homophone: h})
	}
	return pairs
}

// DedupePairs removes repeated pairs while keeping the first occurrence.
// Pairs are compared by exact (Source, Homophone) equality.
func DedupePairs(pairs PairCollection) PairCollection {
	seen := make(map[Pair]struct{}, len(pairs))
	out := make(PairCollection, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Singularize flattens pairs into the distinct words they mention.
// Both sides of every pair are included, so a harvested homophone that was
// never part of the input vocabulary still shows up. The result is sorted
// and de-duplicated the same way NewVocabulary is.
func Singularize(pairs PairCollection) SingleList {
	words := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		words = append(words, p.Source, p.Homophone)
	}
	return SingleList(sortUnique(words))
}

// GroupBySource returns the homophones of each source word in pair order.
// The returned keys slice lists source words in first-seen order.
func GroupBySource(pairs PairCollection) (keys []string, groups map[string][]string) {
	groups = make(map[string][]string)
	for _, p := range pairs {
		if _, ok := groups[p.Source]; !ok {
			keys = append(keys, p.Source)
		}
		groups[p.Source] = append(groups[p.Source], p.Homophone)
	}
	return keys, groups
}

// sortUnique returns a sorted copy of words with consecutive duplicates
// removed. Duplicates can only be dropped after sorting because input order
// is not preserved.
func sortUnique(words []string) []string {
	out := slices.Clone(words)
	if out == nil {
		out = []string{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
