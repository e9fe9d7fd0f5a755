package generator

import (
	"sort"
)

// Generation paths recorded by a Coverage.
const (
	PathPhraseClause        = "main_clause.phrase"
	PathNumberClause        = "main_clause.number"
	PathNameClause          = "main_clause.name"
	PathAdverbClause        = "main_clause.adverb"
	PathAdjectiveClause     = "main_clause.adjective"
	PathPrepositionalPhrase = "prepositional_phrase"
	PathPluralPreposition   = "prepositional_phrase.plural"
	PathSeparatorClause     = "main_clause.separator"
	PathNumberWords         = "number.words"
	PathNumberDigits        = "number.digits"
	PathSingularNumber      = "number.singular"
	PathFullName            = "name.full"
	PathMiddleInitial       = "name.middle_initial"
	PathCoordinating        = "conjunction.coordinating"
	PathSubordinate         = "conjunction.subordinate"
	PathCombinedSentence    = "sentence.combined"
	PathWordOfLength        = "characters.word_of_length"
	PathCharactersRetry     = "characters.retry"
	PathCharactersRelaxed   = "characters.relaxed"
	PathTruncated           = "characters.truncated"
)

// Coverage counts which generation paths a session took.
// A nil *Coverage records nothing.
type Coverage struct {
	hits map[string]int
}

// NewCoverage returns an empty tracker.
func NewCoverage() *Coverage {
	return &Coverage{hits: make(map[string]int)}
}

func (c *Coverage) mark(path string) {
	if c == nil {
		return
	}
	c.hits[path]++
}

// Count returns how many times path was taken.
func (c *Coverage) Count(path string) int {
	if c == nil {
		return 0
	}
	return c.hits[path]
}

// Paths returns the paths taken at least once, sorted.
func (c *Coverage) Paths() []string {
	if c == nil {
		return nil
	}
	paths := make([]string, 0, len(c.hits))
	for path := range c.hits {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Missing returns the given paths that were never taken.
func (c *Coverage) Missing(paths ...string) []string {
	var missing []string
	for _, path := range paths {
		if c.Count(path) == 0 {
			missing = append(missing, path)
		}
	}
	return missing
}

// Reset forgets every recorded path.
func (c *Coverage) Reset() {
	if c == nil {
		return
	}
	clear(c.hits)
}
