package generator

import (
	"strings"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
)

// buildSentence grows a main clause with additional clauses until it is at least
// target characters long. The result may overshoot and is neither capitalized nor
// terminated.
func (g *Generator) buildSentence(target int) string {
	components := []string{g.mainClause()}
	for Length(Compress(strings.Join(components, " "))) < target {
		components = append(components, g.additionalClauses()...)
	}

	var b strings.Builder
	b.WriteString(components[0])
	for _, component := range components[1:] {
		b.WriteString(" ")
		b.WriteString(g.conjunction())
		b.WriteString(" ")
		b.WriteString(strings.TrimSpace(component))
	}
	return Compress(b.String())
}

// conjunction returns a coordinating or a subordinate conjunction with even odds.
func (g *Generator) conjunction() string {
	if g.roll(50) {
		g.coverage.mark(PathCoordinating)
		return g.rotate(dictionary.CoordinatingConjunctions)
	}
	g.coverage.mark(PathSubordinate)
	return g.rotate(dictionary.SubordinateConjunctions)
}

// combinedSentence returns a finished sentence of at least target characters,
// merging sentences with a comma and a coordinating conjunction while it is short.
// A target of zero or less uses the configured sentence length.
func (g *Generator) combinedSentence(target int) string {
	tierLength := g.config.TargetLength()
	if target <= 0 {
		target = tierLength
	}

	sentence := g.buildSentence(min(target, tierLength))
	if Length(sentence) > target {
		return g.finalize(sentence)
	}

	for Length(sentence) < target {
		next := g.buildSentence(target / 2)
		conjunction := g.rotate(dictionary.CoordinatingConjunctions)
		merged := trimTerminal(sentence, g.terminators) + ", " + conjunction + " " + trimTerminal(next, g.terminators)
		// stripping must never shrink the sentence, or the loop could stall
		if Length(merged) <= Length(sentence) {
			merged = sentence + ", " + conjunction + " " + next
		}
		g.coverage.mark(PathCombinedSentence)
		sentence = merged
	}
	return g.finalize(sentence)
}

// finalize capitalizes, cleans up punctuation, and wraps s in a random terminator.
func (g *Generator) finalize(s string) string {
	s = Compress(s)
	s = spellLeadingNumber(s, g.lexicon.Numbers())
	s = Capitalize(s)
	s = CapitalizeI(s)
	s = DedupPunctuation(s)
	s = Terminate(s, g.terminator())
	return fixCaps(s, g.terminators)
}

func (g *Generator) terminator() dictionary.Terminator {
	return g.terminators[g.rng.IntN(len(g.terminators))]
}
