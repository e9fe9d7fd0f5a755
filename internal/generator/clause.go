package generator

import (
	"strings"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
)

// separators join a main clause and a trailing clause. Commas are weighted three times.
var separators = []string{",", ",", ",", ";", ":", " —"}

// mainClause builds a clause from one of five templates chosen over ten buckets,
// then may append a prepositional phrase and a separated clause.
func (g *Generator) mainClause() string {
	var clause string
	bucket := g.rng.IntN(10)
	switch {
	case bucket < 2 && g.hasPhrases():
		g.coverage.mark(PathPhraseClause)
		clause = g.pick(dictionary.Phrases)
	case bucket >= 2 && bucket < 4:
		g.coverage.mark(PathNumberClause)
		number := g.numberWithPlural()
		clause = number + " " + g.pick(dictionary.Adverbs) + " " + g.pick(dictionary.PluralVerbs)
	case bucket >= 4 && bucket < 6 && !g.lexicon.Names().Empty():
		g.coverage.mark(PathNameClause)
		clause = g.name()
	case bucket >= 6 && bucket < 8:
		g.coverage.mark(PathAdverbClause)
		noun := g.pick(dictionary.Nouns)
		adverb := g.pick(dictionary.Adverbs)
		article := g.ArticleFor(noun)
		clause = adverb + ", " + article + " " + noun + " " + g.pick(dictionary.Verbs)
	default:
		g.coverage.mark(PathAdjectiveClause)
		noun := g.pick(dictionary.Nouns)
		adjective := g.pick(dictionary.Adjectives)
		article := g.ArticleFor(adjective)
		clause = article + " " + adjective + " " + noun + " " + g.pick(dictionary.Adverbs) + " " + g.pick(dictionary.Verbs)
	}
	clause = strings.TrimSpace(clause)

	if g.roll(50) {
		clause += " " + g.prepositionalPhrase()
	}
	if g.roll(10) {
		g.coverage.mark(PathSeparatorClause)
		separator := separators[g.rng.IntN(len(separators))]
		clause = strings.TrimRight(clause, separator) + separator + " " + g.clause()
	}
	return clause
}

func (g *Generator) prepositionalPhrase() string {
	g.coverage.mark(PathPrepositionalPhrase)
	preposition := g.rotate(dictionary.Prepositions)
	if g.roll(20) {
		g.coverage.mark(PathPluralPreposition)
		article := g.rotate(dictionary.PluralArticles)
		return preposition + " " + article + " " + g.numberWithPlural()
	}
	noun := g.pick(dictionary.Nouns)
	return preposition + " " + g.ArticleFor(noun) + " " + noun
}

// name returns a full name, or a first and last name with an optional middle initial.
func (g *Generator) name() string {
	names := g.lexicon.Names()
	if names.Empty() {
		return ""
	}
	if len(names.Full) > 0 && (len(names.First) == 0 || len(names.Last) == 0) {
		g.coverage.mark(PathFullName)
		return g.sample(names.Full)
	}
	if len(names.Full) > 0 && g.roll(60) {
		g.coverage.mark(PathFullName)
		return g.sample(names.Full)
	}

	first := g.sample(names.First)
	if g.roll(20) {
		g.coverage.mark(PathMiddleInitial)
		first += " " + string(rune('A'+g.rng.IntN(26)))
	}
	return first + " " + g.sample(names.Last)
}

func (g *Generator) clause() string {
	return g.pick(dictionary.Clauses)
}

// additionalClauses returns one or two clauses.
func (g *Generator) additionalClauses() []string {
	clauses := make([]string, 1+g.rng.IntN(2))
	for i := range clauses {
		clauses[i] = g.clause()
	}
	return clauses
}
