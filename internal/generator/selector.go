package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
)

type unitKind int

const (
	unitArticle unitKind = iota
	unitAdjective
	unitNoun
	unitAdverb
	unitVerb
	unitPhrase
)

// sentenceParts is the unit cycle shared by Words and Characters.
var sentenceParts = []unitKind{
	unitArticle, unitAdjective, unitNoun, unitAdverb, unitVerb,
	unitAdjective, unitVerb, unitAdverb, unitPhrase,
}

// pick returns a uniformly random entry of category.
func (g *Generator) pick(category dictionary.Category) string {
	return g.sample(g.lexicon.Words(category))
}

// rotate returns the entry under the category cursor and advances it, so k calls on
// a k-entry category return every entry once.
func (g *Generator) rotate(category dictionary.Category) string {
	list := g.lexicon.Words(category)
	if len(list) == 0 {
		return ""
	}
	i := g.cursors[category] % len(list)
	g.cursors[category] = (i + 1) % len(list)
	return list[i]
}

func (g *Generator) unit(kind unitKind) string {
	switch kind {
	case unitArticle:
		return g.rotate(dictionary.Articles)
	case unitAdjective:
		return g.pick(dictionary.Adjectives)
	case unitNoun:
		return g.pick(dictionary.Nouns)
	case unitAdverb:
		return g.pick(dictionary.Adverbs)
	case unitVerb:
		return g.pick(dictionary.Verbs)
	default:
		if g.hasPhrases() {
			return g.pick(dictionary.Phrases)
		}
		return g.pick(dictionary.Clauses)
	}
}

func (g *Generator) hasPhrases() bool {
	return len(g.lexicon.Words(dictionary.Phrases)) > 0
}

// ArticleFor returns an article for word: a plural article when word is a known
// plural noun, a singular one otherwise, corrected for a/an agreement.
func (g *Generator) ArticleFor(word string) string {
	var article string
	if g.lexicon.IsPluralNoun(word) {
		article = g.rotate(dictionary.PluralArticles)
	} else {
		article = g.rotate(dictionary.Articles)
	}
	return agreeArticle(article, word)
}

// agreeArticle forces "an" before a vowel and "a" before anything else.
// Other articles are returned unchanged.
func agreeArticle(article, word string) string {
	lower := strings.ToLower(article)
	if lower != "a" && lower != "an" {
		return article
	}
	want := "a"
	if startsWithVowel(word) {
		want = "an"
	}
	if lower == want {
		return article
	}
	if r, _ := utf8.DecodeRuneInString(article); unicode.IsUpper(r) {
		return strings.ToUpper(want[:1]) + want[1:]
	}
	return want
}

func startsWithVowel(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return strings.ContainsRune("aeiou", unicode.ToLower(r))
}

// agreeArticles applies agreeArticle to every "a" or "an" token of text.
func agreeArticles(text string) string {
	tokens := strings.Fields(text)
	for i := 0; i+1 < len(tokens); i++ {
		tokens[i] = agreeArticle(tokens[i], tokens[i+1])
	}
	return strings.Join(tokens, " ")
}
