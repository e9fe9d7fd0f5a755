package generator

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
)

var (
	whitespacePattern     = regexp.MustCompile(`\s+`)
	standaloneIPattern    = regexp.MustCompile(`\bi\b`)
	spaceBeforePunctPttrn = regexp.MustCompile(`\s+([,;:])`)
	repeatedPunctPattern  = regexp.MustCompile(`([,;:])(?:\s*[,;:])+`)
	missingSpacePattern   = regexp.MustCompile(`([,;:])([^\s\d])`)
	leadingNumberPattern  = regexp.MustCompile(`^\d{1,3}(?:,\d{3})*\b`)
)

// noTermRunes are stripped from the end of a sentence before it is merged with another.
const noTermRunes = ".!?;,:-—…‽ "

// Compress collapses every whitespace run into one space and trims both ends.
func Compress(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// Length counts characters, not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Capitalize upper-cases the first letter of s, skipping leading punctuation.
func Capitalize(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			return s[:i] + string(unicode.ToUpper(r)) + s[i+utf8.RuneLen(r):]
		}
		if unicode.IsDigit(r) {
			return s
		}
	}
	return s
}

// CapitalizeI upper-cases every standalone "i".
func CapitalizeI(s string) string {
	return standaloneIPattern.ReplaceAllString(s, "I")
}

// DedupPunctuation removes spaces before commas, semicolons and colons, keeps only
// the first of adjacent marks, and puts one space after each mark.
func DedupPunctuation(s string) string {
	s = spaceBeforePunctPttrn.ReplaceAllString(s, "$1")
	s = repeatedPunctPattern.ReplaceAllString(s, "$1")
	s = missingSpacePattern.ReplaceAllString(s, "$1 $2")
	return s
}

// Terminate replaces any trailing punctuation of s with the terminator pair.
func Terminate(s string, terminator dictionary.Terminator) string {
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return terminator.Leading + s + terminator.Trailing
}

// trimTerminal strips trailing punctuation and terminator characters.
func trimTerminal(s string, terminators []dictionary.Terminator) string {
	cutset := noTermRunes
	for _, t := range terminators {
		cutset += t.Trailing
	}
	return strings.TrimRight(s, cutset)
}

// fixCaps upper-cases the first letter after every terminator character that is
// followed by whitespace.
func fixCaps(s string, terminators []dictionary.Terminator) string {
	marks := ".!?"
	for _, t := range terminators {
		marks += t.Trailing
	}

	var b strings.Builder
	b.Grow(len(s))
	ended, spaced := false, false
	for _, r := range s {
		switch {
		case strings.ContainsRune(marks, r):
			ended, spaced = true, false
		case unicode.IsSpace(r):
			spaced = ended
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if ended && spaced {
				r = unicode.ToUpper(r)
			}
			ended, spaced = false, false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// spellLeadingNumber spells out a number that opens s, so that a sentence can
// start with a capital letter.
func spellLeadingNumber(s string, numbers dictionary.Numbers) string {
	match := leadingNumberPattern.FindString(s)
	if match == "" {
		return s
	}
	n, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return s
	}
	return numberToWords(n, numbers) + s[len(match):]
}
