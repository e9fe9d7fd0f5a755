package generator

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
)

// numberToWords spells a non-negative n with the numeral tables, e.g.
// 126620 is "one hundred twenty six thousand six hundred twenty".
// Places beyond the table are left unnamed.
func numberToWords(n int, numbers dictionary.Numbers) string {
	if n <= 0 {
		return numbers.Digits[0]
	}

	var groups []string
	for place := 2; n > 0; place++ {
		if group := hundredToWords(n%1000, place, numbers); group != "" {
			groups = append([]string{group}, groups...)
		}
		n /= 1000
	}
	return strings.Join(groups, " ")
}

// hundredToWords spells n in [0, 1000) followed by its place name. Place 2 is the
// ones group and has no name.
func hundredToWords(n, place int, numbers dictionary.Numbers) string {
	if n == 0 {
		return ""
	}
	var word string
	if n < 100 {
		word = tensToWords(n, numbers)
	} else {
		word = numbers.Digits[n/100] + " " + numbers.Places[2]
		if rest := n % 100; rest > 0 {
			word += " " + tensToWords(rest, numbers)
		}
	}
	if place > 2 && place < len(numbers.Places) {
		word += " " + numbers.Places[place]
	}
	return word
}

// tensToWords spells n in [1, 100).
func tensToWords(n int, numbers dictionary.Numbers) string {
	switch {
	case n < 10:
		return numbers.Digits[n]
	case n < 20:
		return numbers.Teens[n-10]
	case n%10 == 0:
		return numbers.Tens[n/10-2]
	default:
		return numbers.Tens[n/10-2] + " " + numbers.Digits[n%10]
	}
}

// numberWithPlural returns a number below 1000, spelled out or with grouped digits,
// followed by a noun that agrees with it.
func (g *Generator) numberWithPlural() string {
	n := g.rng.IntN(1000)
	var number string
	if g.roll(50) {
		g.coverage.mark(PathNumberWords)
		number = numberToWords(n, g.lexicon.Numbers())
	} else {
		g.coverage.mark(PathNumberDigits)
		number = humanize.Comma(int64(n))
	}

	if n == 1 {
		g.coverage.mark(PathSingularNumber)
		return number + " " + g.pick(dictionary.Nouns)
	}
	return number + " " + g.pick(dictionary.PluralNouns)
}
