package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avast/retry-go"
)

// RetryPolicy bounds the attempts of Characters.
type RetryPolicy struct {
	// MaxAttempts is the number of retries after the first attempt.
	MaxAttempts int
	// RelaxAfterAttempts is the number of attempts after which whole words are no
	// longer required and an overflow is truncated.
	RelaxAfterAttempts int
}

// DefaultRetryPolicy allows 40 retries and relaxes after 15.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 40, RelaxAfterAttempts: 15}
}

var errOverflow = errors.New("characters overflowed the maximum length")

type charactersOptions struct {
	wholeWords       bool
	whitespace       bool
	startWithArticle bool
}

// CharactersOption configures Characters.
type CharactersOption func(*charactersOptions)

// WholeWords controls whether an overflow may be truncated mid-word. Defaults to true.
func WholeWords(enabled bool) CharactersOption {
	return func(o *charactersOptions) {
		o.wholeWords = enabled
	}
}

// Whitespace controls whether words are separated by spaces. Defaults to true.
func Whitespace(enabled bool) CharactersOption {
	return func(o *charactersOptions) {
		o.whitespace = enabled
	}
}

// StartWithArticle controls whether the unit cycle starts at an article or at an adjective.
// Defaults to true.
func StartWithArticle(enabled bool) CharactersOption {
	return func(o *charactersOptions) {
		o.startWithArticle = enabled
	}
}

// Characters returns a string of min to max characters, exactly max whenever the
// words allow it. A max of zero or less means max = min, and a min above max is
// lowered to max.
func (g *Generator) Characters(min, max int, opts ...CharactersOption) (string, error) {
	options := charactersOptions{wholeWords: true, whitespace: true, startWithArticle: true}
	for _, opt := range opts {
		opt(&options)
	}
	if max <= 0 {
		max = min
	}
	if min < 0 || max <= 0 {
		return "", fmt.Errorf("%w: characters needs a positive length, got %d to %d", ErrInvalidConfiguration, min, max)
	}
	if min > max {
		min = max
	}

	var result string
	attempt := 0
	err := retry.Do(
		func() error {
			wholeWords := options.wholeWords
			if attempt > g.policy.RelaxAfterAttempts && wholeWords {
				g.coverage.mark(PathCharactersRelaxed)
				wholeWords = false
			}
			attempt++

			s, ok := g.fillCharacters(min, max, wholeWords, options)
			if !ok {
				return errOverflow
			}
			result = s
			return nil
		},
		retry.Attempts(uint(g.policy.MaxAttempts+1)),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.OnRetry(func(n uint, err error) {
			g.coverage.mark(PathCharactersRetry)
			slog.Default().Debug("retrying characters",
				slog.Int("attempt", int(n)+1),
				slog.Int("min", min),
				slog.Int("max", max),
				slog.Any("error", err),
			)
		}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: no string of %d to %d characters after %d attempts", ErrInfiniteLoopDetected, min, max, attempt)
	}
	return result, nil
}

// fillCharacters appends units until the string reaches min characters. It reports
// false when an overflow could not be resolved.
func (g *Generator) fillCharacters(min, max int, wholeWords bool, options charactersOptions) (string, bool) {
	separator := ""
	if options.whitespace {
		separator = " "
	}
	part := 1
	if options.startWithArticle {
		part = 0
	}

	result := ""
	for Length(result) < min {
		unit := g.unit(sentenceParts[part])
		if !options.whitespace {
			unit = strings.ReplaceAll(unit, " ", "")
		}
		part = (part + 1) % len(sentenceParts)

		candidate := Compress(result + separator + unit)
		switch length := Length(candidate); {
		case length > max:
			return g.resolveOverflow(candidate, result, max, wholeWords, separator)
		case length == max:
			return candidate, true
		}
		result = candidate
	}
	return result, true
}

// resolveOverflow repairs a candidate longer than max. It first looks for a word that
// fills the remaining room exactly, then truncates when whole words are not required.
func (g *Generator) resolveOverflow(candidate, accepted string, max int, wholeWords bool, separator string) (string, bool) {
	needed := max - Length(accepted)
	if needed > 0 && accepted != "" {
		needed -= Length(separator)
	}

	if needed > 1 {
		if words := g.wordsOfLength(needed, separator != ""); len(words) > 0 {
			g.coverage.mark(PathWordOfLength)
			return Compress(accepted + separator + g.sample(words)), true
		}
	}
	if wholeWords {
		return "", false
	}

	truncated := Compress(string([]rune(candidate)[:max]))
	if Length(truncated) != max {
		return "", false
	}
	g.coverage.mark(PathTruncated)
	return truncated, true
}

// wordsOfLength returns the words of exactly length characters. Without whitespace,
// multi-word entries are measured and returned with their spaces removed.
func (g *Generator) wordsOfLength(length int, whitespace bool) []string {
	if whitespace {
		return g.lexicon.WordsOfLength(length)
	}
	if g.compactWords == nil {
		g.compactWords = make(map[int][]string)
		for _, word := range g.lexicon.AllWords() {
			compact := strings.ReplaceAll(word, " ", "")
			g.compactWords[Length(compact)] = append(g.compactWords[Length(compact)], compact)
		}
	}
	return g.compactWords[length]
}
