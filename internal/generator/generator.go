package generator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
)

// Lexicon is the read-only word source of a Generator. *dictionary.Dictionary implements it.
type Lexicon interface {
	Words(category dictionary.Category) []string
	Terminators() []dictionary.Terminator
	ExtendedTerminators() []dictionary.Terminator
	AllWords() []string
	WordsOfLength(length int) []string
	IsPluralNoun(word string) bool
	Numbers() dictionary.Numbers
	Names() dictionary.Names
}

// Generator is a generation session over a Lexicon.
type Generator struct {
	lexicon  Lexicon
	config   Config
	rng      RandomSource
	policy   RetryPolicy
	coverage *Coverage

	cursors      map[dictionary.Category]int
	terminators  []dictionary.Terminator
	compactWords map[int][]string
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandomSource replaces the unseeded default source.
func WithRandomSource(rng RandomSource) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithRetryPolicy replaces DefaultRetryPolicy.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(g *Generator) {
		g.policy = policy
	}
}

// WithCoverage records the generation paths taken into coverage.
func WithCoverage(coverage *Coverage) Option {
	return func(g *Generator) {
		g.coverage = coverage
	}
}

// New creates a session. It fails with ErrInvalidConfiguration when config is invalid.
func New(lexicon Lexicon, config Config, opts ...Option) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(lexicon.Terminators()) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, dictionary.ErrNoTerminators)
	}

	g := &Generator{
		lexicon: lexicon,
		config:  config.clone(),
		rng:     newUnseededSource(),
		policy:  DefaultRetryPolicy(),
		cursors: make(map[dictionary.Category]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.policy.MaxAttempts < 0 || g.policy.RelaxAfterAttempts < 0 {
		return nil, fmt.Errorf("%w: retry policy must not be negative", ErrInvalidConfiguration)
	}
	g.activateTerminators()
	return g, nil
}

// activateTerminators derives the active list so the lexicon's lists are never modified.
func (g *Generator) activateTerminators() {
	active := slices.Clone(g.lexicon.Terminators())
	if g.config.ExtendedPunctuation {
		active = append(active, g.lexicon.ExtendedTerminators()...)
	}
	g.terminators = active
}

// Config returns a copy of the session settings.
func (g *Generator) Config() Config {
	return g.config.clone()
}

// Terminators returns the active terminator pairs.
func (g *Generator) Terminators() []dictionary.Terminator {
	return slices.Clone(g.terminators)
}

// SetSentenceLength changes the default sentence length tier.
func (g *Generator) SetSentenceLength(tier LengthTier) error {
	if !tier.Valid() {
		return fmt.Errorf("%w: unknown sentence length %q", ErrInvalidConfiguration, tier)
	}
	g.config.SentenceLength = tier
	return nil
}

// SetParagraphLength changes the default number of sentences in a paragraph.
func (g *Generator) SetParagraphLength(length int) error {
	if length <= 0 {
		return fmt.Errorf("%w: paragraph length must be a positive integer, got %d", ErrInvalidConfiguration, length)
	}
	g.config.ParagraphLength = length
	return nil
}

// SetExtendedPunctuation enables or disables the extended terminator pairs.
func (g *Generator) SetExtendedPunctuation(enabled bool) {
	g.config.ExtendedPunctuation = enabled
	g.activateTerminators()
}

// SetLengths merges lengths into the length table.
func (g *Generator) SetLengths(lengths map[LengthTier]int) error {
	if err := validateLengths(lengths); err != nil {
		return err
	}
	merged := maps.Clone(g.config.Lengths)
	if merged == nil {
		merged = DefaultLengths()
	}
	maps.Copy(merged, lengths)
	g.config.Lengths = merged
	return nil
}

// Word returns one random unit of the sentence cycle.
func (g *Generator) Word() string {
	return g.unit(sentenceParts[g.rng.IntN(len(sentenceParts))])
}

// Words returns n space-separated words following the sentence cycle, with a/an
// corrected. Multi-word units contribute their last word.
func (g *Generator) Words(n int) string {
	if n <= 0 {
		return ""
	}
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		fields := strings.Fields(g.unit(sentenceParts[i%len(sentenceParts)]))
		if len(fields) == 0 {
			continue
		}
		words = append(words, fields[len(fields)-1])
	}
	return Compress(agreeArticles(strings.Join(words, " ")))
}

// Sentence returns a capitalized, terminated sentence of at least targetLength
// characters, or of the configured tier when targetLength is zero or less.
func (g *Generator) Sentence(targetLength int) string {
	return g.combinedSentence(targetLength)
}

// Sentences returns n sentences of the configured tier.
func (g *Generator) Sentences(n int) []string {
	sentences := make([]string, 0, max(n, 0))
	for i := 0; i < n; i++ {
		sentences = append(sentences, g.combinedSentence(0))
	}
	return sentences
}

// Paragraph returns n sentences of the configured tier joined by spaces.
func (g *Generator) Paragraph(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: paragraph length must be a positive integer, got %d", ErrInvalidConfiguration, n)
	}
	return Compress(strings.Join(g.Sentences(n), " ")), nil
}

// DefaultParagraph returns a paragraph of the configured length.
func (g *Generator) DefaultParagraph() string {
	paragraph, _ := g.Paragraph(g.config.ParagraphLength)
	return paragraph
}

// Name returns a random personal name, or an empty string when the lexicon has none.
func (g *Generator) Name() string {
	return g.name()
}

// RandomSource returns the source of the session so callers can share its sequence.
func (g *Generator) RandomSource() RandomSource {
	return g.rng
}
