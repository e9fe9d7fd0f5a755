package generator

import (
	"fmt"
	"maps"
	"strings"
)

// LengthTier names a target sentence length.
type LengthTier string

const (
	Short    LengthTier = "short"
	Medium   LengthTier = "medium"
	Long     LengthTier = "long"
	VeryLong LengthTier = "very_long"
)

// LengthTiers lists the tiers from shortest to longest.
var LengthTiers = []LengthTier{Short, Medium, Long, VeryLong}

var defaultLengths = map[LengthTier]int{
	Short:    20,
	Medium:   60,
	Long:     100,
	VeryLong: 300,
}

// DefaultLengths returns the default character count of each tier.
func DefaultLengths() map[LengthTier]int {
	return maps.Clone(defaultLengths)
}

// ParseLengthTier matches s by its first letter, so "s", "short" and "Sh" all select Short.
func ParseLengthTier(s string) (LengthTier, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch {
	case normalized == "":
	case strings.HasPrefix(normalized, "s"):
		return Short, nil
	case strings.HasPrefix(normalized, "m"):
		return Medium, nil
	case strings.HasPrefix(normalized, "l"):
		return Long, nil
	case strings.HasPrefix(normalized, "v"):
		return VeryLong, nil
	}
	return "", fmt.Errorf("%w: invalid length %q, use short, medium, long or very_long", ErrInvalidConfiguration, s)
}

// Valid reports whether t is one of LengthTiers.
func (t LengthTier) Valid() bool {
	_, ok := defaultLengths[t]
	return ok
}

func (t LengthTier) String() string {
	return string(t)
}

// Config is the generation policy of a session.
type Config struct {
	SentenceLength      LengthTier
	ParagraphLength     int
	ExtendedPunctuation bool
	// Lengths overrides the character count of some tiers. Missing tiers use DefaultLengths.
	Lengths map[LengthTier]int
}

// DefaultConfig returns medium sentences, five sentences per paragraph and standard punctuation.
func DefaultConfig() Config {
	return Config{
		SentenceLength:  Medium,
		ParagraphLength: 5,
		Lengths:         DefaultLengths(),
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfiguration.
func (c Config) Validate() error {
	if !c.SentenceLength.Valid() {
		return fmt.Errorf("%w: unknown sentence length %q", ErrInvalidConfiguration, c.SentenceLength)
	}
	if c.ParagraphLength <= 0 {
		return fmt.Errorf("%w: paragraph length must be a positive integer, got %d", ErrInvalidConfiguration, c.ParagraphLength)
	}
	return validateLengths(c.Lengths)
}

func validateLengths(lengths map[LengthTier]int) error {
	for tier, length := range lengths {
		if !tier.Valid() {
			return fmt.Errorf("%w: unknown length tier %q", ErrInvalidConfiguration, tier)
		}
		if length <= 0 {
			return fmt.Errorf("%w: length of %s must be positive, got %d", ErrInvalidConfiguration, tier, length)
		}
	}
	return nil
}

// LengthOf returns the character count of tier.
func (c Config) LengthOf(tier LengthTier) int {
	if length, ok := c.Lengths[tier]; ok {
		return length
	}
	return defaultLengths[tier]
}

// TargetLength returns the character count of the configured sentence length.
func (c Config) TargetLength() int {
	return c.LengthOf(c.SentenceLength)
}

func (c Config) clone() Config {
	c.Lengths = maps.Clone(c.Lengths)
	return c
}
