// Package dictionary holds the categorized word lists that feed the generator and
// loads them from embedded files, user directories, or a SQL database.
package dictionary

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyCategory indicates a category required by the sentence templates has no entries.
	ErrEmptyCategory = errors.New("dictionary: required category is empty")
	// ErrInvalidNumbers indicates the numeral tables are too short to spell numbers below 1000.
	ErrInvalidNumbers = errors.New("dictionary: numeral tables are incomplete")
	// ErrNoTerminators indicates there is no standard terminator pair.
	ErrNoTerminators = errors.New("dictionary: no terminators defined")
	// ErrSourceNotFound indicates no source matches the requested name or trigger.
	ErrSourceNotFound = errors.New("dictionary: source not found")
)

// Category names a list of words or phrases sharing a grammatical role.
type Category string

const (
	Nouns                    Category = "nouns"
	PluralNouns              Category = "plural_nouns"
	Verbs                    Category = "verbs"
	PluralVerbs              Category = "plural_verbs"
	PassiveVerbs             Category = "passive_verbs"
	Adverbs                  Category = "adverbs"
	Adjectives               Category = "adjectives"
	Articles                 Category = "articles"
	PluralArticles           Category = "plural_articles"
	Prepositions             Category = "prepositions"
	Clauses                  Category = "clauses"
	CoordinatingConjunctions Category = "coordinating_conjunctions"
	SubordinateConjunctions  Category = "subordinate_conjunctions"
	Phrases                  Category = "phrases"
)

// Categories lists every word category in file order.
var Categories = []Category{
	Nouns, PluralNouns, Verbs, PluralVerbs, PassiveVerbs, Adverbs, Adjectives,
	Articles, PluralArticles, Prepositions, Clauses,
	CoordinatingConjunctions, SubordinateConjunctions, Phrases,
}

// optionalCategories may be empty; templates using them are skipped.
var optionalCategories = []Category{Phrases}

// Terminator is the punctuation wrapped around a finished sentence.
type Terminator struct {
	Leading  string
	Trailing string
}

// Numbers are the numeral tables used to spell integers.
// Places is indexed by power of ten groups: Places[2] is "hundred", Places[3] "thousand".
type Numbers struct {
	Digits []string `yaml:"digits"`
	Teens  []string `yaml:"teens"`
	Tens   []string `yaml:"tens"`
	Places []string `yaml:"places"`
}

// Names are the personal names used by the name template.
type Names struct {
	First []string
	Last  []string
	Full  []string
}

// Empty reports whether no name can be produced.
func (n Names) Empty() bool {
	return len(n.Full) == 0 && (len(n.First) == 0 || len(n.Last) == 0)
}

// SourceInfo describes a dictionary source without its words.
type SourceInfo struct {
	Name        string   `db:"name" yaml:"name"`
	Description string   `db:"description" yaml:"description"`
	Triggers    []string `db:"-" yaml:"triggers"`
	Builtin     bool     `db:"-" yaml:"-"`
	Path        string   `db:"-" yaml:"-"`
}

// Matches reports whether name selects this source, by name or by trigger.
func (info SourceInfo) Matches(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	if strings.ToLower(info.Name) == name {
		return true
	}
	for _, trigger := range info.Triggers {
		if strings.ToLower(trigger) == name {
			return true
		}
	}
	return false
}

// Params are the raw contents of a dictionary before validation.
type Params struct {
	Info                SourceInfo
	Words               map[Category][]string
	Names               Names
	Numbers             Numbers
	Terminators         []Terminator
	ExtendedTerminators []Terminator
}

// Dictionary is an immutable set of categorized word lists.
// Slices returned by its methods are shared and must not be modified.
type Dictionary struct {
	info        SourceInfo
	words       map[Category][]string
	names       Names
	numbers     Numbers
	terminators []Terminator
	extended    []Terminator

	allWords    []string
	byLength    map[int][]string
	pluralNouns map[string]struct{}
}

// New validates params and builds a Dictionary. The input slices are copied.
func New(params Params) (*Dictionary, error) {
	words := make(map[Category][]string, len(Categories))
	for _, category := range Categories {
		words[category] = cleanList(params.Words[category])
	}
	for _, category := range Categories {
		if len(words[category]) == 0 && !slices.Contains(optionalCategories, category) {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCategory, category)
		}
	}
	if err := validateNumbers(params.Numbers); err != nil {
		return nil, err
	}

	terminators := cleanTerminators(params.Terminators)
	if len(terminators) == 0 {
		return nil, ErrNoTerminators
	}

	info := params.Info
	info.Triggers = slices.Clone(info.Triggers)
	d := &Dictionary{
		info:  info,
		words: words,
		names: Names{
			First: cleanList(params.Names.First),
			Last:  cleanList(params.Names.Last),
			Full:  cleanList(params.Names.Full),
		},
		numbers: Numbers{
			Digits: slices.Clone(params.Numbers.Digits),
			Teens:  slices.Clone(params.Numbers.Teens),
			Tens:   slices.Clone(params.Numbers.Tens),
			Places: slices.Clone(params.Numbers.Places),
		},
		terminators: terminators,
		extended:    cleanTerminators(params.ExtendedTerminators),
		pluralNouns: make(map[string]struct{}, len(words[PluralNouns])),
	}
	for _, noun := range words[PluralNouns] {
		d.pluralNouns[strings.ToLower(noun)] = struct{}{}
	}
	d.indexWords()
	return d, nil
}

func (d *Dictionary) indexWords() {
	seen := make(map[string]struct{})
	d.byLength = make(map[int][]string)
	for _, category := range Categories {
		for _, word := range d.words[category] {
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			d.allWords = append(d.allWords, word)
			length := utf8.RuneCountInString(word)
			d.byLength[length] = append(d.byLength[length], word)
		}
	}
}

func validateNumbers(numbers Numbers) error {
	switch {
	case len(numbers.Digits) < 10:
		return fmt.Errorf("%w: digits needs 10 entries, got %d", ErrInvalidNumbers, len(numbers.Digits))
	case len(numbers.Teens) < 10:
		return fmt.Errorf("%w: teens needs 10 entries, got %d", ErrInvalidNumbers, len(numbers.Teens))
	case len(numbers.Tens) < 8:
		return fmt.Errorf("%w: tens needs 8 entries, got %d", ErrInvalidNumbers, len(numbers.Tens))
	case len(numbers.Places) < 3:
		return fmt.Errorf("%w: places needs at least 3 entries, got %d", ErrInvalidNumbers, len(numbers.Places))
	}
	return nil
}

// cleanList trims entries, collapses inner whitespace and drops empty lines.
func cleanList(list []string) []string {
	result := make([]string, 0, len(list))
	for _, entry := range list {
		entry = strings.Join(strings.Fields(entry), " ")
		if entry == "" {
			continue
		}
		result = append(result, entry)
	}
	return result
}

func cleanTerminators(terminators []Terminator) []Terminator {
	result := make([]Terminator, 0, len(terminators))
	for _, t := range terminators {
		t.Leading = strings.TrimSpace(t.Leading)
		t.Trailing = strings.TrimSpace(t.Trailing)
		if t.Trailing == "" {
			continue
		}
		result = append(result, t)
	}
	return result
}

// Info returns the source metadata.
func (d *Dictionary) Info() SourceInfo {
	info := d.info
	info.Triggers = slices.Clone(info.Triggers)
	return info
}

// Name returns the source name.
func (d *Dictionary) Name() string {
	return d.info.Name
}

// Words returns the entries of a category.
func (d *Dictionary) Words(category Category) []string {
	return d.words[category]
}

// Terminators returns the standard terminator pairs.
func (d *Dictionary) Terminators() []Terminator {
	return d.terminators
}

// ExtendedTerminators returns the terminator pairs enabled by extended punctuation.
func (d *Dictionary) ExtendedTerminators() []Terminator {
	return d.extended
}

// AllWords returns the deduplicated union of every word category.
func (d *Dictionary) AllWords() []string {
	return d.allWords
}

// WordsOfLength returns the entries of AllWords that are exactly length characters long.
func (d *Dictionary) WordsOfLength(length int) []string {
	return d.byLength[length]
}

// IsPluralNoun reports whether word is listed as a plural noun.
func (d *Dictionary) IsPluralNoun(word string) bool {
	_, ok := d.pluralNouns[strings.ToLower(word)]
	return ok
}

// Numbers returns the numeral tables.
func (d *Dictionary) Numbers() Numbers {
	return d.numbers
}

// Names returns the personal names.
func (d *Dictionary) Names() Names {
	return d.names
}
