package dictionary

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

const (
	sourceConfigFile = "config.yml"
	numbersFile      = "numbers.yml"
	terminatorsFile  = "terminators.txt"
	namesFile        = "names.txt"
)

// Raw keys that are not speech parts.
const (
	KeyTerminators         = "terminators.standard"
	KeyExtendedTerminators = "terminators.extended"
	KeyFirstNames          = "names.first"
	KeyLastNames           = "names.last"
	KeyFullNames           = "names.full"
	KeyDigits              = "numbers.digits"
	KeyTeens               = "numbers.teens"
	KeyTens                = "numbers.tens"
	KeyPlaces              = "numbers.places"
)

// speechParts maps each word file stem to its category.
var speechParts = []struct {
	stem     string
	category Category
}{
	{"nouns-singular", Nouns},
	{"nouns-plural", PluralNouns},
	{"verbs-singular", Verbs},
	{"verbs-plural", PluralVerbs},
	{"verbs-passive", PassiveVerbs},
	{"adverbs", Adverbs},
	{"adjectives", Adjectives},
	{"articles-singular", Articles},
	{"articles-plural", PluralArticles},
	{"prepositions", Prepositions},
	{"clauses", Clauses},
	{"conjunctions-coordinating", CoordinatingConjunctions},
	{"conjunctions-subordinate", SubordinateConjunctions},
	{"phrases", Phrases},
}

// Raw is the flat, storage-friendly form of a dictionary: word file stems and the
// Key* constants mapped to ordered lines. Terminators are stored as "leading,trailing".
type Raw map[string][]string

// FromRaw builds a Dictionary from its flat form.
func FromRaw(info SourceInfo, raw Raw) (*Dictionary, error) {
	params := Params{
		Info:  info,
		Words: make(map[Category][]string, len(speechParts)),
		Names: Names{
			First: raw[KeyFirstNames],
			Last:  raw[KeyLastNames],
			Full:  raw[KeyFullNames],
		},
		Numbers: Numbers{
			Digits: raw[KeyDigits],
			Teens:  raw[KeyTeens],
			Tens:   raw[KeyTens],
			Places: raw[KeyPlaces],
		},
		Terminators:         parseTerminators(raw[KeyTerminators]),
		ExtendedTerminators: parseTerminators(raw[KeyExtendedTerminators]),
	}
	for _, part := range speechParts {
		params.Words[part.category] = raw[part.stem]
	}

	d, err := New(params)
	if err != nil {
		return nil, fmt.Errorf("dictionary %q > %w", info.Name, err)
	}
	return d, nil
}

// Raw returns the flat form of the dictionary.
func (d *Dictionary) Raw() Raw {
	raw := Raw{
		KeyTerminators:         formatTerminators(d.terminators),
		KeyExtendedTerminators: formatTerminators(d.extended),
		KeyFirstNames:          d.names.First,
		KeyLastNames:           d.names.Last,
		KeyFullNames:           d.names.Full,
		KeyDigits:              d.numbers.Digits,
		KeyTeens:               d.numbers.Teens,
		KeyTens:                d.numbers.Tens,
		KeyPlaces:              d.numbers.Places,
	}
	for _, part := range speechParts {
		raw[part.stem] = d.words[part.category]
	}
	return raw
}

// LoadFS reads a dictionary source laid out as one text file per part of speech,
// plus terminators.txt, names.txt, numbers.yml and config.yml, from dir in fsys.
// Missing word files are logged and treated as empty.
func LoadFS(fsys fs.FS, dir string) (*Dictionary, error) {
	info, err := readSourceInfo(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("readSourceInfo(%s) > %w", dir, err)
	}

	raw := Raw{}
	for _, part := range speechParts {
		lines, err := readLines(fsys, path.Join(dir, part.stem+".txt"))
		if err != nil {
			return nil, fmt.Errorf("readLines(%s) > %w", part.stem, err)
		}
		raw[part.stem] = lines
	}

	lines, err := readLines(fsys, path.Join(dir, terminatorsFile))
	if err != nil {
		return nil, fmt.Errorf("readLines(%s) > %w", terminatorsFile, err)
	}
	standard, extended := splitTerminators(lines)
	raw[KeyTerminators] = formatTerminators(standard)
	raw[KeyExtendedTerminators] = formatTerminators(extended)

	lines, err = readLines(fsys, path.Join(dir, namesFile))
	if err != nil {
		return nil, fmt.Errorf("readLines(%s) > %w", namesFile, err)
	}
	names := splitNames(lines)
	raw[KeyFirstNames], raw[KeyLastNames], raw[KeyFullNames] = names.First, names.Last, names.Full

	numbers, err := readNumbers(fsys, path.Join(dir, numbersFile))
	if err != nil {
		return nil, fmt.Errorf("readNumbers(%s) > %w", numbersFile, err)
	}
	raw[KeyDigits], raw[KeyTeens], raw[KeyTens], raw[KeyPlaces] = numbers.Digits, numbers.Teens, numbers.Tens, numbers.Places

	return FromRaw(info, raw)
}

// SourceFiles returns the names of the files a source directory may contain.
func SourceFiles() []string {
	files := make([]string, 0, len(speechParts)+4)
	for _, part := range speechParts {
		files = append(files, part.stem+".txt")
	}
	return append(files, terminatorsFile, namesFile, numbersFile, sourceConfigFile)
}

func readLines(fsys fs.FS, name string) ([]string, error) {
	contents, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Default().Warn("dictionary file not found", slog.String("path", name))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(contents), "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	// a trailing newline is not an empty entry
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func readSourceInfo(fsys fs.FS, dir string) (SourceInfo, error) {
	info := SourceInfo{Name: path.Base(dir)}
	contents, err := fs.ReadFile(fsys, path.Join(dir, sourceConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		info.Triggers = []string{info.Name}
		info.Description = "No description available"
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("fs.ReadFile(%s) > %w", sourceConfigFile, err)
	}

	var decoded SourceInfo
	if err := yaml.Unmarshal(contents, &decoded); err != nil {
		return info, fmt.Errorf("yaml.Unmarshal(%s) > %w", sourceConfigFile, err)
	}
	if decoded.Name != "" {
		info.Name = decoded.Name
	}
	info.Description = decoded.Description
	if info.Description == "" {
		info.Description = "No description available"
	}
	info.Triggers = decoded.Triggers
	if len(info.Triggers) == 0 {
		info.Triggers = []string{info.Name}
	}
	return info, nil
}

// wordList decodes either a YAML sequence or a space-separated string.
type wordList []string

func (w *wordList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*w = strings.Fields(node.Value)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("node.Decode() > %w", err)
		}
		*w = list
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of words", node.Line)
	}
}

type numbersDocument struct {
	Digits wordList `yaml:"digits"`
	Teens  wordList `yaml:"teens"`
	Tens   wordList `yaml:"tens"`
	Places wordList `yaml:"places"`
}

func readNumbers(fsys fs.FS, name string) (Numbers, error) {
	contents, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Default().Warn("dictionary file not found", slog.String("path", name))
		return Numbers{}, nil
	}
	if err != nil {
		return Numbers{}, fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
	}

	var doc numbersDocument
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return Numbers{}, fmt.Errorf("yaml.Unmarshal(%s) > %w", name, err)
	}
	return Numbers{
		Digits: doc.Digits,
		Teens:  doc.Teens,
		Tens:   doc.Tens,
		Places: doc.Places,
	}, nil
}

// splitTerminators splits terminator lines at the first line without a comma:
// pairs before it are standard, pairs after it are extended.
func splitTerminators(lines []string) (standard, extended []Terminator) {
	ended := false
	for _, line := range lines {
		leading, trailing, found := strings.Cut(line, ",")
		switch {
		case found && !ended:
			standard = append(standard, Terminator{Leading: strings.TrimSpace(leading), Trailing: strings.TrimSpace(trailing)})
		case ended && found:
			extended = append(extended, Terminator{Leading: strings.TrimSpace(leading), Trailing: strings.TrimSpace(trailing)})
		case !found:
			ended = true
		}
	}
	return standard, extended
}

func parseTerminators(lines []string) []Terminator {
	terminators := make([]Terminator, 0, len(lines))
	for _, line := range lines {
		leading, trailing, _ := strings.Cut(line, ",")
		terminators = append(terminators, Terminator{Leading: leading, Trailing: trailing})
	}
	return terminators
}

func formatTerminators(terminators []Terminator) []string {
	lines := make([]string, 0, len(terminators))
	for _, t := range terminators {
		lines = append(lines, t.Leading+","+t.Trailing)
	}
	return lines
}

// splitNames splits names.txt into sections at blank lines. One section holds full
// names, two hold first and last names, three hold first, last and full names.
func splitNames(lines []string) Names {
	sections := [][]string{{}}
	for _, line := range lines {
		if !startsWithWordCharacter(line) {
			sections = append(sections, []string{})
			continue
		}
		sections[len(sections)-1] = append(sections[len(sections)-1], line)
	}

	switch len(sections) {
	case 1:
		return Names{Full: sections[0]}
	case 2:
		return Names{First: sections[0], Last: sections[1]}
	default:
		return Names{First: sections[0], Last: sections[1], Full: sections[2]}
	}
}

func startsWithWordCharacter(line string) bool {
	for _, r := range line {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	}
	return false
}
