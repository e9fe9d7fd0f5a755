// Package terminal prints a colored showcase of every generator operation.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
	"github.com/at-ishikawa/randomwords/internal/generator"
)

var (
	exactCharacters = []int{20, 50, 120, 200, 500}
	rangeCharacters = []struct{ min, max int }{
		{10, 15}, {20, 25}, {50, 53}, {100, 110}, {500, 600},
	}
)

type palette struct {
	header1  *color.Color
	header2  *color.Color
	text     *color.Color
	counter  *color.Color
	marker   *color.Color
	bracket  *color.Color
	language *color.Color
	label    *color.Color
}

// Printer writes showcase sections, cycling through its dictionaries section by section.
type Printer struct {
	writer       io.Writer
	dictionaries []*dictionary.Dictionary
	options      []generator.Option
	colors       palette
}

func NewPrinter(writer io.Writer, dictionaries []*dictionary.Dictionary, opts ...generator.Option) (*Printer, error) {
	if len(dictionaries) == 0 {
		return nil, errors.New("at least one dictionary is required")
	}
	return &Printer{
		writer:       writer,
		dictionaries: dictionaries,
		options:      opts,
		colors: palette{
			header1:  color.New(color.FgGreen, color.Bold),
			header2:  color.New(color.FgYellow, color.Bold),
			text:     color.New(color.FgYellow),
			counter:  color.New(color.FgCyan, color.Bold),
			marker:   color.New(color.FgGreen, color.Bold),
			bracket:  color.New(color.FgCyan),
			language: color.New(color.FgMagenta, color.Bold),
			label:    color.New(color.FgWhite, color.Bold),
		},
	}, nil
}

// PrintAll writes every section in order.
func (p *Printer) PrintAll() error {
	sections := []func() error{
		func() error { return p.CombinedSentences(3) },
		p.RandomSentences,
		p.RandomParagraphs,
		p.RandomWords,
		p.RandomCharacters,
	}
	for _, section := range sections {
		if err := section(); err != nil {
			return err
		}
	}
	return nil
}

// CombinedSentences writes one medium sentence per dictionary.
func (p *Printer) CombinedSentences(paragraphLength int) error {
	p.header1("Random Combined Sentences")
	for i := range p.dictionaries {
		g, err := p.generator(i, func(cfg *generator.Config) {
			cfg.SentenceLength = generator.Medium
			cfg.ParagraphLength = paragraphLength
		})
		if err != nil {
			return err
		}
		s := g.Sentence(0)
		p.printf("%s %s\n", p.marker(), p.colors.text.Sprint(s))
		p.printf("%s\n\n", p.wordCounter(i, s))
	}
	return nil
}

// RandomSentences writes a sentence of each length tier.
func (p *Printer) RandomSentences() error {
	p.header1("Random Sentences")
	for i, tier := range generator.LengthTiers {
		g, err := p.generator(i, func(cfg *generator.Config) {
			cfg.SentenceLength = tier
		})
		if err != nil {
			return err
		}
		p.header2(fmt.Sprintf("Random %s sentence", tier))
		s := g.Sentence(0)
		p.printf("%s\n", p.colors.text.Sprint(s))
		p.printf("%s\n", p.wordCounter(i, s))
	}
	return nil
}

// RandomParagraphs writes a three sentence paragraph of each length tier.
func (p *Printer) RandomParagraphs() error {
	p.header1("Random Paragraphs")
	for i, tier := range generator.LengthTiers {
		g, err := p.generator(i, func(cfg *generator.Config) {
			cfg.SentenceLength = tier
			cfg.ParagraphLength = 3
		})
		if err != nil {
			return err
		}
		p.header2(fmt.Sprintf("Random Paragraph (%d %s sentences)", g.Config().ParagraphLength, tier))
		paragraph := g.DefaultParagraph()
		p.printf("%s\n", p.colors.text.Sprint(paragraph))
		p.printf("%s\n", p.wordCounter(i, paragraph))
	}
	return nil
}

// RandomWords writes 10, 15, 30, ... words, one count per dictionary.
func (p *Printer) RandomWords() error {
	counts := make([]string, len(p.dictionaries))
	for i := range p.dictionaries {
		counts[i] = fmt.Sprint(wordCount(i))
	}
	p.header1(fmt.Sprintf("[%s] Random Words", strings.Join(counts, ", ")))

	for i := range p.dictionaries {
		g, err := p.generator(i, nil)
		if err != nil {
			return err
		}
		p.header2(fmt.Sprintf("%d Random Words", wordCount(i)))
		s := g.Words(wordCount(i))
		p.printf("%s %s\n", p.marker(), p.colors.text.Sprint(s))
		p.printf("%s\n", p.wordCounter(i, s))
	}
	return nil
}

// RandomCharacters writes exact and ranged character strings.
func (p *Printer) RandomCharacters() error {
	p.header1("Random Characters (exact length)")
	for i, n := range exactCharacters {
		g, err := p.generator(i, nil)
		if err != nil {
			return err
		}
		s, err := g.Characters(n, n)
		if err != nil {
			return fmt.Errorf("generator.Characters(%d) > %w", n, err)
		}
		p.printf("%s %s %s %s\n", p.marker(), p.colors.label.Sprintf("%d:", n), p.colors.text.Sprint(s), p.counter(i, humanize.Comma(int64(generator.Length(s)))))
	}

	p.header1("Random Characters (length range)")
	for i, r := range rangeCharacters {
		g, err := p.generator(i, nil)
		if err != nil {
			return err
		}
		s, err := g.Characters(r.min, r.max)
		if err != nil {
			return fmt.Errorf("generator.Characters(%d, %d) > %w", r.min, r.max, err)
		}
		p.printf("%s %s %s %s\n", p.marker(), p.colors.label.Sprintf("[%d-%d]:", r.min, r.max), p.colors.text.Sprint(s), p.counter(i, humanize.Comma(int64(generator.Length(s)))))
	}
	return nil
}

func wordCount(i int) int {
	return i*i*5 + 10
}

// generator returns a session over the index-th dictionary, wrapping around, with
// extended punctuation on.
func (p *Printer) generator(index int, modify func(cfg *generator.Config)) (*generator.Generator, error) {
	d := p.source(index)
	cfg := generator.DefaultConfig()
	cfg.ExtendedPunctuation = true
	if modify != nil {
		modify(&cfg)
	}
	g, err := generator.New(d, cfg, p.options...)
	if err != nil {
		return nil, fmt.Errorf("generator.New(%s) > %w", d.Name(), err)
	}
	return g, nil
}

func (p *Printer) source(index int) *dictionary.Dictionary {
	return p.dictionaries[index%len(p.dictionaries)]
}

func (p *Printer) header1(text string) {
	p.printf("\n\n%s\n%s\n\n", p.colors.header1.Sprint(text), p.colors.header1.Sprint(strings.Repeat("=", generator.Length(text))))
}

func (p *Printer) header2(text string) {
	p.printf("\n\n%s\n%s\n\n", p.colors.header2.Sprint(text), p.colors.header2.Sprint(strings.Repeat("-", generator.Length(text))))
}

func (p *Printer) marker() string {
	return p.colors.marker.Sprint("•")
}

func (p *Printer) wordCounter(index int, s string) string {
	return p.counter(index, fmt.Sprintf("%d words, %s characters", len(strings.Fields(s)), humanize.Comma(int64(generator.Length(s)))))
}

func (p *Printer) counter(index int, value string) string {
	language := p.colors.bracket.Sprint("(") + p.colors.language.Sprint(p.source(index).Name()) + p.colors.bracket.Sprint(")")
	return p.colors.bracket.Sprint("[") + p.colors.counter.Sprint(value) + p.colors.bracket.Sprint("]") + " " + language
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.writer, format, args...)
}
