// Package lorem builds placeholder documents out of generated sentences and
// renders them as HTML or Markdown.
package lorem

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/at-ishikawa/randomwords/internal/generator"
)

// Options selects the elements a document contains.
type Options struct {
	Paragraphs int

	Decorate bool
	Links    bool
	Code     bool
	Mark     bool

	UnorderedLists  bool
	OrderedLists    bool
	DefinitionLists bool
	Blockquotes     bool
	Headers         bool
	Tables          bool
	HorizontalRules bool
}

func DefaultOptions() Options {
	return Options{
		Paragraphs: 10,
		Decorate:   true,
	}
}

// Document is a generated title and a sequence of block level nodes.
type Document struct {
	Title  string
	Blocks []*html.Node
}

// HTML renders the blocks separated by blank lines.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	for i, block := range d.Blocks {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		if err := html.Render(&buf, block); err != nil {
			return "", fmt.Errorf("html.Render > %w", err)
		}
	}
	buf.WriteString("\n")
	return buf.String(), nil
}

type inlineKind string

const (
	inlineEmphasis inlineKind = "em"
	inlineStrong   inlineKind = "strong"
	inlineMark     inlineKind = "mark"
	inlineCode     inlineKind = "code"
	inlineLink     inlineKind = "a"
)

// Builder draws every decision from the random source of its generator, so a
// seeded generator produces the same document every time.
type Builder struct {
	generator *generator.Generator
	rng       generator.RandomSource
	options   Options
	tier      generator.LengthTier

	added map[inlineKind]bool
}

func New(g *generator.Generator, options Options) (*Builder, error) {
	if options.Paragraphs <= 0 {
		return nil, fmt.Errorf("%w: paragraphs must be a positive integer, got %d", generator.ErrInvalidConfiguration, options.Paragraphs)
	}
	return &Builder{
		generator: g,
		rng:       g.RandomSource(),
		options:   options,
		tier:      g.Config().SentenceLength,
	}, nil
}

// Build generates a new document.
func (b *Builder) Build() *Document {
	b.added = make(map[inlineKind]bool)
	document := &Document{
		Title: generator.Capitalize(b.fragment(2, 5)),
	}

	kinds := b.enabledKinds()
	var blocks []*html.Node
	for i := 0; i < b.options.Paragraphs; i++ {
		if i > 0 {
			kinds = b.rerollKinds()
		}
		// the last paragraph carries every element that has not shown up yet
		if i == b.options.Paragraphs-1 {
			for _, kind := range b.requiredKinds() {
				if !b.added[kind] && !slices.Contains(kinds, kind) {
					kinds = append(kinds, kind)
				}
			}
		}
		blocks = append(blocks, b.paragraph(kinds, false))
	}

	items := b.tierValue(4, 8, 10, 12)
	switch {
	case b.options.UnorderedLists && b.options.OrderedLists:
		blocks = b.injectBlock(blocks, 1, func() *html.Node { return b.list("ul", items) })
		blocks = b.injectBlock(blocks, 1, func() *html.Node { return b.list("ol", items) })
	case b.options.UnorderedLists:
		blocks = b.injectBlock(blocks, 2, func() *html.Node { return b.list("ul", items) })
	case b.options.OrderedLists:
		blocks = b.injectBlock(blocks, 2, func() *html.Node { return b.list("ol", items) })
	}
	if b.options.HorizontalRules {
		blocks = b.injectBlock(blocks, 1, func() *html.Node { return element("hr") })
	}
	if b.options.DefinitionLists {
		blocks = b.injectBlock(blocks, 1, func() *html.Node { return b.definitionList(items) })
	}
	if b.options.Blockquotes {
		blocks = b.injectBlock(blocks, 1, func() *html.Node { return b.blockquote(items/2, false) })
	}
	if b.options.Headers {
		blocks = b.injectHeaders(blocks, document.Title)
	}
	if b.options.Tables {
		blocks = b.injectBlock(blocks, 1, b.table)
	}

	document.Blocks = blocks
	return document
}

func (b *Builder) roll(percent int) bool {
	return b.rng.IntN(100) < percent
}

func (b *Builder) between(min, max int) int {
	return min + b.rng.IntN(max-min+1)
}

func (b *Builder) tierValue(short, medium, long, veryLong int) int {
	switch b.tier {
	case generator.Short:
		return short
	case generator.Long:
		return long
	case generator.VeryLong:
		return veryLong
	default:
		return medium
	}
}

// fragment returns min to max words without a terminator.
func (b *Builder) fragment(min, max int) string {
	words := b.generator.Words(b.between(min, max))
	return strings.TrimRight(words, ".!?;,:—…‽ ")
}

func (b *Builder) requiredKinds() []inlineKind {
	var kinds []inlineKind
	if b.options.Decorate {
		kinds = append(kinds, inlineEmphasis, inlineStrong)
	}
	if b.options.Links {
		kinds = append(kinds, inlineLink)
	}
	if b.options.Code {
		kinds = append(kinds, inlineCode)
	}
	return kinds
}

func (b *Builder) enabledKinds() []inlineKind {
	kinds := b.requiredKinds()
	if b.options.Mark {
		kinds = append(kinds, inlineMark)
	}
	return kinds
}

// rerollKinds gives each enabled element a one in four chance per paragraph.
func (b *Builder) rerollKinds() []inlineKind {
	var kinds []inlineKind
	for _, kind := range b.enabledKinds() {
		if b.rng.IntN(4) == 0 {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
