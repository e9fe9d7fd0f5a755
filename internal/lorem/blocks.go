package lorem

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/at-ishikawa/randomwords/internal/generator"
)

func element(tag string, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, child := range children {
		n.AppendChild(child)
	}
	return n
}

// container puts every child on its own line.
func container(tag string, children ...*html.Node) *html.Node {
	n := element(tag)
	for _, child := range children {
		n.AppendChild(textNode("\n"))
		n.AppendChild(child)
	}
	n.AppendChild(textNode("\n"))
	return n
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func (b *Builder) paragraph(kinds []inlineKind, quoted bool) *html.Node {
	sentences := b.generator.Sentences(b.tierValue(2, 4, 6, 8))
	if quoted {
		sentences = sentences[:max(1, len(sentences)/2)]
	}
	return element("p", b.inline(strings.Join(sentences, " "), kinds)...)
}

func (b *Builder) inlineLimit(kind inlineKind) int {
	if kind == inlineCode || kind == inlineMark {
		return 1
	}
	return b.tierValue(1, 2, 3, 4)
}

// inline splits text into words and inserts elements of kinds between them.
// An element never opens or closes the text.
func (b *Builder) inline(text string, kinds []inlineKind) []*html.Node {
	words := strings.Fields(text)
	parts := make([]*html.Node, 0, len(words))
	for _, word := range words {
		parts = append(parts, textNode(word))
	}

	for _, kind := range kinds {
		for i := 0; i < b.inlineLimit(kind); i++ {
			if len(parts) < 2 {
				break
			}
			position := 1 + b.rng.IntN(len(parts)-1)
			parts = append(parts[:position], append([]*html.Node{b.inlineElement(kind)}, parts[position:]...)...)
			b.added[kind] = true
		}
	}
	return joinInline(parts)
}

// joinInline merges adjacent words into one text node.
func joinInline(parts []*html.Node) []*html.Node {
	var nodes []*html.Node
	var text strings.Builder
	for i, part := range parts {
		if i > 0 {
			text.WriteString(" ")
		}
		if part.Type == html.TextNode {
			text.WriteString(part.Data)
			continue
		}
		if text.Len() > 0 {
			nodes = append(nodes, textNode(text.String()))
			text.Reset()
		}
		nodes = append(nodes, part)
	}
	if text.Len() > 0 {
		nodes = append(nodes, textNode(text.String()))
	}
	return nodes
}

func (b *Builder) inlineElement(kind inlineKind) *html.Node {
	switch kind {
	case inlineCode:
		return element("code", textNode(strings.TrimRight(b.generator.Words(b.between(1, 5)), ".")))
	case inlineLink:
		return b.link()
	default:
		return element(string(kind), textNode(b.fragment(1, 4)))
	}
}

func (b *Builder) link() *html.Node {
	a := element("a", textNode(b.fragment(1, 8)))
	a.Attr = []html.Attribute{
		{Key: "href", Val: "https://example.com/" + b.pathSegment() + "/" + b.pathSegment()},
		{Key: "title", Val: generator.Capitalize(b.fragment(4, 8))},
	}
	return a
}

func (b *Builder) pathSegment() string {
	segment, err := b.generator.Characters(4, 8, generator.WholeWords(false), generator.Whitespace(false))
	if err != nil || segment == "" {
		segment = b.generator.Word()
	}
	return url.PathEscape(strings.ToLower(segment))
}

func (b *Builder) itemKinds() []inlineKind {
	var kinds []inlineKind
	if b.options.Links && b.roll(20) {
		kinds = append(kinds, inlineLink)
	}
	if b.options.Decorate && b.roll(50) {
		kinds = append(kinds, inlineEmphasis)
	}
	if b.options.Decorate && b.roll(50) {
		kinds = append(kinds, inlineStrong)
	}
	if b.options.Code && b.roll(10) {
		kinds = append(kinds, inlineCode)
	}
	if b.options.Mark && b.roll(10) {
		kinds = append(kinds, inlineMark)
	}
	return kinds
}

// list builds a ul or an ol of count items.
func (b *Builder) list(tag string, count int) *html.Node {
	items := make([]*html.Node, 0, count)
	for i := 0; i < count; i++ {
		text := generator.Capitalize(b.fragment(4, 8))
		items = append(items, element("li", b.inline(text, b.itemKinds())...))
	}
	return container(tag, items...)
}

func (b *Builder) definitionList(count int) *html.Node {
	terms := make([]*html.Node, 0, count*2)
	for i := 0; i < count; i++ {
		term := generator.Capitalize(b.fragment(1, 4))
		definition := generator.Capitalize(b.fragment(4, 8))
		terms = append(terms,
			element("dt", textNode(term)),
			element("dd", b.inline(definition, b.itemKinds())...),
		)
	}
	return container("dl", terms...)
}

// blockquote splits count paragraphs between the quote and one nested quote.
// Only the outer quote is attributed.
func (b *Builder) blockquote(count int, nested bool) *html.Node {
	outer, inner := 1, 0
	if count > 1 && !nested {
		outer = b.between(1, count-1)
		inner = count - outer
	}

	var children []*html.Node
	for i := 0; i < outer; i++ {
		var kinds []inlineKind
		for _, kind := range b.enabledKinds() {
			if b.roll(60) {
				kinds = append(kinds, kind)
			}
		}
		children = append(children, b.paragraph(kinds, true))
	}
	if inner > 0 {
		children = append(children, b.blockquote(inner, true))
	}
	if !nested {
		if name := b.generator.Name(); name != "" {
			children = append(children, element("cite", textNode("— "+name)))
		}
	}
	return container("blockquote", children...)
}

func (b *Builder) header(level int, text string) *html.Node {
	level = min(level, 6)
	return element("h"+strconv.Itoa(level), textNode(text))
}

// headerCount is the number of header levels used for a number of paragraphs.
func headerCount(paragraphs int) int {
	switch {
	case paragraphs == 1:
		return 1
	case paragraphs <= 3:
		return 2
	case paragraphs <= 5:
		return 4
	case paragraphs == 6:
		return 5
	default:
		return 6
	}
}

// injectHeaders opens the document with the title as h1 and spreads one header of
// each deeper level over the remaining blocks.
func (b *Builder) injectHeaders(blocks []*html.Node, title string) []*html.Node {
	count := headerCount(b.options.Paragraphs)
	result := []*html.Node{b.header(1, title), blocks[0]}
	rest := blocks[1:]
	if count == 1 {
		return append(result, rest...)
	}

	size := max(1, len(rest)/count)
	for level := 2; len(rest) > 0 && level <= count; level++ {
		n := min(size, len(rest))
		result = append(result, b.header(level, generator.Capitalize(b.fragment(2, 8))))
		result = append(result, rest[:n]...)
		rest = rest[n:]
	}
	return append(result, rest...)
}

func (b *Builder) table() *html.Node {
	size := b.tierValue(2, 2, 4, 6)

	headings := make([]*html.Node, 0, size)
	for i := 0; i < size; i++ {
		headings = append(headings, element("th", textNode(generator.Capitalize(b.fragment(1, 2)))))
	}
	rows := []*html.Node{container("tr", headings...)}
	for i := 0; i < size; i++ {
		cells := make([]*html.Node, 0, size)
		for j := 0; j < size; j++ {
			cells = append(cells, element("td", textNode(strconv.Itoa(b.rng.IntN(10000)))))
		}
		rows = append(rows, container("tr", cells...))
	}
	return container("table", rows...)
}

// injectBlock inserts count blocks built by build at random positions, the first one
// within the first half of blocks.
func (b *Builder) injectBlock(blocks []*html.Node, count int, build func() *html.Node) []*html.Node {
	n := 1
	if len(blocks) >= 2 {
		n = 1 + b.rng.IntN(len(blocks)/2)
	}
	n = min(n, len(blocks))

	result := make([]*html.Node, 0, len(blocks)+count)
	result = append(result, blocks[:n]...)
	result = append(result, build())
	rest := blocks[n:]
	added := 1
	for len(rest) > 0 {
		n := 1 + b.rng.IntN(len(rest))
		result = append(result, rest[:n]...)
		rest = rest[n:]
		if added < count {
			result = append(result, build())
			added++
		}
	}
	return result
}
