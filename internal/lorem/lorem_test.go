package lorem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
	"github.com/at-ishikawa/randomwords/internal/generator"
)

func newTestBuilder(t *testing.T, seed uint64, options Options) *Builder {
	t.Helper()

	d, err := dictionary.LoadBuiltin(dictionary.DefaultSource)
	require.NoError(t, err)
	config := generator.DefaultConfig()
	config.SentenceLength = generator.Short
	g, err := generator.New(d, config, generator.WithRandomSource(generator.NewRandomSource(seed)))
	require.NoError(t, err)

	b, err := New(g, options)
	require.NoError(t, err)
	return b
}

func countElements(blocks []*html.Node, tag string) int {
	count := 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			count++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, block := range blocks {
		walk(block)
	}
	return count
}

func TestNew_InvalidParagraphs(t *testing.T) {
	d, err := dictionary.LoadBuiltin(dictionary.DefaultSource)
	require.NoError(t, err)
	g, err := generator.New(d, generator.DefaultConfig())
	require.NoError(t, err)

	_, err = New(g, Options{Paragraphs: 0})
	assert.ErrorIs(t, err, generator.ErrInvalidConfiguration)
}

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		validate func(t *testing.T, document *Document)
	}{
		{
			name:    "default options",
			options: DefaultOptions(),
			validate: func(t *testing.T, document *Document) {
				assert.Len(t, document.Blocks, 10)
				assert.Equal(t, 10, countElements(document.Blocks, "p"))
				assert.Positive(t, countElements(document.Blocks, "em"))
				assert.Positive(t, countElements(document.Blocks, "strong"))
				assert.Zero(t, countElements(document.Blocks, "a"))
			},
		},
		{
			name:    "plain paragraphs",
			options: Options{Paragraphs: 3},
			validate: func(t *testing.T, document *Document) {
				assert.Len(t, document.Blocks, 3)
				for _, block := range document.Blocks {
					assert.Equal(t, "p", block.Data)
					assert.Empty(t, elementChildren(block))
				}
			},
		},
		{
			name:    "every inline element in a single paragraph",
			options: Options{Paragraphs: 1, Decorate: true, Links: true, Code: true, Mark: true},
			validate: func(t *testing.T, document *Document) {
				for _, tag := range []string{"em", "strong", "a", "code", "mark"} {
					assert.Equal(t, 1, countElements(document.Blocks, tag), tag)
				}
			},
		},
		{
			name:    "one header for a single paragraph",
			options: Options{Paragraphs: 1, Headers: true},
			validate: func(t *testing.T, document *Document) {
				require.Len(t, document.Blocks, 2)
				assert.Equal(t, "h1", document.Blocks[0].Data)
				assert.Equal(t, document.Title, nodeText(document.Blocks[0]))
				assert.Equal(t, "p", document.Blocks[1].Data)
			},
		},
		{
			name:    "every header level",
			options: Options{Paragraphs: 7, Headers: true},
			validate: func(t *testing.T, document *Document) {
				for _, tag := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
					assert.Equal(t, 1, countElements(document.Blocks, tag), tag)
				}
				assert.Equal(t, 7, countElements(document.Blocks, "p"))
			},
		},
		{
			name:    "unordered and ordered lists",
			options: Options{Paragraphs: 4, UnorderedLists: true, OrderedLists: true},
			validate: func(t *testing.T, document *Document) {
				assert.Equal(t, 1, countElements(document.Blocks, "ul"))
				assert.Equal(t, 1, countElements(document.Blocks, "ol"))
				assert.Equal(t, 8, countElements(document.Blocks, "li"))
			},
		},
		{
			name:    "two unordered lists",
			options: Options{Paragraphs: 10, UnorderedLists: true},
			validate: func(t *testing.T, document *Document) {
				assert.Equal(t, 2, countElements(document.Blocks, "ul"))
				assert.Len(t, document.Blocks, 12)
			},
		},
		{
			name:    "definition list",
			options: Options{Paragraphs: 2, DefinitionLists: true},
			validate: func(t *testing.T, document *Document) {
				assert.Equal(t, 1, countElements(document.Blocks, "dl"))
				assert.Equal(t, 4, countElements(document.Blocks, "dt"))
				assert.Equal(t, 4, countElements(document.Blocks, "dd"))
			},
		},
		{
			name:    "nested blockquote",
			options: Options{Paragraphs: 2, Blockquotes: true},
			validate: func(t *testing.T, document *Document) {
				assert.Equal(t, 2, countElements(document.Blocks, "blockquote"))
				assert.LessOrEqual(t, countElements(document.Blocks, "cite"), 1)
			},
		},
		{
			name:    "table and horizontal rule",
			options: Options{Paragraphs: 2, Tables: true, HorizontalRules: true},
			validate: func(t *testing.T, document *Document) {
				assert.Equal(t, 1, countElements(document.Blocks, "table"))
				assert.Equal(t, 3, countElements(document.Blocks, "tr"))
				assert.Equal(t, 2, countElements(document.Blocks, "th"))
				assert.Equal(t, 4, countElements(document.Blocks, "td"))
				assert.Equal(t, 1, countElements(document.Blocks, "hr"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document := newTestBuilder(t, 11, tt.options).Build()
			assert.NotEmpty(t, document.Title)
			tt.validate(t, document)
		})
	}
}

func TestBuilder_Build_Reproducible(t *testing.T) {
	options := Options{Paragraphs: 5, Decorate: true, Links: true, UnorderedLists: true, Headers: true}

	first, err := newTestBuilder(t, 5, options).Build().HTML()
	require.NoError(t, err)
	second, err := newTestBuilder(t, 5, options).Build().HTML()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHeaderCount(t *testing.T) {
	tests := []struct {
		paragraphs int
		want       int
	}{
		{paragraphs: 1, want: 1},
		{paragraphs: 2, want: 2},
		{paragraphs: 3, want: 2},
		{paragraphs: 5, want: 4},
		{paragraphs: 6, want: 5},
		{paragraphs: 20, want: 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, headerCount(tt.paragraphs), tt.paragraphs)
	}
}

func TestDocument_HTML(t *testing.T) {
	link := element("a", textNode("here"))
	link.Attr = []html.Attribute{{Key: "href", Val: "https://example.com/a/b"}}
	document := &Document{
		Blocks: []*html.Node{
			element("p", textNode("a < b "), link),
			element("hr"),
			container("ul", element("li", textNode("one"))),
		},
	}

	got, err := document.HTML()
	require.NoError(t, err)
	assert.Equal(t, "<p>a &lt; b <a href=\"https://example.com/a/b\">here</a></p>\n\n<hr/>\n\n<ul>\n<li>one</li>\n</ul>\n", got)
}
