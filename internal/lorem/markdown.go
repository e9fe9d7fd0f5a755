package lorem

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Markdown renders the document with one blank line between blocks. Definition
// lists use the "term\n: definition" extension syntax.
func (d *Document) Markdown() string {
	blocks := make([]string, 0, len(d.Blocks))
	for _, block := range d.Blocks {
		if md := markdownBlock(block); md != "" {
			blocks = append(blocks, md)
		}
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func markdownBlock(n *html.Node) string {
	switch n.Data {
	case "p":
		return markdownInline(n)
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level, _ := strconv.Atoi(n.Data[1:])
		return strings.Repeat("#", level) + " " + markdownInline(n)
	case "hr":
		return "* * *"
	case "ul", "ol":
		var lines []string
		for i, item := range elementChildren(n) {
			marker := "*"
			if n.Data == "ol" {
				marker = strconv.Itoa(i+1) + "."
			}
			lines = append(lines, marker+" "+markdownInline(item))
		}
		return strings.Join(lines, "\n")
	case "dl":
		var lines []string
		for _, child := range elementChildren(n) {
			switch child.Data {
			case "dt":
				if len(lines) > 0 {
					lines = append(lines, "")
				}
				lines = append(lines, markdownInline(child))
			case "dd":
				lines = append(lines, ": "+markdownInline(child))
			}
		}
		return strings.Join(lines, "\n")
	case "blockquote":
		var parts []string
		for _, child := range elementChildren(n) {
			if child.Data == "cite" {
				parts = append(parts, nodeText(child))
				continue
			}
			parts = append(parts, markdownBlock(child))
		}
		lines := strings.Split(strings.Join(parts, "\n\n"), "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRight("> "+line, " ")
		}
		return strings.Join(lines, "\n")
	case "table":
		var lines []string
		for i, row := range elementChildren(n) {
			var cells []string
			for _, cell := range elementChildren(row) {
				cells = append(cells, markdownInline(cell))
			}
			lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
			if i == 0 {
				lines = append(lines, "|"+strings.Repeat(" --- |", len(cells)))
			}
		}
		return strings.Join(lines, "\n")
	default:
		return markdownInline(n)
	}
}

func markdownInline(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			continue
		}
		text := markdownInline(c)
		switch c.Data {
		case "em":
			sb.WriteString("_" + text + "_")
		case "strong":
			sb.WriteString("**" + text + "**")
		case "mark":
			sb.WriteString("==" + text + "==")
		case "code":
			sb.WriteString("`" + text + "`")
		case "a":
			fmt.Fprintf(&sb, "[%s](%s %q)", text, attribute(c, "href"), attribute(c, "title"))
		default:
			sb.WriteString(text)
		}
	}
	return strings.TrimSpace(sb.String())
}

// elementChildren skips the whitespace between the children of a container.
func elementChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

func attribute(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// nodeText returns the concatenated text of n and its descendants.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return strings.TrimSpace(sb.String())
}
