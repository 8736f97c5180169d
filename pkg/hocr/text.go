package hocr

import (
	"strings"

	"golang.org/x/net/html"
)

// Text reconstructs the readable text beneath the node, recomputing it
// on every call. A node with children joins the children's texts with
// the separator belonging to the node's role: "\n\n" between pages and
// between areas on a page, "\n" between paragraphs and between lines,
// " " between the words of a line. A node without children falls back
// to the text content of its own markup, trimmed of surrounding
// whitespace; trimming happens only at such true leaves, never at
// joins.
func (n *Node) Text() string {
	if len(n.children) == 0 {
		return strings.TrimSpace(textContent(n.markup))
	}

	parts := make([]string, len(n.children))
	for i, child := range n.children {
		parts[i] = child.Text()
	}
	return strings.Join(parts, n.role.Separator())
}

// textContent concatenates every text node beneath n in document order,
// without altering any whitespace.
func textContent(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return b.String()
}
