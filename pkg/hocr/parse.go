package hocr

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrSourceRead reports that an input file could not be read.
	ErrSourceRead = errors.New("cannot read hocr source")
	// ErrMarkup reports that the markup parser produced no tree at all.
	ErrMarkup = errors.New("cannot parse hocr markup")
)

// ParseFile reads an hOCR file and parses its contents into a document
// tree. Read failures wrap ErrSourceRead.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	return Parse(data)
}

// Parse converts raw hOCR markup into a document tree rooted at the
// body element. Structural problems inside the markup never fail the
// parse: elements that do not fit the hierarchy are skipped, and input
// without any recognized hOCR content yields a childless Document node.
// Only a markup parser failure returns an error, wrapping ErrMarkup.
func Parse(data []byte) (*Node, error) {
	decoded, err := decodeCharset(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarkup, err)
	}

	doc, err := html.Parse(strings.NewReader(string(decoded)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarkup, err)
	}

	body := findBody(doc)
	if body == nil {
		return nil, fmt.Errorf("%w: no body element", ErrMarkup)
	}

	return buildNode(body, RoleDocument, nil), nil
}

// decodeCharset inspects the markup's charset declaration and converts
// legacy single-byte content to UTF-8. Content without a declaration,
// or declaring utf-8, passes through untouched.
func decodeCharset(data []byte) ([]byte, error) {
	content := string(data)
	idx := strings.Index(content, "charset=")
	if idx < 0 {
		return data, nil
	}

	snippet := content[idx+len("charset="):]
	if len(snippet) > 20 {
		snippet = snippet[:20]
	}
	fields := strings.FieldsFunc(snippet, func(r rune) bool {
		return r == '"' || r == ';' || r == '\'' || r == '>'
	})
	if len(fields) == 0 {
		return data, nil
	}

	enc := strings.ToLower(strings.TrimSpace(fields[0]))
	if enc == "" || enc == "utf-8" {
		return data, nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", enc, err)
	}
	return decoded, nil
}

// buildNode constructs the node for a markup element carrying the given
// role, then recurses over the descendants matching the role one level
// down. Word terminates the recursion. Construction never fails;
// missing or malformed attributes leave fields at their defaults.
func buildNode(markup *html.Node, role Role, parent *Node) *Node {
	n := &Node{
		markup: markup,
		role:   role,
		parent: parent,
	}
	n.id, n.hasID = attrValue(markup, "id")

	if title, ok := attrValue(markup, "title"); ok {
		d := parseTitleAttr(title)
		n.properties = d.properties
		n.bbox = d.bbox
		n.confidence = d.confidence
		n.hasConf = d.hasConf
	}

	childRole, ok := role.ChildRole()
	if !ok {
		return n
	}
	for _, m := range findDescendants(markup, childRole.Tag(), childRole.Class()) {
		n.children = append(n.children, buildNode(m, childRole, n))
	}
	return n
}

// findDescendants returns every descendant element below n carrying the
// given tag and class token, in document order. The walk continues into
// matched elements as well, so nested occurrences are all reported.
// Wrapper elements between hierarchy levels are walked through.
func findDescendants(n *html.Node, tag, class string) []*html.Node {
	var matches []*html.Node

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag && hasClass(node, class) {
			matches = append(matches, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	return matches
}

// hasClass reports whether the element's class attribute contains the
// given whitespace-separated token. The match is token-exact, so
// "ocr_page" does not match a class of "ocr_pagex".
func hasClass(n *html.Node, class string) bool {
	val, ok := attrValue(n, "class")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(val) {
		if token == class {
			return true
		}
	}
	return false
}

// findBody locates the body element of a parsed markup tree.
func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}

// attrValue returns the value of the named attribute and whether the
// attribute was present at all.
func attrValue(n *html.Node, name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}
