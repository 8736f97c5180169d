package hocr

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// genericSeparators maps a node's own class to the separator placed
// between its children's texts. Classes without an entry join with a
// plain newline.
var genericSeparators = map[string]string{
	"ocr_page":  "\n\n",
	"ocr_carea": "\n",
	"ocr_par":   "\n",
	"ocr_line":  " ",
}

// GenericNode is a node of the attribute-driven tree, the loose
// alternative to the role hierarchy built by Parse: any direct child
// element carrying an id becomes a child node, whatever its tag or
// class. Useful for traversing documents whose structure strays from
// the six-level hOCR convention. Like Node, a GenericNode tree is
// immutable once built.
type GenericNode struct {
	markup     *html.Node     // Underlying markup element
	class      string         // First token of the class attribute
	id         string         // Value of the id attribute
	hasID      bool           // Whether an id attribute was present
	properties []string       // Raw title properties, split and trimmed
	bbox       BBox           // Coordinates from the title's bbox property
	confidence float64        // Mean recognition confidence (0-100)
	hasConf    bool           // Whether a confidence property parsed
	parent     *GenericNode   // Enclosing node, nil at the root
	children   []*GenericNode // Identified direct children, in document order
}

// ParseGenericFile reads an hOCR file and parses its contents into a
// generic tree. Read failures wrap ErrSourceRead.
func ParseGenericFile(path string) (*GenericNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	return ParseGeneric(data)
}

// ParseGeneric converts raw markup into a generic tree rooted at the
// body element. Direct child elements without an id attribute are
// skipped, along with everything beneath them.
func ParseGeneric(data []byte) (*GenericNode, error) {
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

	return buildGenericNode(body, nil), nil
}

// buildGenericNode constructs a generic node for a markup element and
// recurses over its identified direct children. The root is built
// unconditionally; admission applies only below it.
func buildGenericNode(markup *html.Node, parent *GenericNode) *GenericNode {
	n := &GenericNode{
		markup: markup,
		parent: parent,
	}
	n.id, n.hasID = attrValue(markup, "id")

	if class, ok := attrValue(markup, "class"); ok {
		if tokens := strings.Fields(class); len(tokens) > 0 {
			n.class = tokens[0]
		}
	}

	if title, ok := attrValue(markup, "title"); ok {
		d := parseTitleAttr(title)
		n.properties = d.properties
		n.bbox = d.bbox
		n.confidence = d.confidence
		n.hasConf = d.hasConf
	}

	for c := markup.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if _, ok := attrValue(c, "id"); !ok {
			continue
		}
		n.children = append(n.children, buildGenericNode(c, n))
	}
	return n
}

// ID returns the node's id attribute, or "" when none was present
func (n *GenericNode) ID() string { return n.id }

// HasID reports whether the markup carried an id attribute
func (n *GenericNode) HasID() bool { return n.hasID }

// Class returns the first token of the node's class attribute
func (n *GenericNode) Class() string { return n.class }

// BBox returns the node's coordinates
// The zero box means the title had no usable bbox property
func (n *GenericNode) BBox() BBox { return n.bbox }

// Confidence returns the mean recognition confidence parsed from the
// title attribute; ok is false when no confidence property was present
func (n *GenericNode) Confidence() (float64, bool) { return n.confidence, n.hasConf }

// Properties returns the raw strings the title attribute was split
// into, in their original order. The slice must not be modified.
func (n *GenericNode) Properties() []string { return n.properties }

// Parent returns the enclosing node, or nil at the root
func (n *GenericNode) Parent() *GenericNode { return n.parent }

// Children returns the identified direct children in document order
// The slice must not be modified.
func (n *GenericNode) Children() []*GenericNode { return n.children }

// Markup returns the underlying markup element the node was built from
func (n *GenericNode) Markup() *html.Node { return n.markup }

// Text reconstructs the readable text beneath the node. A node with
// children joins the children's texts with the separator chosen by the
// node's own class; a childless node returns the trimmed text content
// of its markup.
func (n *GenericNode) Text() string {
	if len(n.children) == 0 {
		return strings.TrimSpace(textContent(n.markup))
	}

	parts := make([]string, len(n.children))
	for i, child := range n.children {
		parts[i] = child.Text()
	}
	sep, ok := genericSeparators[n.class]
	if !ok {
		sep = "\n"
	}
	return strings.Join(parts, sep)
}

// Equal reports whether two nodes carry the same identity, under the
// same contract as Node.Equal: no id, no equality.
func (n *GenericNode) Equal(other *GenericNode) bool {
	if n == nil || other == nil {
		return false
	}
	return n.hasID && other.hasID && n.id == other.id
}

// Hash returns a stable bucket derived from the node's identity
// All nodes without an id share one fixed bucket
func (n *GenericNode) Hash() uint64 {
	return hashID(n.id, n.hasID)
}
