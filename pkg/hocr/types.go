package hocr

import (
	"hash/fnv"

	"golang.org/x/net/html"
)

// Role is a node's level in the hOCR hierarchy
// The six levels form a fixed sequence from Document down to Word
type Role int

// Hierarchy levels, outermost first. The declaration order is the
// parent-to-child order, so the role below any non-leaf role is r+1.
const (
	RoleDocument Role = iota
	RolePage
	RoleArea
	RoleParagraph
	RoleLine
	RoleWord
)

// roleSpec describes how one hierarchy level appears in markup and how
// the texts of its children are joined back together.
type roleSpec struct {
	name      string // Lowercase role name
	tag       string // Element tag carrying this role
	class     string // hOCR class identifying this role ("" for Document)
	separator string // Join separator for child texts
}

var roleTable = [...]roleSpec{
	RoleDocument:  {name: "document", tag: "body", class: "", separator: "\n\n"},
	RolePage:      {name: "page", tag: "div", class: "ocr_page", separator: "\n\n"},
	RoleArea:      {name: "area", tag: "div", class: "ocr_carea", separator: "\n"},
	RoleParagraph: {name: "paragraph", tag: "p", class: "ocr_par", separator: "\n"},
	RoleLine:      {name: "line", tag: "span", class: "ocr_line", separator: " "},
	RoleWord:      {name: "word", tag: "span", class: "ocrx_word", separator: ""},
}

func (r Role) valid() bool {
	return r >= RoleDocument && r <= RoleWord
}

// String returns the lowercase role name
func (r Role) String() string {
	if !r.valid() {
		return "unknown"
	}
	return roleTable[r].name
}

// Tag returns the markup tag that carries this role
func (r Role) Tag() string {
	if !r.valid() {
		return ""
	}
	return roleTable[r].tag
}

// Class returns the hOCR class that identifies this role
// The Document role has no class; it is located structurally at the body
func (r Role) Class() string {
	if !r.valid() {
		return ""
	}
	return roleTable[r].class
}

// ChildRole returns the role admitted one level below r
// ok is false for Word, which is always a leaf
func (r Role) ChildRole() (Role, bool) {
	if !r.valid() || r == RoleWord {
		return 0, false
	}
	return r + 1, true
}

// Separator returns the string used to join the texts of this role's
// children when reconstructing readable output
func (r Role) Separator() string {
	if !r.valid() {
		return ""
	}
	return roleTable[r].separator
}

// BBox is a rectangle in page pixel coordinates
// Stores the hOCR 'bbox' property: X0, Y0 is the top-left corner,
// X1, Y1 the bottom-right corner
type BBox struct {
	X0 int // Left coordinate
	Y0 int // Top coordinate
	X1 int // Right coordinate
	Y1 int // Bottom coordinate
}

// Width returns the horizontal extent of the box
func (b BBox) Width() int { return b.X1 - b.X0 }

// Height returns the vertical extent of the box
func (b BBox) Height() int { return b.Y1 - b.Y0 }

// IsZero reports whether the box is the all-zero default, which is what
// nodes without a usable bbox property carry
func (b BBox) IsZero() bool { return b == BBox{} }

// Node is one element of the parsed document tree
// Nodes are built once by Parse and never modified afterwards, so a
// tree may be shared between goroutines without synchronization
type Node struct {
	markup     *html.Node // Underlying markup element
	role       Role       // Level in the hierarchy
	id         string     // Value of the id attribute
	hasID      bool       // Whether an id attribute was present
	properties []string   // Raw title properties, split and trimmed
	bbox       BBox       // Coordinates from the title's bbox property
	confidence float64    // Mean recognition confidence (0-100)
	hasConf    bool       // Whether a confidence property parsed
	parent     *Node      // Enclosing node, nil at the root
	children   []*Node    // Matched nodes one level down, in document order
}

// ID returns the node's id attribute, or "" when none was present
func (n *Node) ID() string { return n.id }

// HasID reports whether the markup carried an id attribute
func (n *Node) HasID() bool { return n.hasID }

// Role returns the node's level in the hierarchy
func (n *Node) Role() Role { return n.role }

// BBox returns the node's coordinates
// The zero box means the title had no usable bbox property
func (n *Node) BBox() BBox { return n.bbox }

// Confidence returns the mean recognition confidence parsed from the
// title attribute; ok is false when no confidence property was present
func (n *Node) Confidence() (float64, bool) { return n.confidence, n.hasConf }

// Properties returns the raw strings the title attribute was split
// into, in their original order. The slice must not be modified.
func (n *Node) Properties() []string { return n.properties }

// Parent returns the enclosing node, or nil at the Document root
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in document order
// The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Markup returns the underlying markup element the node was built from
func (n *Node) Markup() *html.Node { return n.markup }

// Pages returns the children of a Document node. Naming sugar over Children.
func (n *Node) Pages() []*Node { return n.children }

// Areas returns the children of a Page node. Naming sugar over Children.
func (n *Node) Areas() []*Node { return n.children }

// Paragraphs returns the children of an Area node. Naming sugar over Children.
func (n *Node) Paragraphs() []*Node { return n.children }

// Lines returns the children of a Paragraph node. Naming sugar over Children.
func (n *Node) Lines() []*Node { return n.children }

// Words returns the children of a Line node. Naming sugar over Children.
func (n *Node) Words() []*Node { return n.children }

// Equal reports whether two nodes carry the same identity
// Identity lives in the id attribute alone: when either side has no id
// the nodes are never equal, not even a node compared against itself
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return false
	}
	return n.hasID && other.hasID && n.id == other.id
}

// Hash returns a stable bucket derived from the node's identity
// All nodes without an id share one fixed bucket
func (n *Node) Hash() uint64 {
	return hashID(n.id, n.hasID)
}

// hashID buckets an id with FNV-1a; absent ids get the bare offset basis.
func hashID(id string, present bool) uint64 {
	h := fnv.New64a()
	if present {
		h.Write([]byte(id))
	}
	return h.Sum64()
}
