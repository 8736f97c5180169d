package hocr

// Summary holds per-role node counts and aggregate word confidence for
// one parsed tree.
type Summary struct {
	Pages      int             `yaml:"pages" json:"pages"`
	Areas      int             `yaml:"areas" json:"areas"`
	Paragraphs int             `yaml:"paragraphs" json:"paragraphs"`
	Lines      int             `yaml:"lines" json:"lines"`
	Words      int             `yaml:"words" json:"words"`
	Confidence ConfidenceStats `yaml:"confidence" json:"confidence"`
}

// ConfidenceStats aggregates the recognition confidences of the words
// that carry one. Min, Max and Mean are meaningful only when Words > 0.
type ConfidenceStats struct {
	Words int     `yaml:"words" json:"words"` // Words carrying a confidence
	Min   float64 `yaml:"min" json:"min"`     // Lowest confidence seen
	Max   float64 `yaml:"max" json:"max"`     // Highest confidence seen
	Mean  float64 `yaml:"mean" json:"mean"`   // Average over confident words
}

// Summarize walks the tree below root and tallies nodes per role,
// together with confidence statistics over the words that carry one.
func Summarize(root *Node) Summary {
	var s Summary
	if root == nil {
		return s
	}
	var sum float64

	var walk func(*Node)
	walk = func(n *Node) {
		switch n.role {
		case RolePage:
			s.Pages++
		case RoleArea:
			s.Areas++
		case RoleParagraph:
			s.Paragraphs++
		case RoleLine:
			s.Lines++
		case RoleWord:
			s.Words++
			if conf, ok := n.Confidence(); ok {
				if s.Confidence.Words == 0 || conf < s.Confidence.Min {
					s.Confidence.Min = conf
				}
				if s.Confidence.Words == 0 || conf > s.Confidence.Max {
					s.Confidence.Max = conf
				}
				s.Confidence.Words++
				sum += conf
			}
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)

	if s.Confidence.Words > 0 {
		s.Confidence.Mean = sum / float64(s.Confidence.Words)
	}
	return s
}

// FindByID returns the first node in document order whose id matches,
// or nil when the tree holds no such node. Nodes without an id never
// match.
func FindByID(root *Node, id string) *Node {
	if root == nil {
		return nil
	}
	if root.hasID && root.id == id {
		return root
	}
	for _, c := range root.children {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
