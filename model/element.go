package model

// ElementType represents the type of page element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeCell
	ElementTypeRule
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeCell:
		return "Cell"
	case ElementTypeRule:
		return "Rule"
	default:
		return "Unknown"
	}
}

// Element is the interface for all page elements
type Element interface {
	Type() ElementType
	BoundingBox() BBox
}

// Role tells what part of a report a cell belongs to.
type Role int

const (
	RoleNone Role = iota
	RoleTitle
	RoleSummary
	RoleHeader
	RoleBody
	RoleSection
	RoleLabel
	RoleValue
	RoleResult
	RoleFooter
)

func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "Title"
	case RoleSummary:
		return "Summary"
	case RoleHeader:
		return "Header"
	case RoleBody:
		return "Body"
	case RoleSection:
		return "Section"
	case RoleLabel:
		return "Label"
	case RoleValue:
		return "Value"
	case RoleResult:
		return "Result"
	case RoleFooter:
		return "Footer"
	default:
		return "None"
	}
}

// Cell is a box of text. Single-line cells centre their text vertically in the box; wrapped
// cells flow text from the top edge in LineHeight steps.
type Cell struct {
	BBox       BBox
	Text       string
	Style      Style
	Align      Alignment
	Wrap       bool
	LineHeight float64 // used when Wrap is set
	Role       Role
	Column     string // column key for table cells
	Row        int    // 0-based record index for body cells, -1 otherwise
}

func (c *Cell) Type() ElementType { return ElementTypeCell }
func (c *Cell) BoundingBox() BBox { return c.BBox }
func (c *Cell) GetText() string   { return c.Text }

// Rule is a straight line between two points.
type Rule struct {
	From  Point
	To    Point
	Width float64
	Color Color
}

func (r *Rule) Type() ElementType { return ElementTypeRule }
func (r *Rule) BoundingBox() BBox {
	x, y := r.From.X, r.From.Y
	w, h := r.To.X-r.From.X, r.To.Y-r.From.Y
	if w < 0 {
		x, w = r.To.X, -w
	}
	if h < 0 {
		y, h = r.To.Y, -h
	}
	return BBox{X: x, Y: y, Width: w, Height: h}
}
