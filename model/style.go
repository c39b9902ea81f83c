package model

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// Colors used by the clinic reports.
var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	Grey      = Color{128, 128, 128}
	LightGrey = Color{200, 200, 200}
	Blue      = Color{59, 130, 246}
	Green     = Color{34, 197, 94}
)

// Alignment represents horizontal text alignment inside a cell
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// Font selects one of the standard PDF fonts.
type Font struct {
	Family string
	Bold   bool
	Italic bool
	Size   float64 // points
}

// Style is the complete drawing state for one element.
type Style struct {
	Font      Font
	TextColor Color
	FillColor Color
	Fill      bool    // paint the background with FillColor
	Border    bool    // stroke the cell outline
	LineWidth float64 // outline width in mm, 0 means the writer default
}

// DefaultFamily is the font family every report uses.
const DefaultFamily = "Arial"

// TextStyle returns a borderless, unfilled style with the given font.
func TextStyle(size float64, bold, italic bool, color Color) Style {
	return Style{
		Font:      Font{Family: DefaultFamily, Bold: bold, Italic: italic, Size: size},
		TextColor: color,
	}
}

// Filled returns a copy of s with a background fill.
func (s Style) Filled(c Color) Style {
	s.Fill = true
	s.FillColor = c
	return s
}

// Bordered returns a copy of s with an outline.
func (s Style) Bordered() Style {
	s.Border = true
	return s
}
