package domain

// Resizable is what callers of a rectangle expect: setting one side leaves
// the other alone.
type Resizable interface {
	Width() int
	Height() int
	SetWidth(w int)
	SetHeight(h int)
	Area() int
}

// Rectangle has independent sides.
type Rectangle struct {
	width, height int
}

func NewRectangle(width, height int) *Rectangle {
	return &Rectangle{width: width, height: height}
}

// NewSquare builds a square as a plain Rectangle with equal sides. No subtype
// is introduced, so substituting it never changes setter behavior.
func NewSquare(side int) *Rectangle {
	return &Rectangle{width: side, height: side}
}

func (r *Rectangle) Width() int      { return r.width }
func (r *Rectangle) Height() int     { return r.height }
func (r *Rectangle) SetWidth(w int)  { r.width = w }
func (r *Rectangle) SetHeight(h int) { r.height = h }
func (r *Rectangle) Area() int       { return r.width * r.height }

// Square keeps width == height on every setter. It satisfies Resizable but
// breaks its contract, which is exactly what substitution exposes.
type Square struct {
	Rectangle
}

func NewSquareShape(side int) *Square {
	return &Square{Rectangle: Rectangle{width: side, height: side}}
}

func (s *Square) SetWidth(w int) {
	s.width = w
	s.height = w
}

func (s *Square) SetHeight(h int) {
	s.width = h
	s.height = h
}

var (
	_ Resizable = (*Rectangle)(nil)
	_ Resizable = (*Square)(nil)
)

// Shape is the immutable alternative: a closed set of variants, each
// computing its own area, with nothing to resize.
type Shape interface {
	Area() int
	shape()
}

type RectShape struct {
	W, H int
}

func (r RectShape) Area() int { return r.W * r.H }
func (RectShape) shape()      {}

type SquareShape struct {
	Side int
}

func (s SquareShape) Area() int { return s.Side * s.Side }
func (SquareShape) shape()      {}
