package gamemath

// Box is an axis-aligned rectangle with its origin at the top-left corner.
type Box struct {
	X, Y, W, H float64
}

// FeetBox returns the box of a character standing at (x, feetY): centered
// horizontally on x and extending upward from the feet.
func FeetBox(x, feetY, w, h float64) Box {
	return Box{X: x - w/2, Y: feetY - h, W: w, H: h}
}

// CenterBox returns a box of size w x h centered on (cx, cy).
func CenterBox(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Bottom() float64 { return b.Y + b.H }

// Overlaps reports whether a and b share interior area. Boxes that only
// touch along an edge do not overlap.
func Overlaps(a, b Box) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}
