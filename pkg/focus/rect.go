package focus

// Rect is an axis-aligned bounding box in screen coordinates. Bottom and Right
// are exclusive edges, so a 1x1 cell at the origin is {0, 1, 0, 1}.
type Rect struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// NewRect builds a Rect from an origin and a size.
func NewRect(left, top, width, height int) Rect {
	return Rect{Top: top, Bottom: top + height, Left: left, Right: left + width}
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// CenterY returns the vertical midpoint, rounded down.
func (r Rect) CenterY() int {
	return r.Top + r.Height()/2
}
