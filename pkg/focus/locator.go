package focus

// Distance reports whether cand lies in direction dir from cur and, if so,
// its navigation distance: the gap along the movement axis plus the
// misalignment of the leading edges on the perpendicular axis.
func Distance(cur, cand Rect, dir Direction) (int, bool) {
	switch dir {
	case Up:
		if cand.Bottom <= cur.Top {
			return abs(cur.Top-cand.Bottom) + abs(cur.Left-cand.Left), true
		}
	case Down:
		if cand.Top >= cur.Bottom {
			return abs(cand.Top-cur.Bottom) + abs(cur.Left-cand.Left), true
		}
	case Left:
		if cand.Right <= cur.Left {
			return abs(cur.Left-cand.Right) + abs(cur.Top-cand.Top), true
		}
	case Right:
		if cand.Left >= cur.Right {
			return abs(cand.Left-cur.Right) + abs(cur.Top-cand.Top), true
		}
	}
	return 0, false
}

// Locate picks the candidate nearest to cur in direction dir. cur itself is
// skipped. Ties keep the earliest candidate in slice order. There is no
// wrap-around: when nothing lies in that direction the result is (nil, false).
func Locate(cur Element, dir Direction, candidates []Element) (Element, bool) {
	if cur == nil {
		return nil, false
	}
	from := cur.Bounds()

	var (
		best    Element
		bestDst int
	)
	for _, cand := range candidates {
		if cand == nil || sameElement(cand, cur) {
			continue
		}
		d, ok := Distance(from, cand.Bounds(), dir)
		if !ok {
			continue
		}
		if best == nil || d < bestDst {
			best, bestDst = cand, d
		}
	}
	return best, best != nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
