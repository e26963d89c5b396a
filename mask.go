package morton

// The three axes, named by their local bit offset within a level.
const (
	AxisX uint = 0
	AxisY uint = 1
	AxisZ uint = 2
)

// AxisMask returns the dilated mask selecting every bit belonging to the
// given axis: the pattern 001 repeated once per level, shifted left by the
// axis offset. (8^d - 1)/7 is that repeated pattern in closed form, for d
// levels. Axes are taken mod 3.
//
// The three masks are pairwise disjoint and together cover exactly the
// coordinate bits, CoordMask.
func AxisMask[W Word](axis uint) W {
	return ((W(1)<<(3*Depth[W]()) - 1) / 7) << (axis % 3)
}

// CoordMask returns the union of the three axis masks: every coordinate
// bit set and nothing else. The flag bit (and the spare bit, on 32 bit
// words) is outside it.
func CoordMask[W Word]() W {
	return W(1)<<(3*Depth[W]()) - 1
}
