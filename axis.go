package morton

// Increase returns a copy of c with the chosen axis's dilated coordinate
// incremented by one and every other bit, including the flag, unchanged.
//
// Setting all foreign bits before the add lets the carry ripple through
// them to the next bit owned by the axis; the foreign positions are masked
// away again immediately after. Constant time, no loop over levels.
//
// The arithmetic is unchecked: an axis already at all ones wraps to zero.
// See the package documentation for why that is the contract.
func (c Code[W]) Increase(axis uint) Code[W] {
	m := AxisMask[W](axis)
	return Code[W]{((c.w|^m)+1)&m | c.w&^m}
}

// Decrease returns a copy of c with the chosen axis's dilated coordinate
// decremented by one and every other bit, including the flag, unchanged.
//
// The mirror image of Increase: zeroing the foreign bits first lets the
// borrow ripple through them to the next owned bit. An axis already at all
// zeros wraps to all ones.
func (c Code[W]) Decrease(axis uint) Code[W] {
	m := AxisMask[W](axis)
	return Code[W]{((c.w&m)-1)&m | c.w&^m}
}

// Per axis conveniences for the common case of walking neighbouring cells.

func (c Code[W]) IncreaseX() Code[W] { return c.Increase(AxisX) }
func (c Code[W]) IncreaseY() Code[W] { return c.Increase(AxisY) }
func (c Code[W]) IncreaseZ() Code[W] { return c.Increase(AxisZ) }

func (c Code[W]) DecreaseX() Code[W] { return c.Decrease(AxisX) }
func (c Code[W]) DecreaseY() Code[W] { return c.Decrease(AxisY) }
func (c Code[W]) DecreaseZ() Code[W] { return c.Decrease(AxisZ) }
