package morton

// IsFlagSet reports whether the flag bit, the most significant bit of the
// word, is set. The flag never aliases the coordinate bits: axis arithmetic
// does not touch it and it does not touch axis bits.
func (c Code[W]) IsFlagSet() bool {
	return c.w>>(WordBits[W]()-1) == 1
}

// SetFlag sets the flag bit in place, leaving every coordinate bit
// unchanged. SetFlag and UnsetFlag are the only mutating operations on a
// Code.
func (c *Code[W]) SetFlag() {
	c.w |= flagBit[W]()
}

// UnsetFlag clears the flag bit in place, leaving every coordinate bit
// unchanged.
func (c *Code[W]) UnsetFlag() {
	c.w &^= flagBit[W]()
}
