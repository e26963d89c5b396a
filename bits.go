package morton

import "math/bits"

// WordBits returns the bit width of W: 32 or 64.
func WordBits[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

// Depth returns the number of usable 3 bit levels for a code packed into W,
// floor((width - 1) / 3): 21 for a 64 bit word, 10 for a 32 bit word.
func Depth[W Word]() uint {
	return (WordBits[W]() - 1) / 3
}

func flagBit[W Word]() W {
	return W(1) << (WordBits[W]() - 1)
}
