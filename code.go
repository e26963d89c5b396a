package morton

import "math/bits"

// Word is the set of unsigned types a Code can be packed into. The original
// layout was designed for the native word, but fixing the width explicitly
// keeps a 32 bit index readable on a 64 bit build and vice versa.
type Word interface {
	~uint32 | ~uint64 | ~uint
}

// Code is a 3 dimensional morton code. The coordinate bits are interleaved
// zyx in 3 bit levels from the least significant bit up, and the most
// significant bit of the word is an independent flag. See the package
// documentation for the layout and the axis stepping arithmetic.
//
// Code has value semantics: it is a single word, freely copyable and
// directly comparable, and every operation other than SetFlag/UnsetFlag
// returns a new value. Equality and ordering, where a caller wants them,
// are bit for bit on the packed word.
type Code[W Word] struct {
	w W
}

// Code3D is the native word configuration: 21 levels on a 64 bit platform,
// 10 levels (plus one spare bit) on a 32 bit platform.
type Code3D = Code[uint]

const (
	// NumBits is the bit width of the native word configuration.
	NumBits = bits.UintSize

	// MaxDepth is the number of usable 3 bit levels in the native word
	// configuration, floor((NumBits - 1) / 3). One bit is always reserved
	// for the flag.
	MaxDepth = (NumBits - 1) / 3
)

// NewCode returns the code whose packed representation is exactly w. The
// conversion is bit exact and unvalidated, it is the seam through which an
// encoder in the layer above produces codes from real coordinates.
func NewCode[W Word](w W) Code[W] {
	return Code[W]{w}
}

// Uint returns the packed representation, bit exact.
func (c Code[W]) Uint() W {
	return c.w
}
