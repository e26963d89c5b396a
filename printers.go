package morton

import "strings"

// debug utilities

// String renders the code as its 3 bit levels, most significant level
// first, each reading zyx. The flag is shown separately and leading zero
// levels are trimmed. 0b010_000_101 with the flag clear renders as
// "f:0 010 000 101".
func (c Code[W]) String() string {
	top := int(Depth[W]()) - 1
	for top > 0 && c.w>>(uint(top)*3)&0b111 == 0 {
		top--
	}

	var b strings.Builder
	if c.IsFlagSet() {
		b.WriteString("f:1")
	} else {
		b.WriteString("f:0")
	}
	for level := top; level >= 0; level-- {
		b.WriteByte(' ')
		for axis := 2; axis >= 0; axis-- {
			if c.w>>(uint(level)*3+uint(axis))&1 == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}
