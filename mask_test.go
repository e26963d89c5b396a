package morton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisMask64(t *testing.T) {
	type args struct {
		axis uint
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		{"x", args{AxisX}, 0b0_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001},
		{"y", args{AxisY}, 0b0_010_010_010_010_010_010_010_010_010_010_010_010_010_010_010_010_010_010_010_010_010},
		{"z", args{AxisZ}, 0b0_100_100_100_100_100_100_100_100_100_100_100_100_100_100_100_100_100_100_100_100_100},
		// axes are taken mod 3
		{"3 wraps to x", args{3}, 0b0_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001_001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AxisMask[uint64](tt.args.axis); got != tt.want {
				t.Errorf("AxisMask() = %b, want %b", got, tt.want)
			}
		})
	}
}

func TestAxisMask32(t *testing.T) {
	type args struct {
		axis uint
	}
	tests := []struct {
		name string
		args args
		want uint32
	}{
		// note the spare bit below the flag, kept clear for layout
		// compatibility with the 64 bit word
		{"x", args{AxisX}, 0b00_001_001_001_001_001_001_001_001_001_001},
		{"y", args{AxisY}, 0b00_010_010_010_010_010_010_010_010_010_010},
		{"z", args{AxisZ}, 0b00_100_100_100_100_100_100_100_100_100_100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AxisMask[uint32](tt.args.axis); got != tt.want {
				t.Errorf("AxisMask() = %b, want %b", got, tt.want)
			}
		})
	}
}

// The three axis masks partition the coordinate bits: pairwise disjoint,
// union exactly CoordMask, and none of them reaches the flag bit.
func TestMaskPartition(t *testing.T) {
	t.Run("uint64", testMaskPartition[uint64])
	t.Run("uint32", testMaskPartition[uint32])
	t.Run("native", testMaskPartition[uint])
}

func testMaskPartition[W Word](t *testing.T) {
	x := AxisMask[W](AxisX)
	y := AxisMask[W](AxisY)
	z := AxisMask[W](AxisZ)

	assert.Zero(t, x&y)
	assert.Zero(t, y&z)
	assert.Zero(t, x&z)
	assert.Equal(t, CoordMask[W](), x|y|z)
	assert.Zero(t, (x|y|z)&flagBit[W]())
}
