package bitbuf

import (
	"math"
	"testing"
)

func TestMaskBits(t *testing.T) {
	type args struct {
		value    uint64
		start    uint
		quantity uint
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		{"low nibble", args{0b1011_0110, 0, 4}, 0b0110},
		{"high nibble stays in place", args{0b1011_0110, 4, 4}, 0b1011_0000},
		{"middle", args{0b1011_0110, 2, 3}, 0b0001_0100},
		{"single bit", args{0b1000, 3, 1}, 0b1000},
		{"full width", args{math.MaxUint64, 0, 64}, math.MaxUint64},
		{"zero quantity", args{0xFF, 3, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskBits(tt.args.value, tt.args.start, tt.args.quantity); got != tt.want {
				t.Errorf("MaskBits() = %b, want %b", got, tt.want)
			}
		})
	}
}

func TestExtractBits(t *testing.T) {
	type args struct {
		value    uint64
		start    uint
		quantity uint
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		{"low nibble", args{0b1011_0110, 0, 4}, 0b0110},
		{"high nibble moved down", args{0b1011_0110, 4, 4}, 0b1011},
		{"middle", args{0b1011_0110, 2, 3}, 0b101},
		{"single bit", args{0b1000, 3, 1}, 1},
		{"top byte", args{0xAB00_0000_0000_0000, 56, 8}, 0xAB},
		{"full width", args{0x0123456789ABCDEF, 0, 64}, 0x0123456789ABCDEF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractBits(tt.args.value, tt.args.start, tt.args.quantity); got != tt.want {
				t.Errorf("ExtractBits() = %b, want %b", got, tt.want)
			}
		})
	}
}

func TestSetBitLookup(t *testing.T) {
	tests := []struct {
		name    string
		value   uint64
		highest int
		lowest  int
	}{
		{"zero", 0, NoSetBit, NoSetBit},
		{"one", 1, 0, 0},
		{"0b1010", 0b1010, 3, 1},
		{"0xF0", 0xF0, 7, 4},
		{"256", 256, 8, 8},
		{"top bit", 1 << 63, 63, 63},
		{"all", math.MaxUint64, 63, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MostSignificantSetBit(tt.value); got != tt.highest {
				t.Errorf("MostSignificantSetBit() = %d, want %d", got, tt.highest)
			}
			if got := LeastSignificantSetBit(tt.value); got != tt.lowest {
				t.Errorf("LeastSignificantSetBit() = %d, want %d", got, tt.lowest)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	tests := []struct {
		pos       uint
		idx       uint
		offset    uint
		remaining uint
	}{
		{0, 0, 0, 8},
		{3, 0, 3, 5},
		{7, 0, 7, 1},
		{8, 1, 0, 8},
		{11, 1, 3, 5},
		{1023, 127, 7, 1},
	}
	for _, tt := range tests {
		if got := ByteIndex(tt.pos); got != tt.idx {
			t.Errorf("ByteIndex(%d) = %d, want %d", tt.pos, got, tt.idx)
		}
		if got := BitOffsetInByte(tt.pos); got != tt.offset {
			t.Errorf("BitOffsetInByte(%d) = %d, want %d", tt.pos, got, tt.offset)
		}
		if got := BitsRemainingInByte(tt.pos); got != tt.remaining {
			t.Errorf("BitsRemainingInByte(%d) = %d, want %d", tt.pos, got, tt.remaining)
		}
	}
}

func TestBytesForBits(t *testing.T) {
	tests := map[uint]uint{0: 0, 1: 1, 7: 1, 8: 1, 9: 2, 12: 2, 16: 2, 17: 3, 64: 8}
	for sz, want := range tests {
		if got := BytesForBits(sz); got != want {
			t.Errorf("BytesForBits(%d) = %d, want %d", sz, got, want)
		}
	}
}
