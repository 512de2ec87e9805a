package bitbuf

import "math/bits"

// NoSetBit is returned by set bit lookups when the value is zero.
const NoSetBit = -1

// MaxFieldLength is the widest field a single call can write or read.
const MaxFieldLength = 64

// MaskBits keeps quantity bits of value starting from bit start (0 is the least significant bit)
// and clears the rest, bits stay at their original position.
func MaskBits(value uint64, start, quantity uint) uint64 {
	mask := (uint64(1) << quantity) - 1
	return value & (mask << start)
}

// ExtractBits returns quantity bits of value starting from bit start, moved down to bit 0.
func ExtractBits(value uint64, start, quantity uint) uint64 {
	return MaskBits(value, start, quantity) >> start
}

// MostSignificantSetBit returns index of the highest set bit, or NoSetBit for 0.
func MostSignificantSetBit(value uint64) int {
	return bits.Len64(value) - 1
}

// LeastSignificantSetBit returns index of the lowest set bit, or NoSetBit for 0.
func LeastSignificantSetBit(value uint64) int {
	if value == 0 {
		return NoSetBit
	}
	return bits.TrailingZeros64(value)
}

func ByteIndex(bitPos uint) uint {
	return bitPos / 8
}

func BitOffsetInByte(bitPos uint) uint {
	return bitPos % 8
}

func BitsRemainingInByte(bitPos uint) uint {
	return 8 - BitOffsetInByte(bitPos)
}

// BytesForBits returns number of bytes required to hold sz bits.
func BytesForBits(sz uint) uint {
	n := sz / 8
	if sz%8 > 0 {
		n++
	}
	return n
}
