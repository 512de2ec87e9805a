package bitbuf

import (
	"math"
	"math/bits"
)

// Unsigned is a set of value types which can be packed into the buffer.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

func widthOf[T Unsigned]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Insert writes sz lowest bits of value starting from bit start, storage grows when needed.
// Bits are only ORed into storage, target region is expected to be zero.
// Write cursor is not changed. Returns number of written bits.
func (b *BitBuffer) Insert(value uint64, start, sz uint) (uint, error) {
	if sz == 0 || sz > MaxFieldLength {
		return 0, errInvalidLength(sz, MaxFieldLength)
	}

	if MostSignificantSetBit(value) >= int(sz) {
		return 0, errTooNarrow(value, sz)
	}

	if start > math.MaxUint-sz {
		return 0, ErrCapacityExceeded
	}

	if err := b.ensureCapacity(start + sz); err != nil {
		return 0, err
	}

	data := b.store.B
	left := sz
	for pos := start; ; {
		idx := ByteIndex(pos)
		free := BitsRemainingInByte(pos)

		if left > free {
			left -= free
			// highest bits of what is left go to the lowest free bits of current byte
			data[idx] |= byte(ExtractBits(value, left, free))
			pos += free
			continue
		}

		data[idx] |= byte(MaskBits(value, 0, left) << (free - left))
		break
	}

	return sz, nil
}

// Append writes value at the write cursor and moves it forward, cursor stays on failure.
func (b *BitBuffer) Append(value uint64, sz uint) (uint, error) {
	n, err := b.Insert(value, b.cursor, sz)
	if err != nil {
		return 0, err
	}
	b.cursor += n
	return n, nil
}

func (b *BitBuffer) AppendBool(value bool) error {
	var v uint64
	if value {
		v = 1
	}
	_, err := b.Append(v, 1)
	return err
}

func (b *BitBuffer) MustInsert(value uint64, start, sz uint) *BitBuffer {
	if _, err := b.Insert(value, start, sz); err != nil {
		panic(err)
	}
	return b
}

func (b *BitBuffer) MustAppend(value uint64, sz uint) *BitBuffer {
	if _, err := b.Append(value, sz); err != nil {
		panic(err)
	}
	return b
}

// InsertValue is Insert limited by the width of value type.
func InsertValue[T Unsigned](b *BitBuffer, value T, start, sz uint) (uint, error) {
	if w := widthOf[T](); sz > w {
		return 0, errInvalidLength(sz, w)
	}
	return b.Insert(uint64(value), start, sz)
}

// AppendValue is Append limited by the width of value type.
func AppendValue[T Unsigned](b *BitBuffer, value T, sz uint) (uint, error) {
	if w := widthOf[T](); sz > w {
		return 0, errInvalidLength(sz, w)
	}
	return b.Append(uint64(value), sz)
}
