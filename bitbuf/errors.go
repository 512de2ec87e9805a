package bitbuf

import (
	"errors"
	"fmt"
)

var ErrFieldTooNarrow = errors.New("value does not fit into field")
var ErrOutOfRange = errors.New("bits are out of buffer range")
var ErrBufferTooSmall = errors.New("new size is smaller than written data")
var ErrInvalidLength = errors.New("invalid field length")
var ErrCapacityExceeded = errors.New("buffer capacity exceeded")

func errTooNarrow(value uint64, length uint) error {
	return fmt.Errorf("%w: value %#x needs %d bits, field has %d",
		ErrFieldTooNarrow, value, MostSignificantSetBit(value)+1, length)
}

func errOutOfRange(start, length, capacity uint) error {
	return fmt.Errorf("%w: need bits [%d, %d), capacity is %d", ErrOutOfRange, start, start+length, capacity)
}

func errInvalidLength(length, max uint) error {
	return fmt.Errorf("%w: %d, should be in [1, %d]", ErrInvalidLength, length, max)
}
